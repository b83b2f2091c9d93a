/*
Copyright © 2018 the psychro authors.
This file is part of psychro.

psychro is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

psychro is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with psychro.  If not, see <http://www.gnu.org/licenses/>.
*/

package psychroutil

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"github.com/thermalmodel/psychro"
	"github.com/thermalmodel/psychro/process"
)

// ScenarioData describes an inlet air stream and a sequence of
// air-treatment steps, each fed with the outlet of the step before it.
type ScenarioData struct {
	// Pressure is the total pressure [Pa] of all streams in the
	// scenario. If zero, standard atmospheric pressure is used.
	Pressure float64

	// Inlet describes the air stream entering the first step.
	Inlet struct {
		// Temperature is the dry-bulb temperature [°C] and RH the
		// relative humidity [%].
		Temperature float64
		RH          float64

		// MassFlow is the dry-air mass flow [kg/s]. If zero, 1 kg/s
		// is used.
		MassFlow float64
	}

	// Steps are the air-treatment steps, calculated in order.
	Steps []ScenarioStep
}

// ScenarioStep is one air-treatment step of a scenario.
type ScenarioStep struct {
	// Process selects the step type: "heating", "cooling", or
	// "mixing".
	Process string

	// TargetTemp, TargetRH, and Power set the outlet of a heating or
	// cooling step (TargetTemp also sets the outlet of a mixing
	// step). A nonzero Power [kW] takes precedence; otherwise a
	// positive TargetRH [%] is used; otherwise TargetTemp [°C].
	TargetTemp float64
	TargetRH   float64
	Power      float64

	// WallTemp is the coil surface temperature [°C] of a cooling
	// step.
	WallTemp float64

	// Temperature2 and RH2 describe the second stream of a mixing
	// step; the stream leaving the previous step is the first.
	Temperature2 float64
	RH2          float64

	// MinFlow1 and MinFlow2 are the minimum locked dry-air mass
	// flows [kg/s] of the two mixed streams and TargetFlow the total
	// outlet flow [kg/s].
	MinFlow1, MinFlow2, TargetFlow float64
}

// ReadScenarioFile reads and parses a TOML scenario file.
func ReadScenarioFile(filename string) (*ScenarioData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("the scenario file you have specified, %v, does not "+
			"appear to exist. Please check the file name and location and "+
			"try again", filename)
	}
	defer file.Close()

	s := new(ScenarioData)
	if _, err := toml.DecodeReader(file, s); err != nil {
		return nil, fmt.Errorf("there has been an error parsing the scenario file: %v", err)
	}
	if s.Pressure == 0 {
		s.Pressure = psychro.PressureAtm
	}
	if s.Inlet.MassFlow == 0 {
		s.Inlet.MassFlow = 1
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("the scenario file %v does not contain any steps", filename)
	}
	return s, nil
}

// Run calculates the scenario steps in order, writing the result of
// each step to w.
func (s *ScenarioData) Run(w io.Writer) error {
	air, err := psychro.NewMoistAir(s.Inlet.Temperature, s.Inlet.RH, s.Pressure)
	if err != nil {
		return err
	}
	cur, err := process.NewAirFlow(air, s.Inlet.MassFlow)
	if err != nil {
		return err
	}
	for i, step := range s.Steps {
		logger.WithFields(logrus.Fields{
			"step":    i + 1,
			"process": step.Process,
			"inlet":   fmt.Sprintf("%.2f °C, %.1f %%", cur.Air().DryBulb(), cur.Air().RelHumidity()),
		}).Info("calculating scenario step")
		fmt.Fprintf(w, "step %d: %s\n", i+1, step.Process)

		switch step.Process {
		case "heating":
			var r process.HeatingResult
			switch {
			case step.Power != 0:
				r, err = process.HeatingToPower(cur, step.Power)
			case step.TargetRH > 0:
				r, err = process.HeatingToRH(cur, step.TargetRH)
			default:
				r, err = process.HeatingToTemperature(cur, step.TargetTemp)
			}
			if err != nil {
				return fmt.Errorf("scenario step %d: %w", i+1, err)
			}
			if err := writeHeating(w, cur, r); err != nil {
				return err
			}
			cur = r.Outlet
		case "cooling":
			var r process.CoolingResult
			switch {
			case step.Power != 0:
				r, err = process.CoolingToPower(cur, step.WallTemp, step.Power)
			case step.TargetRH > 0:
				r, err = process.CoolingToRH(cur, step.WallTemp, step.TargetRH)
			default:
				r, err = process.CoolingToTemperature(cur, step.WallTemp, step.TargetTemp)
			}
			if err != nil {
				return fmt.Errorf("scenario step %d: %w", i+1, err)
			}
			if err := writeCooling(w, cur, r); err != nil {
				return err
			}
			cur = r.Outlet
		case "mixing":
			air2, err := psychro.NewMoistAir(step.Temperature2, step.RH2, s.Pressure)
			if err != nil {
				return fmt.Errorf("scenario step %d: %w", i+1, err)
			}
			r, err := process.MixingToTemperature(cur.Air(), step.MinFlow1,
				air2, step.MinFlow2, step.TargetFlow, step.TargetTemp)
			if err != nil {
				return fmt.Errorf("scenario step %d: %w", i+1, err)
			}
			if err := writeMixing(w, r); err != nil {
				return err
			}
			cur = r.Outlet
		default:
			return fmt.Errorf("scenario step %d: unknown process type %q; "+
				"valid types are heating, cooling, and mixing", i+1, step.Process)
		}
	}
	return nil
}
