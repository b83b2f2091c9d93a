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

package process

import "github.com/thermalmodel/psychro"

// HeatingResult is the outcome of a sensible heating process.
type HeatingResult struct {
	// Outlet is the outlet air flow.
	Outlet AirFlow
	// Power is the heat input [kW], positive.
	Power float64
}

// HeatingToTemperature heats the flow at constant humidity ratio to
// the target dry-bulb temperature [°C].
func HeatingToTemperature(in AirFlow, targetTemp float64) (HeatingResult, error) {
	t1 := in.Air().DryBulb()
	if targetTemp <= t1 {
		return HeatingResult{}, &psychro.InputError{
			Quantity:   "target temperature",
			Value:      targetTemp,
			Constraint: "must be above the inlet dry-bulb temperature for heating",
		}
	}
	out, err := psychro.NewMoistAirFromX(targetTemp, in.Air().HumidityRatio(), in.Air().Pressure())
	if err != nil {
		return HeatingResult{}, err
	}
	return HeatingResult{
		Outlet: in.withState(out),
		Power:  in.DryAirMassFlow() * (out.Enthalpy() - in.Air().Enthalpy()),
	}, nil
}

// HeatingToPower heats the flow at constant humidity ratio with the
// given heat input [kW], recovering the outlet temperature from the
// outlet enthalpy.
func HeatingToPower(in AirFlow, power float64) (HeatingResult, error) {
	if power <= 0 {
		return HeatingResult{}, &psychro.InputError{
			Quantity:   "power",
			Value:      power,
			Constraint: "must be positive for heating",
		}
	}
	h2 := in.Air().Enthalpy() + power/in.DryAirMassFlow()
	t2, err := psychro.DryBulbFromEnthalpy(h2, in.Air().HumidityRatio(), in.Air().Pressure())
	if err != nil {
		return HeatingResult{}, err
	}
	out, err := psychro.NewMoistAirFromX(t2, in.Air().HumidityRatio(), in.Air().Pressure())
	if err != nil {
		return HeatingResult{}, err
	}
	return HeatingResult{Outlet: in.withState(out), Power: power}, nil
}

// HeatingToRH heats the flow at constant humidity ratio until the
// relative humidity drops to the target [%]. Heating only lowers the
// relative humidity, so targets at or above the inlet value are
// rejected.
func HeatingToRH(in AirFlow, targetRH float64) (HeatingResult, error) {
	if targetRH <= 0 || targetRH >= in.Air().RelHumidity() {
		return HeatingResult{}, &psychro.InputError{
			Quantity:   "target relative humidity",
			Value:      targetRH,
			Constraint: "must be positive and below the inlet relative humidity for heating",
		}
	}
	t2, err := psychro.DryBulbFromRHX(in.Air().HumidityRatio(), targetRH, in.Air().Pressure())
	if err != nil {
		return HeatingResult{}, err
	}
	return HeatingToTemperature(in, t2)
}
