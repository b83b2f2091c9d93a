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
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/thermalmodel/psychro"
	"github.com/thermalmodel/psychro/process"
)

var logger *logrus.Logger

func init() {
	logger = logrus.StandardLogger()
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		DisableSorting:  true,
	})
}

// writeProps writes a table of the thermophysical properties of the
// given state.
func writeProps(w io.Writer, air psychro.MoistAir) error {
	td, err := air.DewPoint()
	if err != nil {
		return err
	}
	twb, err := air.WetBulb()
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "dry-bulb temperature\t%.2f\t°C\n", air.DryBulb())
	fmt.Fprintf(tw, "relative humidity\t%.1f\t%%\n", air.RelHumidity())
	fmt.Fprintf(tw, "pressure\t%.0f\tPa\n", air.Pressure())
	fmt.Fprintf(tw, "humidity ratio\t%.5f\tkg/kg\n", air.HumidityRatio())
	fmt.Fprintf(tw, "dew point\t%.2f\t°C\n", td)
	fmt.Fprintf(tw, "wet bulb\t%.2f\t°C\n", twb)
	fmt.Fprintf(tw, "enthalpy\t%.2f\tkJ/kg dry air\n", air.Enthalpy())
	fmt.Fprintf(tw, "density\t%.4f\tkg/m³\n", air.Density())
	fmt.Fprintf(tw, "specific heat\t%.4f\tkJ/(kg K)\n", air.SpecificHeat())
	fmt.Fprintf(tw, "dynamic viscosity\t%.3e\tPa s\n", air.DynamicViscosity())
	fmt.Fprintf(tw, "thermal conductivity\t%.4f\tW/(m K)\n", air.ThermalConductivity())
	return tw.Flush()
}

func writeState(w io.Writer, label string, f process.AirFlow) {
	fmt.Fprintf(w, "%s\t%.2f °C\t%.1f %%\t%.5f kg/kg\t%.3f kg/s\n",
		label, f.Air().DryBulb(), f.Air().RelHumidity(),
		f.Air().HumidityRatio(), f.DryAirMassFlow())
}

// writeHeating writes the inlet and outlet states and the heat input
// of a heating process.
func writeHeating(w io.Writer, in process.AirFlow, r process.HeatingResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	writeState(tw, "inlet", in)
	writeState(tw, "outlet", r.Outlet)
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "power: %v\n", r.PowerUnit())
	return err
}

// writeCooling writes the inlet and outlet states, the heat input, and
// the condensate of a cooling process.
func writeCooling(w io.Writer, in process.AirFlow, r process.CoolingResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	writeState(tw, "inlet", in)
	writeState(tw, "outlet", r.Outlet)
	if err := tw.Flush(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "power: %v\n", r.PowerUnit()); err != nil {
		return err
	}
	if r.CondensateFlow > 0 {
		_, err := fmt.Fprintf(w, "condensate: %v at %.1f °C\n",
			r.CondensateFlowUnit(), r.CondensateTemp)
		return err
	}
	return nil
}

// writeMixing writes the flow split and the outlet state of a mixing
// process.
func writeMixing(w io.Writer, r process.MixingResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "stream 1 flow\t%.3f\tkg/s\n", r.Flow1)
	fmt.Fprintf(tw, "stream 2 flow\t%.3f\tkg/s\n", r.Flow2)
	writeState(tw, "outlet", r.Outlet)
	return tw.Flush()
}
