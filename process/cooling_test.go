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

import (
	"errors"
	"testing"

	"github.com/thermalmodel/psychro"
)

func TestCoolingDry(t *testing.T) {
	// Inlet dew point is about 21.3 °C, so cooling to 25 °C stays
	// sensible.
	in := flow(t, 35, 45, 1)
	r, err := CoolingToTemperature(in, 4.5, 25)
	if err != nil {
		t.Fatal(err)
	}
	if different(r.Outlet.Air().HumidityRatio(), in.Air().HumidityRatio(), 1.e-12) {
		t.Error("humidity ratio changed during dry cooling")
	}
	if r.CondensateFlow != 0 || r.BypassFactor != 0 {
		t.Errorf("dry cooling produced condensate: flow %g, bypass factor %g",
			r.CondensateFlow, r.BypassFactor)
	}
	if r.Power >= 0 {
		t.Errorf("power: %g", r.Power)
	}
}

func TestCoolingCondensing(t *testing.T) {
	// 1 kg/s of air at 35 °C and 45 % on a coil with a 4.5 °C wall,
	// cooled to 16 °C.
	in := flow(t, 35, 45, 1)
	r, err := CoolingToTemperature(in, 4.5, 16)
	if err != nil {
		t.Fatal(err)
	}
	if different(r.BypassFactor, 0.377049, 1.e-6) {
		t.Errorf("bypass factor: %g", r.BypassFactor)
	}
	if different(r.Outlet.Air().HumidityRatio(), 0.0092601, 5.e-5) {
		t.Errorf("outlet humidity ratio: %g", r.Outlet.Air().HumidityRatio())
	}
	if different(r.CondensateFlow, 0.0066833, 5.e-5) {
		t.Errorf("condensate flow: %g", r.CondensateFlow)
	}
	if different(r.Power, -36.486, 5.e-2) {
		t.Errorf("power: %g", r.Power)
	}
	if different(r.Outlet.Air().RelHumidity(), 81.75, 0.3) {
		t.Errorf("outlet relative humidity: %g", r.Outlet.Air().RelHumidity())
	}
	if r.CondensateTemp != 4.5 {
		t.Errorf("condensate temperature: %g", r.CondensateTemp)
	}
}

func TestCoolingToRH(t *testing.T) {
	in := flow(t, 35, 45, 1)
	r, err := CoolingToRH(in, 4.5, 90)
	if err != nil {
		t.Fatal(err)
	}
	if different(r.Outlet.Air().RelHumidity(), 90, 1.e-2) {
		t.Errorf("outlet relative humidity: %g", r.Outlet.Air().RelHumidity())
	}
	if different(r.Outlet.Air().DryBulb(), 23.020, 2.e-2) {
		t.Errorf("outlet temperature: %g", r.Outlet.Air().DryBulb())
	}

	// The returned state must be consistent with the forward coil
	// calculation at the same outlet temperature.
	fwd, err := CoolingToTemperature(in, 4.5, r.Outlet.Air().DryBulb())
	if err != nil {
		t.Fatal(err)
	}
	if different(fwd.Power, r.Power, 1.e-9) {
		t.Errorf("power mismatch with forward calculation: %g != %g", fwd.Power, r.Power)
	}
}

// TestCoolingToRHDryWall cools with a wall temperature above the inlet
// dew point, so the coil stays dry and the target humidity is reached
// by sensible cooling alone.
func TestCoolingToRHDryWall(t *testing.T) {
	in := flow(t, 35, 45, 1)
	r, err := CoolingToRH(in, 25, 70)
	if err != nil {
		t.Fatal(err)
	}
	if different(r.Outlet.Air().RelHumidity(), 70, 1.e-2) {
		t.Errorf("outlet relative humidity: %g", r.Outlet.Air().RelHumidity())
	}
	if different(r.Outlet.Air().DryBulb(), 27.240, 2.e-2) {
		t.Errorf("outlet temperature: %g", r.Outlet.Air().DryBulb())
	}
	if different(r.Outlet.Air().HumidityRatio(), in.Air().HumidityRatio(), 1.e-12) {
		t.Error("humidity ratio changed during dry cooling")
	}
	if r.CondensateFlow != 0 || r.BypassFactor != 0 {
		t.Errorf("dry coil produced condensate: flow %g, bypass factor %g",
			r.CondensateFlow, r.BypassFactor)
	}
}

func TestCoolingToPower(t *testing.T) {
	in := flow(t, 35, 45, 1)
	r, err := CoolingToPower(in, 4.5, -30)
	if err != nil {
		t.Fatal(err)
	}
	if different(r.Power, -30, 1.e-2) {
		t.Errorf("power: %g", r.Power)
	}
	if different(r.Outlet.Air().DryBulb(), 19.397, 2.e-2) {
		t.Errorf("outlet temperature: %g", r.Outlet.Air().DryBulb())
	}
	if r.CondensateFlow <= 0 {
		t.Errorf("condensate flow: %g", r.CondensateFlow)
	}

	// Requesting the power of a known outlet state must reproduce
	// that state.
	r16, err := CoolingToTemperature(in, 4.5, 16)
	if err != nil {
		t.Fatal(err)
	}
	r2, err := CoolingToPower(in, 4.5, r16.Power)
	if err != nil {
		t.Fatal(err)
	}
	if different(r2.Outlet.Air().DryBulb(), 16, 1.e-2) {
		t.Errorf("power round trip: %g", r2.Outlet.Air().DryBulb())
	}
}

func TestCoolingValidation(t *testing.T) {
	in := flow(t, 35, 45, 1)
	var inputErr *psychro.InputError
	if _, err := CoolingToTemperature(in, 4.5, 40); !errors.As(err, &inputErr) {
		t.Errorf("heating target accepted by cooling: %v", err)
	}
	if _, err := CoolingToTemperature(in, 20, 16); !errors.As(err, &inputErr) {
		t.Errorf("wall above target accepted: %v", err)
	}
	if _, err := CoolingToRH(in, 4.5, 30); !errors.As(err, &inputErr) {
		t.Errorf("drying target accepted by cooling: %v", err)
	}
	if _, err := CoolingToRH(in, 4.5, 99.9); !errors.As(err, &inputErr) {
		t.Errorf("saturation target accepted: %v", err)
	}
	// With a 25 °C wall the outlet cannot drop below the wall, which
	// caps the attainable humidity near 80 %.
	if _, err := CoolingToRH(in, 25, 90); !errors.As(err, &inputErr) {
		t.Errorf("unattainable humidity for a dry wall accepted: %v", err)
	}
	if _, err := CoolingToRH(in, 40, 90); !errors.As(err, &inputErr) {
		t.Errorf("wall above inlet temperature accepted: %v", err)
	}
	if _, err := CoolingToPower(in, 4.5, 10); !errors.As(err, &inputErr) {
		t.Errorf("heating power accepted by cooling: %v", err)
	}
	if _, err := CoolingToPower(in, 4.5, -1000); !errors.As(err, &inputErr) {
		t.Errorf("power beyond coil capacity accepted: %v", err)
	}
}
