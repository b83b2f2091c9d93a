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
	"fmt"
	"math"

	"github.com/thermalmodel/psychro"
	"github.com/thermalmodel/psychro/solver"
)

// CoolingResult is the outcome of a real cooling-coil process.
type CoolingResult struct {
	// Outlet is the outlet air flow.
	Outlet AirFlow

	// Power is the heat input [kW], negative for cooling.
	Power float64

	// BypassFactor is the fraction of air leaving the coil without
	// surface contact; zero for a dry coil.
	BypassFactor float64

	// CondensateTemp is the temperature of the condensate [°C] and
	// CondensateFlow its mass flow [kg/s]; the flow is zero for dry
	// cooling.
	CondensateTemp float64
	CondensateFlow float64
}

// CoolingToTemperature cools the flow on a coil with average surface
// (wall) temperature wallTemp [°C] to the target outlet dry-bulb
// temperature [°C]. Above the inlet dew point the process is dry
// (constant humidity ratio); below it, condensation is modeled with a
// bypass factor: the fraction of air treated as contacting the coil
// leaves saturated at the wall temperature and the rest bypasses
// unchanged.
//
// This is the forward, closed-form coil calculation; the residual
// functions of CoolingToRH and CoolingToPower re-run it at trial
// outlet temperatures.
func CoolingToTemperature(in AirFlow, wallTemp, targetTemp float64) (CoolingResult, error) {
	t1 := in.Air().DryBulb()
	if targetTemp > t1 {
		return CoolingResult{}, &psychro.InputError{
			Quantity:   "target temperature",
			Value:      targetTemp,
			Constraint: "must not be above the inlet dry-bulb temperature for cooling",
		}
	}
	if wallTemp >= targetTemp {
		return CoolingResult{}, &psychro.InputError{
			Quantity:   "coil wall temperature",
			Value:      wallTemp,
			Constraint: "must be below the target outlet temperature",
		}
	}
	td, err := in.Air().DewPoint()
	if err != nil {
		return CoolingResult{}, err
	}

	p := in.Air().Pressure()
	x1 := in.Air().HumidityRatio()
	mda := in.DryAirMassFlow()

	if targetTemp >= td {
		// Dry cooling: sensible only.
		out, err := psychro.NewMoistAirFromX(targetTemp, x1, p)
		if err != nil {
			return CoolingResult{}, err
		}
		return CoolingResult{
			Outlet:         in.withState(out),
			Power:          mda * (out.Enthalpy() - in.Air().Enthalpy()),
			CondensateTemp: wallTemp,
		}, nil
	}

	// Condensing coil: blend the bypassed inlet air with air
	// saturated at the wall temperature.
	bf := (targetTemp - wallTemp) / (t1 - wallTemp)
	wall, err := psychro.NewMoistAir(wallTemp, 100, p)
	if err != nil {
		return CoolingResult{}, err
	}
	x2 := x1*bf + (1-bf)*wall.HumidityRatio()
	out, err := psychro.NewMoistAirFromX(targetTemp, x2, p)
	if err != nil {
		return CoolingResult{}, err
	}
	cond := mda * (x1 - x2)
	return CoolingResult{
		Outlet:         in.withState(out),
		Power:          mda*(out.Enthalpy()-in.Air().Enthalpy()) + cond*psychro.WaterEnthalpy(wallTemp),
		BypassFactor:   bf,
		CondensateTemp: wallTemp,
		CondensateFlow: cond,
	}, nil
}

// CoolingToRH cools the flow on a coil with the given wall temperature
// until the relative humidity rises to the target [%]. The outlet
// temperature is bracketed between the coldest attainable outlet (the
// inlet dew point, or just above the wall temperature when the wall is
// warmer than that) and the inlet dry-bulb temperature; each residual
// evaluation re-runs the full bypass-factor calculation. A wall above
// the inlet dew point keeps the coil dry, which still raises the
// relative humidity by sensible cooling alone as long as the target is
// attainable before the outlet reaches the wall.
func CoolingToRH(in AirFlow, wallTemp, targetRH float64) (CoolingResult, error) {
	t1 := in.Air().DryBulb()
	rh1 := in.Air().RelHumidity()
	if targetRH <= rh1 {
		return CoolingResult{}, &psychro.InputError{
			Quantity:   "target relative humidity",
			Value:      targetRH,
			Constraint: "must be above the inlet relative humidity for cooling",
		}
	}
	if targetRH > 99 {
		return CoolingResult{}, &psychro.InputError{
			Quantity:   "target relative humidity",
			Value:      targetRH,
			Constraint: "targets above 99 % are not physically attainable on a real coil",
		}
	}
	if wallTemp >= t1 {
		return CoolingResult{}, &psychro.InputError{
			Quantity:   "coil wall temperature",
			Value:      wallTemp,
			Constraint: "must be below the inlet dry-bulb temperature",
		}
	}
	td, err := in.Air().DewPoint()
	if err != nil {
		return CoolingResult{}, err
	}
	lo := td
	if wallTemp >= td {
		lo = wallTemp + 1e-3
	}
	limit, err := CoolingToTemperature(in, wallTemp, lo)
	if err != nil {
		return CoolingResult{}, err
	}
	if maxRH := limit.Outlet.Air().RelHumidity(); targetRH > maxRH {
		return CoolingResult{}, &psychro.InputError{
			Quantity:   "coil wall temperature",
			Value:      wallTemp,
			Constraint: fmt.Sprintf("limits the attainable relative humidity to %.1f %%", maxRH),
		}
	}

	residual := func(t2 float64) float64 {
		r, err := CoolingToTemperature(in, wallTemp, t2)
		if err != nil {
			return math.NaN()
		}
		return targetRH - r.Outlet.Air().RelHumidity()
	}
	res, err := solver.Solve(residual, lo, t1, solver.Config{})
	if err != nil {
		return CoolingResult{}, fmt.Errorf("process: cooling to %g %% relative humidity: %w", targetRH, err)
	}
	return CoolingToTemperature(in, wallTemp, res.Root)
}

// CoolingToPower cools the flow on a coil with the given wall
// temperature using the given heat input [kW] (negative). The outlet
// temperature is bracketed between the dry-cooling outlet temperature
// for that power — the least-condensing outcome, obtained by spending
// the whole enthalpy drop on sensible cooling — and the inlet
// dry-bulb temperature.
func CoolingToPower(in AirFlow, wallTemp, power float64) (CoolingResult, error) {
	if power >= 0 {
		return CoolingResult{}, &psychro.InputError{
			Quantity:   "power",
			Value:      power,
			Constraint: "must be negative for cooling",
		}
	}
	p := in.Air().Pressure()
	mda := in.DryAirMassFlow()

	// The coldest attainable outlet leaves the whole flow saturated
	// at the wall temperature.
	limit, err := CoolingToTemperature(in, wallTemp, wallTemp+1e-3)
	if err != nil {
		return CoolingResult{}, err
	}
	if power < limit.Power {
		return CoolingResult{}, &psychro.InputError{
			Quantity:   "power",
			Value:      power,
			Constraint: fmt.Sprintf("exceeds the coil capacity of %g kW", limit.Power),
		}
	}

	h2dry := in.Air().Enthalpy() + power/mda
	tdry, err := psychro.DryBulbFromEnthalpy(h2dry, in.Air().HumidityRatio(), p)
	if err != nil {
		return CoolingResult{}, err
	}
	if tdry <= wallTemp {
		// Near coil capacity the notional dry outlet can fall below
		// the wall temperature; the real outlet cannot.
		tdry = wallTemp + 1e-3
	}

	residual := func(t2 float64) float64 {
		r, err := CoolingToTemperature(in, wallTemp, t2)
		if err != nil {
			return math.NaN()
		}
		return r.Power - power
	}
	res, err := solver.Solve(residual, tdry, in.Air().DryBulb(), solver.Config{})
	if err != nil {
		return CoolingResult{}, fmt.Errorf("process: cooling with %g kW: %w", power, err)
	}
	return CoolingToTemperature(in, wallTemp, res.Root)
}
