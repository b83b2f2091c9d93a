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
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/thermalmodel/psychro"
	"github.com/thermalmodel/psychro/solver"
)

// Mix adiabatically mixes two air flows at the same pressure. The
// outlet humidity ratio and enthalpy follow from the mass and energy
// balances; the outlet temperature is recovered from the enthalpy.
func Mix(f1, f2 AirFlow) (AirFlow, error) {
	return MixMulti(f1, f2)
}

// MixMulti adiabatically mixes any number of air flows at the same
// pressure.
func MixMulti(flows ...AirFlow) (AirFlow, error) {
	if len(flows) == 0 {
		return AirFlow{}, &psychro.InputError{
			Quantity:   "number of flows",
			Value:      0,
			Constraint: "at least one flow is required for mixing",
		}
	}
	p := flows[0].Air().Pressure()
	mda := make([]float64, len(flows))
	mx := make([]float64, len(flows))
	mh := make([]float64, len(flows))
	for i, f := range flows {
		if !samePressure(f.Air().Pressure(), p) {
			return AirFlow{}, &psychro.InputError{
				Quantity:   "pressure",
				Value:      f.Air().Pressure(),
				Constraint: "all mixed flows must be at the same pressure",
			}
		}
		mda[i] = f.DryAirMassFlow()
		mx[i] = f.DryAirMassFlow() * f.Air().HumidityRatio()
		mh[i] = f.DryAirMassFlow() * f.Air().Enthalpy()
	}
	mdaTotal := floats.Sum(mda)
	air, err := mixedState(floats.Sum(mx)/mdaTotal, floats.Sum(mh)/mdaTotal, p)
	if err != nil {
		return AirFlow{}, err
	}
	return NewAirFlow(air, mdaTotal)
}

// MixingResult is the outcome of a two-stream mixing calculation with
// adjustable flow split.
type MixingResult struct {
	// Outlet is the mixed outlet flow.
	Outlet AirFlow
	// Flow1 and Flow2 are the dry-air mass flows [kg/s] taken from
	// the two streams.
	Flow1, Flow2 float64
}

// MixingToTemperature mixes two air streams at the same pressure,
// choosing the flow taken from each so that the outlet hits the target
// dry-bulb temperature [°C] at the target total dry-air mass flow
// [kg/s]. Each stream has a minimum locked flow [kg/s] that is always
// taken.
//
// If the locked flows already reach the target total, the locked mix
// is returned as is. If the target temperature is at or beyond what
// saturating one stream's flow can reach, that extreme mix is
// returned. Only in the interior case is the flow split solved for
// iteratively.
func MixingToTemperature(air1 psychro.MoistAir, minFlow1 float64, air2 psychro.MoistAir, minFlow2, targetFlow, targetTemp float64) (MixingResult, error) {
	switch {
	case minFlow1 < 0:
		return MixingResult{}, &psychro.InputError{
			Quantity:   "minimum flow of stream 1",
			Value:      minFlow1,
			Constraint: "must not be negative",
		}
	case minFlow2 < 0:
		return MixingResult{}, &psychro.InputError{
			Quantity:   "minimum flow of stream 2",
			Value:      minFlow2,
			Constraint: "must not be negative",
		}
	case targetFlow <= 0:
		return MixingResult{}, &psychro.InputError{
			Quantity:   "target flow",
			Value:      targetFlow,
			Constraint: "must be positive",
		}
	case !samePressure(air1.Pressure(), air2.Pressure()):
		return MixingResult{}, &psychro.InputError{
			Quantity:   "pressure",
			Value:      air2.Pressure(),
			Constraint: "both mixed streams must be at the same pressure",
		}
	}

	// Locked flows alone meet or exceed the requested total: the
	// split is fixed, no temperature target can be honoured.
	if minFlow1+minFlow2 >= targetFlow {
		return mixSplit(air1, minFlow1, air2, minFlow2)
	}

	m1Max := targetFlow - minFlow2
	hot, err := mixSplit(air1, m1Max, air2, minFlow2)
	if err != nil {
		return MixingResult{}, err
	}
	cold, err := mixSplit(air1, minFlow1, air2, targetFlow-minFlow1)
	if err != nil {
		return MixingResult{}, err
	}
	if hot.Outlet.Air().DryBulb() < cold.Outlet.Air().DryBulb() {
		hot, cold = cold, hot
	}
	if targetTemp >= hot.Outlet.Air().DryBulb() {
		return hot, nil
	}
	if targetTemp <= cold.Outlet.Air().DryBulb() {
		return cold, nil
	}

	residual := func(m1 float64) float64 {
		r, err := mixSplit(air1, m1, air2, targetFlow-m1)
		if err != nil {
			return math.NaN()
		}
		return targetTemp - r.Outlet.Air().DryBulb()
	}
	res, err := solver.Solve(residual, minFlow1, m1Max, solver.Config{})
	if err != nil {
		return MixingResult{}, err
	}
	return mixSplit(air1, res.Root, air2, targetFlow-res.Root)
}

// mixSplit mixes fixed flows of the two streams. Either flow may be
// zero.
func mixSplit(air1 psychro.MoistAir, m1 float64, air2 psychro.MoistAir, m2 float64) (MixingResult, error) {
	mda := m1 + m2
	if mda <= 0 {
		return MixingResult{}, &psychro.InputError{
			Quantity:   "total flow",
			Value:      mda,
			Constraint: "must be positive",
		}
	}
	x := (m1*air1.HumidityRatio() + m2*air2.HumidityRatio()) / mda
	h := (m1*air1.Enthalpy() + m2*air2.Enthalpy()) / mda
	air, err := mixedState(x, h, air1.Pressure())
	if err != nil {
		return MixingResult{}, err
	}
	out, err := NewAirFlow(air, mda)
	if err != nil {
		return MixingResult{}, err
	}
	return MixingResult{Outlet: out, Flow1: m1, Flow2: m2}, nil
}

// mixedState recovers a moist-air state from a humidity ratio and an
// enthalpy produced by a mixing balance.
func mixedState(x, h, p float64) (psychro.MoistAir, error) {
	t, err := psychro.DryBulbFromEnthalpy(h, x, p)
	if err != nil {
		return psychro.MoistAir{}, err
	}
	return psychro.NewMoistAirFromX(t, x, p)
}

// samePressure reports whether two pressures agree closely enough to
// mix the streams without a pressure-change model.
func samePressure(p1, p2 float64) bool {
	return floats.EqualWithinAbsOrRel(p1, p2, 0.1, 1e-6)
}
