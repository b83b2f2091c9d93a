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

// Package process calculates HVAC air-treatment processes — heating,
// cooling with a real (bypass-factor) coil, and stream mixing — on
// moist-air flows. Processes whose outlet state cannot be written in
// closed form (a target relative humidity or input power for a coil, a
// flow split hitting a target mixture temperature) are solved with the
// root finder in github.com/thermalmodel/psychro/solver, with the whole
// downstream calculation inside the residual.
//
// Power is in kW and positive when heat is added to the air stream;
// mass flows are in kg/s.
package process

import (
	"github.com/thermalmodel/psychro"
)

// AirFlow is an immutable flow of moist air: a thermodynamic state and
// a dry-air mass flow. The zero value is not valid; use NewAirFlow.
type AirFlow struct {
	air psychro.MoistAir
	mda float64 // dry-air mass flow [kg/s]
}

// NewAirFlow returns a flow of air with the given dry-air mass flow
// [kg/s]. The flow is validated here once.
func NewAirFlow(air psychro.MoistAir, massFlowDryAir float64) (AirFlow, error) {
	if massFlowDryAir <= 0 {
		return AirFlow{}, &psychro.InputError{
			Quantity:   "dry-air mass flow",
			Value:      massFlowDryAir,
			Constraint: "must be positive",
		}
	}
	return AirFlow{air: air, mda: massFlowDryAir}, nil
}

// Air returns the moist-air state.
func (f AirFlow) Air() psychro.MoistAir { return f.air }

// DryAirMassFlow returns the dry-air mass flow [kg/s].
func (f AirFlow) DryAirMassFlow() float64 { return f.mda }

// MassFlow returns the moist-air mass flow [kg/s], dry air plus
// vapour.
func (f AirFlow) MassFlow() float64 {
	return f.mda * (1 + f.air.HumidityRatio())
}

// withState returns a flow with the same dry-air mass flow and a new
// state.
func (f AirFlow) withState(air psychro.MoistAir) AirFlow {
	return AirFlow{air: air, mda: f.mda}
}
