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

import "github.com/ctessum/unit"

// kgPerSecond is the dimension set of a mass flow [kg s-1].
var kgPerSecond = unit.Dimensions{unit.MassDim: 1, unit.TimeDim: -1}

// MassFlowUnit returns the moist-air mass flow as a dimensioned
// quantity [kg s-1].
func (f AirFlow) MassFlowUnit() *unit.Unit {
	return unit.New(f.MassFlow(), kgPerSecond)
}

// PowerUnit returns the heat input as a dimensioned quantity [W].
func (r HeatingResult) PowerUnit() *unit.Unit {
	return unit.New(r.Power*1000, unit.Watt)
}

// PowerUnit returns the heat input as a dimensioned quantity [W],
// negative for cooling.
func (r CoolingResult) PowerUnit() *unit.Unit {
	return unit.New(r.Power*1000, unit.Watt)
}

// CondensateFlowUnit returns the condensate mass flow as a
// dimensioned quantity [kg s-1].
func (r CoolingResult) CondensateFlowUnit() *unit.Unit {
	return unit.New(r.CondensateFlow, kgPerSecond)
}
