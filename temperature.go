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

package psychro

import (
	"fmt"

	"github.com/thermalmodel/psychro/solver"
)

// Default search interval [°C] for the dry-bulb inversions, which have
// no closed-form seed. A fresh bracket is constructed on every call.
const (
	dryBulbSearchMin = -90.0
	dryBulbSearchMax = 130.0
)

// DryBulbFromEnthalpy returns the dry-bulb temperature [°C] of moist
// air with specific enthalpy h [kJ/kg dry air], humidity ratio x
// [kg/kg] and total pressure p [Pa], by inverting Enthalpy over the
// default search interval.
func DryBulbFromEnthalpy(h, x, p float64) (float64, error) {
	if x < 0 {
		return 0, errRange("humidity ratio", x, "must not be negative")
	}
	res, err := solver.Solve(func(t float64) float64 {
		return Enthalpy(t, x, p) - h
	}, dryBulbSearchMin, dryBulbSearchMax, solver.Config{})
	if err != nil {
		return 0, fmt.Errorf("psychro: dry bulb from enthalpy %g kJ/kg: %w", h, err)
	}
	return res.Root, nil
}

// DryBulbFromRHX returns the dry-bulb temperature [°C] at which moist
// air with humidity ratio x [kg/kg] and total pressure p [Pa] has
// relative humidity rh [%], by inverting RelativeHumidity over the
// default search interval.
func DryBulbFromRHX(x, rh, p float64) (float64, error) {
	if x <= 0 {
		return 0, errRange("humidity ratio", x, "must be positive")
	}
	if rh <= 0 || rh > 100 {
		return 0, errRange("relative humidity", rh, "must be between 0 (exclusive) and 100 %")
	}
	res, err := solver.Solve(func(t float64) float64 {
		return RelativeHumidity(t, x, p) - rh
	}, dryBulbSearchMin, dryBulbSearchMax, solver.Config{})
	if err != nil {
		return 0, fmt.Errorf("psychro: dry bulb from %g %% relative humidity: %w", rh, err)
	}
	return res.Root, nil
}
