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
	"math"

	"github.com/thermalmodel/psychro/solver"
)

// dewPointRHSwitch is the relative humidity [%] below which the
// closed-form dew-point approximation becomes too inaccurate and the
// root finder takes over.
const dewPointRHSwitch = 25.0

// DewPoint returns the dew-point temperature [°C] of moist air at
// dry-bulb temperature t [°C], relative humidity rh [%] and total
// pressure p [Pa].
//
// For rh >= 25 % the Arden Buck equation is inverted in closed form
// (the inversion is a quadratic in the dew-point temperature). Below
// 25 % the approximation error grows, so the root finder inverts the
// condition that the saturation humidity ratio at the dew point equals
// the actual humidity ratio, with a tightened tolerance below 1 % where
// the residual becomes very flat. rh = 0 yields -Inf by convention;
// rh = 100 yields the dry-bulb temperature.
func DewPoint(t, rh, p float64) (float64, error) {
	if err := checkTemperature("temperature", t); err != nil {
		return 0, err
	}
	if rh < 0 || rh > 100 {
		return 0, errRange("relative humidity", rh, "must be between 0 and 100 %")
	}
	ps := satPressure(t)
	if ps >= p {
		return 0, errRange("saturation pressure", ps, "must be below total pressure")
	}
	switch {
	case rh == 0:
		return math.Inf(-1), nil
	case rh == 100:
		return t, nil
	case rh >= dewPointRHSwitch:
		return buckDewPoint(rh / 100 * ps), nil
	}

	x := HumidityRatio(rh, ps, p)
	cfg := solver.Config{}
	if rh < 1 {
		cfg.Tolerance = 1e-7
	}
	res, err := solver.Solve(func(td float64) float64 {
		return MaxHumidityRatio(satPressure(td), p) - x
	}, TMin+10, t, cfg)
	if err != nil {
		return 0, fmt.Errorf("psychro: dew point at %g °C, %g %%: %w", t, rh, err)
	}
	return res.Root, nil
}

// buckDewPoint inverts the Arden Buck saturation-pressure equation for
// the temperature at which the saturation pressure equals the vapour
// pressure pw [Pa]. The exponent argument is quadratic in temperature,
// so the inversion is a quadratic formula; the water coefficient set is
// tried first and the ice set is used when the result is sub-zero.
func buckDewPoint(pw float64) float64 {
	// Water: (18.678 - t/234.5)(t/(257.14+t)) = ln(pw/611.21).
	y := math.Log(pw / 611.21)
	td := quadDewPoint(y, 18.678, 234.5, 257.14)
	if td < 0 {
		// Ice: (23.036 - t/333.7)(t/(279.82+t)) = ln(pw/611.15).
		y = math.Log(pw / 611.15)
		td = quadDewPoint(y, 23.036, 333.7, 279.82)
	}
	return td
}

// quadDewPoint solves t²/b + (y-a)t + cy = 0 for the physical
// (smaller) root.
func quadDewPoint(y, a, b, c float64) float64 {
	B := y - a
	disc := B*B - 4*c*y/b
	return (-B - math.Sqrt(disc)) * b / 2
}
