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

import "math"

// HumidityRatio returns the humidity ratio [kg/kg] of moist air with
// relative humidity rh [%], saturation pressure ps [Pa] and total
// pressure p [Pa].
func HumidityRatio(rh, ps, p float64) float64 {
	pw := rh / 100 * ps
	if p-pw <= 0 {
		return math.NaN()
	}
	return epsilon * pw / (p - pw)
}

// MaxHumidityRatio returns the humidity ratio [kg/kg] of saturated
// moist air with saturation pressure ps [Pa] and total pressure p
// [Pa]. When ps reaches p the vapour capacity is unbounded and +Inf is
// returned.
func MaxHumidityRatio(ps, p float64) float64 {
	if p-ps <= 0 {
		return math.Inf(1)
	}
	return epsilon * ps / (p - ps)
}

// VapourPressure returns the partial pressure of water vapour [Pa] in
// moist air with humidity ratio x [kg/kg] at total pressure p [Pa].
func VapourPressure(x, p float64) float64 {
	return x * p / (epsilon + x)
}

// RelativeHumidity returns the relative humidity [%] of moist air at
// dry-bulb temperature t [°C] with humidity ratio x [kg/kg] and total
// pressure p [Pa].
func RelativeHumidity(t, x, p float64) float64 {
	return VapourPressure(x, p) / satPressure(t) * 100
}
