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

// WetBulb returns the thermodynamic wet-bulb temperature [°C] of moist
// air at dry-bulb temperature t [°C], relative humidity rh [%] and
// total pressure p [Pa].
//
// The residual is an energy balance: the enthalpy of the free-stream
// air plus the enthalpy carried by the moisture that evaporates or
// condenses to reach saturation must equal the enthalpy of saturated
// air at the trial wet-bulb temperature. The condensed phase is liquid
// water above 0 °C and ice below. The closed-form approximation of
// Stull seeds the search bracket:
//
//	Stull, R. (2011) Wet-bulb temperature from relative humidity and
//	air temperature, J. Appl. Meteor. Climatol. 50(11):2267–2269.
func WetBulb(t, rh, p float64) (float64, error) {
	if err := checkTemperature("temperature", t); err != nil {
		return 0, err
	}
	if rh < 0 || rh > 100 {
		return 0, errRange("relative humidity", rh, "must be between 0 and 100 %")
	}
	if rh == 100 {
		return t, nil
	}

	x := HumidityRatio(rh, satPressure(t), p)
	h := Enthalpy(t, x, p)
	residual := func(twb float64) float64 {
		xs := MaxHumidityRatio(satPressure(twb), p)
		var hc float64
		if twb >= 0 {
			hc = WaterEnthalpy(twb)
		} else {
			hc = IceEnthalpy(twb)
		}
		return h + (xs-x)*hc - Enthalpy(twb, xs, p)
	}

	seed := stullWetBulb(t, rh)
	hi := seed + 3
	if hi > t {
		hi = t
	}
	res, err := solver.Solve(residual, seed-3, hi, solver.Config{})
	if err != nil {
		return 0, fmt.Errorf("psychro: wet bulb at %g °C, %g %%: %w", t, rh, err)
	}
	return res.Root, nil
}

// stullWetBulb is the Stull (2011) closed-form wet-bulb approximation,
// fitted for sea-level pressure.
func stullWetBulb(t, rh float64) float64 {
	return t*math.Atan(0.151977*math.Sqrt(rh+8.313659)) +
		math.Atan(t+rh) - math.Atan(rh-1.676331) +
		0.00391838*math.Pow(rh, 1.5)*math.Atan(0.023101*rh) -
		4.686035
}
