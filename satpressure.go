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

// buckEstimate returns the saturation vapour pressure [Pa] over water
// (t > 0) or ice (t <= 0) at temperature t [°C] from the Arden Buck
// equation:
//
//	Buck, A.L. (1996) Buck Research CR-1A User's Manual, Appendix 1.
func buckEstimate(t float64) float64 {
	if t > 0 {
		return 611.21 * math.Exp((18.678-t/234.5)*(t/(257.14+t)))
	}
	return 611.15 * math.Exp((23.036-t/333.7)*(t/(279.82+t)))
}

// hylandWexlerLn returns the natural logarithm of the saturation
// vapour pressure [Pa] at temperature t [°C] from the reference
// correlation of
//
//	Hyland, R.W. and A. Wexler (1983) Formulations for the
//	thermodynamic properties of the saturated phases of H2O from
//	173.15 K to 473.15 K, ASHRAE Transactions 89(2A):500–519,
//
// using the ice coefficient set below 0 °C and the liquid-water set
// above.
func hylandWexlerLn(t float64) float64 {
	T := t + zeroC
	if t >= 0 {
		return -5.8002206e3/T + 1.3914993 - 4.8640239e-2*T +
			4.1764768e-5*T*T - 1.4452093e-8*T*T*T +
			6.5459673*math.Log(T)
	}
	return -5.6745359e3/T + 6.3925247 - 9.677843e-3*T +
		6.2215701e-7*T*T + 2.0747825e-9*T*T*T -
		9.484024e-13*T*T*T*T + 4.1635019*math.Log(T)
}

// satPressure is the internal form of SaturationPressure. It returns
// NaN outside the valid temperature range so that residual functions
// built on it signal domain violations to the solver instead of
// producing silently wrong roots.
func satPressure(t float64) float64 {
	if t < TMin || t > TMax {
		return math.NaN()
	}
	est := buckEstimate(t)
	lnRef := hylandWexlerLn(t)
	res, err := solver.Solve(func(p float64) float64 {
		return lnRef - math.Log(p)
	}, est/2, est*2, solver.Config{Tolerance: 1e-2})
	if err != nil {
		return math.NaN()
	}
	return res.Root
}

// SaturationPressure returns the saturation vapour pressure of water
// [Pa] at temperature t [°C]. An Arden Buck estimate seeds the search
// bracket and the root finder refines the result against the
// Hyland–Wexler reference correlation.
func SaturationPressure(t float64) (float64, error) {
	if err := checkTemperature("temperature", t); err != nil {
		return 0, err
	}
	ps := satPressure(t)
	if math.IsNaN(ps) {
		return 0, fmt.Errorf("psychro: saturation pressure refinement failed at %g °C", t)
	}
	return ps, nil
}

// SaturationTemperature returns the maximum dry-bulb temperature [°C]
// for atmospheric pressure p [Pa]: the temperature at which the
// saturation pressure of water equals p. The search is seeded by an
// inverted Magnus approximation.
func SaturationTemperature(p float64) (float64, error) {
	if p <= 0 {
		return 0, errRange("pressure", p, "must be positive")
	}
	γ := math.Log(p / 611.2)
	seed := 243.12 * γ / (17.62 - γ)
	lnP := math.Log(p)
	res, err := solver.Solve(func(t float64) float64 {
		return hylandWexlerLn(t) - lnP
	}, seed-5, seed+5, solver.Config{})
	if err != nil {
		return 0, fmt.Errorf("psychro: saturation temperature at %g Pa: %w", p, err)
	}
	return res.Root, nil
}
