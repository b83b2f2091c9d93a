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

package solver

import "errors"

// ErrBracket is returned when no sign change straddling a root could be
// established, either from the caller-supplied points or by the bounded
// extension search. It indicates that the problem is numerically
// unsolvable with the current seed, as opposed to the inputs being
// physically invalid.
var ErrBracket = errors.New("solver: residual has no sign change across the bracket")

// Bracket is a pair of trial points together with their residual values.
// During active solving FA and FB have opposite signs; A is the point
// with the larger residual magnitude and B the current best estimate.
type Bracket struct {
	A, B   float64
	FA, FB float64
}

// Valid reports whether the bracket straddles a root, i.e. whether the
// residuals at the two points have opposite signs.
func (br Bracket) Valid() bool {
	return br.FA*br.FB < 0
}

// findBracket attempts to recover a valid bracket from a one-sided
// guess. Starting from the best available point b, it places a second
// trial point at b/ExtDivisor, then repeatedly solves the two-point
// linear interpolation through both points for the abscissa that would
// produce a residual of -f(b)/(ExtTarget-i), evaluating the true
// residual there. The first point whose residual has the opposite sign
// to f(b) completes the bracket.
//
// The search is heuristic rather than globally convergent: it assumes
// the residual is smooth and monotonic near the guess, which holds for
// the physical correlations this library inverts but not for arbitrary
// functions. When every cycle fails, ErrBracket is returned.
func findBracket(f Func, b, fb float64, cfg Config) (Bracket, error) {
	x2 := b / float64(cfg.ExtDivisor)
	f2 := f(x2)
	if err := checkFinite(x2, f2); err != nil {
		return Bracket{}, err
	}
	if f2*fb < 0 {
		return Bracket{A: b, FA: fb, B: x2, FB: f2}, nil
	}
	if f2 == fb {
		// The two points do not determine a line.
		return Bracket{}, ErrBracket
	}

	cycles := 2
	if cfg.ExtTarget > cycles {
		cycles = cfg.ExtTarget
	}
	for i := 0; i < cycles; i++ {
		div := float64(cfg.ExtTarget - i)
		if div <= 0 {
			break
		}
		target := -fb / div
		x := b + (target-fb)*(x2-b)/(f2-fb)
		fx := f(x)
		if err := checkFinite(x, fx); err != nil {
			return Bracket{}, err
		}
		if fx*fb < 0 || fx == 0 {
			return Bracket{A: b, FA: fb, B: x, FB: fx}, nil
		}
	}
	return Bracket{}, ErrBracket
}
