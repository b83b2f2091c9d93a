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

// Package solver finds zeros of scalar functions.
//
// The algorithm is a hybrid of bisection, the secant method and inverse
// quadratic interpolation in the Brent–Dekker family, extended with an
// explicit midpoint evaluation at every step as described in:
//
//	Zhang, Z. (2011) An Improvement to the Brent's Method,
//	International Journal of Experimental Algorithms 2(1):21–26.
//
// It is used throughout github.com/thermalmodel/psychro to invert
// psychrometric correlations that have no closed-form inverse.
package solver

import (
	"fmt"
	"math"
)

// Func is a residual function whose zero crossing is sought. It must be
// pure: any physical parameters that are fixed for the call should be
// closed over, and no shared mutable state may leak into it.
type Func func(x float64) float64

// Config holds the tuning parameters for one root-finding call.
// The zero value selects the defaults via Solve.
type Config struct {
	// Tolerance is the absolute convergence tolerance on the bracket
	// width. If <= 0, DefaultTolerance is used.
	Tolerance float64

	// MaxIter is the maximum number of iterations. If <= 0,
	// DefaultMaxIter is used. When the limit is reached, Solve returns
	// the best available estimate with Result.Converged == false
	// rather than an error; callers that need a strict guarantee must
	// check Result.Converged.
	MaxIter int

	// ExtDivisor and ExtTarget control the bracket-extension search
	// that runs when the initial points do not straddle a root: the
	// second trial point is b/ExtDivisor, and the search aims for
	// residual values -f(b)/(ExtTarget-i) over successive cycles.
	// If <= 0, DefaultExtDivisor and DefaultExtTarget are used.
	ExtDivisor int
	ExtTarget  int

	// Interrupt, if non-nil, is polled once per iteration. When it
	// reports true, iteration stops and the current best estimate is
	// returned with Result.Converged == false and a nil error.
	Interrupt func() bool
}

// Default configuration values.
const (
	DefaultTolerance  = 1e-5
	DefaultMaxIter    = 100
	DefaultExtDivisor = 2
	DefaultExtTarget  = 2
)

func (c Config) withDefaults() Config {
	if c.Tolerance <= 0 {
		c.Tolerance = DefaultTolerance
	}
	if c.MaxIter <= 0 {
		c.MaxIter = DefaultMaxIter
	}
	if c.ExtDivisor <= 0 {
		c.ExtDivisor = DefaultExtDivisor
	}
	if c.ExtTarget <= 0 {
		c.ExtTarget = DefaultExtTarget
	}
	return c
}

// Result holds the outcome of one root-finding call.
type Result struct {
	// Root is the best approximation to the zero of the residual.
	Root float64

	// Iterations is the number of iterations performed.
	Iterations int

	// Converged reports whether the bracket width shrank below the
	// configured tolerance (or an exact zero was hit) before the
	// iteration limit or an interrupt stopped the search.
	Converged bool
}

// Solve finds x in the neighborhood of [a, b] such that f(x) ≈ 0 within
// cfg.Tolerance. If f(a) and f(b) do not have opposite signs, a bounded
// extension search (see Config.ExtDivisor and Config.ExtTarget) attempts
// to recover a valid bracket first; if that fails, ErrBracket is
// returned. Any non-finite residual value encountered aborts the call
// with a *NonFiniteError.
//
// Solve is stateless: all iteration state is local to the call, so it is
// safe for concurrent use.
func Solve(f Func, a, b float64, cfg Config) (Result, error) {
	cfg = cfg.withDefaults()

	fa, fb := f(a), f(b)
	if err := checkFinite(a, fa); err != nil {
		return Result{}, err
	}
	if err := checkFinite(b, fb); err != nil {
		return Result{}, err
	}

	// b is maintained as the point closer to the root.
	if math.Abs(fa) < math.Abs(fb) {
		a, b = b, a
		fa, fb = fb, fa
	}
	if math.Abs(fb) < cfg.Tolerance {
		return Result{Root: b, Converged: true}, nil
	}

	if fa*fb >= 0 {
		br, err := findBracket(f, b, fb, cfg)
		if err != nil {
			return Result{}, err
		}
		a, b, fa, fb = br.A, br.B, br.FA, br.FB
		if math.Abs(fa) < math.Abs(fb) {
			a, b = b, a
			fa, fb = fb, fa
		}
	}

	var res Result
	for i := 0; i < cfg.MaxIter; i++ {
		if cfg.Interrupt != nil && cfg.Interrupt() {
			res.Root = b
			return res, nil
		}
		res.Iterations = i + 1

		c := (a + b) / 2
		fc := f(c)
		if err := checkFinite(c, fc); err != nil {
			return Result{}, err
		}

		var s float64
		if fa != fc && fb != fc {
			// Inverse quadratic interpolation through
			// (a,fa), (b,fb), (c,fc).
			s = a*fb*fc/((fa-fb)*(fa-fc)) +
				b*fa*fc/((fb-fa)*(fb-fc)) +
				c*fa*fb/((fc-fa)*(fc-fb))
		} else {
			// Secant step through (a,fa), (b,fb).
			s = b - fb*(b-a)/(fb-fa)
		}

		// The interpolated candidate is only trusted while it falls
		// inside the current bracket; with a flat residual the
		// interpolation can land arbitrarily far outside, where the
		// residual may not even be defined. Bisect in that case.
		if lo, hi := math.Min(a, b), math.Max(a, b); !(lo < s && s < hi) {
			s = c
		}

		diff := math.Abs(b - a)

		// Keep c <= s so that the sign analysis below always sees
		// the two candidates in the same order.
		if c > s {
			c, s = s, c
		}
		fc, fs := f(c), f(s)

		for _, p := range [...][2]float64{{a, fa}, {b, fb}, {c, fc}, {s, fs}} {
			if err := checkFinite(p[0], p[1]); err != nil {
				return Result{}, err
			}
		}

		switch {
		case fc*fs < 0:
			// The root lies between the two candidates.
			a, b = s, c
		case fs*fb < 0:
			a = c
		default:
			b = s
		}
		fa, fb = f(a), f(b)

		if diff < cfg.Tolerance || fb == 0 {
			res.Root = b
			res.Converged = true
			return res, nil
		}
	}
	res.Root = b
	return res, nil
}

func checkFinite(x, fx float64) error {
	if math.IsNaN(fx) || math.IsInf(fx, 0) {
		return &NonFiniteError{X: x, FX: fx}
	}
	return nil
}

// NonFiniteError reports a NaN or infinite residual value encountered
// during iteration, which indicates that the residual function was
// evaluated outside its valid domain.
type NonFiniteError struct {
	// X is the argument at which the residual was evaluated.
	X float64
	// FX is the non-finite residual value.
	FX float64
}

func (e *NonFiniteError) Error() string {
	return fmt.Sprintf("solver: non-finite residual f(%g) = %g", e.X, e.FX)
}
