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

import (
	"errors"
	"math"
	"testing"
)

func TestSolveConvergence(t *testing.T) {
	tests := []struct {
		name string
		f    Func
		a, b float64
		want float64
	}{
		{"linear", func(x float64) float64 { return x - 3 }, 0, 10, 3},
		{"cubic", func(x float64) float64 { return x*x*x - 8 }, 0, 5, 2},
		{"exponential", func(x float64) float64 { return math.Exp(x) - 10 }, 0, 5, math.Log(10)},
		{"logarithmic", func(x float64) float64 { return math.Log(x) - 1 }, 1, 10, math.E},
		{"cosine", func(x float64) float64 { return math.Cos(x) - 0.2 }, 0, 3, math.Acos(0.2)},
		{"nonmonotonic", func(x float64) float64 { return x*x - 3*x + 1 }, 1, 2.5, (3 - math.Sqrt(5)) / 2},
		{"reversed bracket", func(x float64) float64 { return x - 3 }, 10, 0, 3},
	}
	for _, test := range tests {
		res, err := Solve(test.f, test.a, test.b, Config{})
		if err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		if !res.Converged {
			t.Errorf("%s: did not converge after %d iterations", test.name, res.Iterations)
		}
		if math.Abs(res.Root-test.want) > 1e-4 {
			t.Errorf("%s: root = %g, want %g", test.name, res.Root, test.want)
		}
		if math.Abs(test.f(res.Root)) > 1e-3 {
			t.Errorf("%s: residual at root = %g", test.name, test.f(res.Root))
		}
		if res.Iterations >= DefaultMaxIter {
			t.Errorf("%s: used all %d iterations", test.name, res.Iterations)
		}
	}
}

func TestSolveEndpointRoot(t *testing.T) {
	f := func(x float64) float64 { return x }
	res, err := Solve(f, 0, 5, Config{})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Converged {
		t.Error("endpoint root not recognized")
	}
	if res.Root != 0 {
		t.Errorf("root = %g, want 0", res.Root)
	}
	if res.Iterations != 0 {
		t.Errorf("iterations = %d, want 0", res.Iterations)
	}
}

// TestSolveOneSidedBracket checks that a same-sign initial guess for a
// monotonic function is recovered by the extension search.
func TestSolveOneSidedBracket(t *testing.T) {
	tests := []struct {
		name string
		f    Func
		a, b float64
		want float64
	}{
		{"right of root", func(x float64) float64 { return x - 5 }, 8, 12, 5},
		{"left of root", func(x float64) float64 { return x + 5 }, -8, -12, -5},
	}
	for _, test := range tests {
		res, err := Solve(test.f, test.a, test.b, Config{})
		if err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		if math.Abs(res.Root-test.want) > 1e-4 {
			t.Errorf("%s: root = %g, want %g", test.name, res.Root, test.want)
		}
	}
}

func TestSolveNoRoot(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1 }
	_, err := Solve(f, 1, 2, Config{})
	if !errors.Is(err, ErrBracket) {
		t.Errorf("err = %v, want ErrBracket", err)
	}
}

func TestSolveNonFinite(t *testing.T) {
	f := func(x float64) float64 { return math.Sqrt(x) - 2 }
	_, err := Solve(f, -5, 9, Config{})
	var nfe *NonFiniteError
	if !errors.As(err, &nfe) {
		t.Fatalf("err = %v, want *NonFiniteError", err)
	}
	if nfe.X != -5 {
		t.Errorf("offending argument = %g, want -5", nfe.X)
	}
}

// TestSolveInterpolationEscape checks that interpolation candidates are
// confined to the current bracket. The residual has a long flat tail,
// over which inverse quadratic interpolation produces steps far outside
// the bracket, and is undefined beyond its domain.
func TestSolveInterpolationEscape(t *testing.T) {
	var evals []float64
	f := func(x float64) float64 {
		evals = append(evals, x)
		if x < -100 || x > 200 {
			return math.NaN()
		}
		return math.Expm1((x - 150) / 8)
	}
	res, err := Solve(f, -90, 160, Config{})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Converged {
		t.Errorf("did not converge after %d iterations", res.Iterations)
	}
	if math.Abs(res.Root-150) > 1e-3 {
		t.Errorf("root = %g, want 150", res.Root)
	}
	for _, x := range evals {
		if x < -90 || x > 160 {
			t.Errorf("residual evaluated at %g, outside the initial bracket", x)
		}
	}
}

// TestSolveIterationLimit checks the best-effort contract: exhausting
// the iteration limit returns the current estimate without an error.
func TestSolveIterationLimit(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - 2*x - 5 }
	res, err := Solve(f, 0, 3, Config{MaxIter: 1, Tolerance: 1e-14})
	if err != nil {
		t.Fatal(err)
	}
	if res.Converged {
		t.Error("Converged = true with a one-iteration limit")
	}
	if res.Iterations != 1 {
		t.Errorf("iterations = %d, want 1", res.Iterations)
	}
	if math.IsNaN(res.Root) || math.IsInf(res.Root, 0) {
		t.Errorf("best estimate = %g", res.Root)
	}
}

func TestSolveInterrupt(t *testing.T) {
	var polled int
	interrupt := func() bool {
		polled++
		return polled > 1
	}
	f := func(x float64) float64 { return x - 3 }
	res, err := Solve(f, 0, 10, Config{Tolerance: 1e-12, Interrupt: interrupt})
	if err != nil {
		t.Fatal(err)
	}
	if res.Converged {
		t.Error("Converged = true after interrupt")
	}
	if polled != 2 {
		t.Errorf("interrupt polled %d times, want 2", polled)
	}
}

func TestSolveDeterminism(t *testing.T) {
	f := func(x float64) float64 { return math.Exp(x) - 10 }
	first, err := Solve(f, 0, 5, Config{})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		res, err := Solve(f, 0, 5, Config{})
		if err != nil {
			t.Fatal(err)
		}
		if res != first {
			t.Fatalf("run %d: result %+v differs from first run %+v", i, res, first)
		}
	}
}
