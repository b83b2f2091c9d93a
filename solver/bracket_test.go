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

import "testing"

func TestBracketValid(t *testing.T) {
	tests := []struct {
		br   Bracket
		want bool
	}{
		{Bracket{A: 0, B: 1, FA: -1, FB: 2}, true},
		{Bracket{A: 0, B: 1, FA: 1, FB: 2}, false},
		{Bracket{A: 0, B: 1, FA: 0, FB: 2}, false},
	}
	for i, test := range tests {
		if got := test.br.Valid(); got != test.want {
			t.Errorf("%d: Valid() = %v, want %v", i, got, test.want)
		}
	}
}

// TestFindBracketHalfPoint covers the case where the halved trial point
// already lands on the other side of the root.
func TestFindBracketHalfPoint(t *testing.T) {
	f := func(x float64) float64 { return x - 5 }
	br, err := findBracket(f, 8, f(8), Config{}.withDefaults())
	if err != nil {
		t.Fatal(err)
	}
	if !br.Valid() {
		t.Fatalf("bracket %+v does not straddle a root", br)
	}
}

// TestFindBracketExtrapolation covers the case where the halved trial
// point has the same residual sign, so the linear extrapolation cycles
// must locate the far side of the root.
func TestFindBracketExtrapolation(t *testing.T) {
	f := func(x float64) float64 { return x - 2 }
	b := 8.0
	br, err := findBracket(f, b, f(b), Config{}.withDefaults())
	if err != nil {
		t.Fatal(err)
	}
	if !br.Valid() {
		t.Fatalf("bracket %+v does not straddle a root", br)
	}
	if br.A != b {
		t.Errorf("bracket kept A = %g, want the original point %g", br.A, b)
	}
	lo, hi := br.A, br.B
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo > 2 || hi < 2 {
		t.Errorf("bracket [%g, %g] does not contain the root", lo, hi)
	}
}

func TestFindBracketFailure(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1 } // no real root
	_, err := findBracket(f, 3, f(3), Config{}.withDefaults())
	if err != ErrBracket {
		t.Errorf("err = %v, want ErrBracket", err)
	}
}
