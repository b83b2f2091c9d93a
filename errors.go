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

import "fmt"

// InputError reports a physical input outside its valid range, detected
// before any iteration is attempted. It is distinct from
// solver.ErrBracket and solver.NonFiniteError so that callers can tell
// bad inputs apart from numerical failures without matching message
// strings.
type InputError struct {
	// Quantity names the offending input.
	Quantity string
	// Value is the value that was supplied.
	Value float64
	// Constraint describes the violated requirement.
	Constraint string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("psychro: invalid %s %g: %s", e.Quantity, e.Value, e.Constraint)
}

func errRange(quantity string, v float64, constraint string) error {
	return &InputError{Quantity: quantity, Value: v, Constraint: constraint}
}

// checkTemperature validates a temperature against the correlation
// range of the package.
func checkTemperature(name string, t float64) error {
	if t < TMin || t > TMax {
		return errRange(name, t, fmt.Sprintf("must be between %g and %g °C", TMin, TMax))
	}
	return nil
}
