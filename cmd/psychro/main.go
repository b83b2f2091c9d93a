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

// Command psychro is a command-line interface for moist-air property
// and HVAC process calculations.
package main

import (
	"fmt"
	"os"

	"github.com/thermalmodel/psychro/psychroutil"
)

func main() {
	if err := psychroutil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
