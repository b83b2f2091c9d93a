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

package psychroutil

import (
	"bytes"
	"strings"
	"testing"
)

func TestOptionDefaults(t *testing.T) {
	cases := []struct {
		name string
		want float64
	}{
		{"pressure", 101325},
		{"temperature", 20},
		{"rh", 50},
		{"massflow", 1},
		{"targetrh", -1},
		{"targetflow", 1},
	}
	for _, c := range cases {
		if got := Cfg.GetFloat64(c.name); got != c.want {
			t.Errorf("default %s: %g, want %g", c.name, got, c.want)
		}
	}
}

// execute runs the root command with the given arguments and returns
// everything it writes.
func execute(t *testing.T, args ...string) string {
	t.Helper()
	var b bytes.Buffer
	Root.SetOutput(&b)
	Root.SetArgs(args)
	if err := Root.Execute(); err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return b.String()
}

func TestVersionCmd(t *testing.T) {
	out := execute(t, "version")
	if !strings.Contains(out, "psychro v") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestDewpointCmd(t *testing.T) {
	out := execute(t, "dewpoint", "20", "50")
	if !strings.Contains(out, "9.27") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestPropsCmd(t *testing.T) {
	out := execute(t, "props", "20", "50")
	for _, want := range []string{"humidity ratio", "enthalpy", "wet bulb"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestHeatingCmd(t *testing.T) {
	out := execute(t, "heating", "-t", "10", "-r", "80", "--targettemp", "25")
	if !strings.Contains(out, "25.00") || !strings.Contains(out, "power:") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestCoolingCmd(t *testing.T) {
	out := execute(t, "cooling", "-t", "35", "-r", "45",
		"--walltemp", "4.5", "--targettemp", "16")
	if !strings.Contains(out, "16.00") || !strings.Contains(out, "condensate:") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestMixingCmd(t *testing.T) {
	out := execute(t, "mixing", "-t", "35", "-r", "45",
		"--temperature2", "10", "--rh2", "80",
		"--minflow1", "0.2", "--minflow2", "0.2", "--targetflow", "1",
		"--targettemp", "20")
	if !strings.Contains(out, "20.00") || !strings.Contains(out, "stream 1 flow") {
		t.Errorf("unexpected output %q", out)
	}
}
