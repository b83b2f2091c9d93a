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

// DryAirCp returns the isobaric specific heat of dry air [kJ/(kg K)]
// at temperature t [°C], from a cubic fit in absolute temperature.
func DryAirCp(t float64) float64 {
	T := t + zeroC
	return 1.05045 - 3.645e-4*T + 8.388e-7*T*T - 3.848e-10*T*T*T
}

// DryAirEnthalpy returns the specific enthalpy of dry air [kJ/kg] at
// temperature t [°C], with the reference state h = 0 at 0 °C.
func DryAirEnthalpy(t float64) float64 {
	return DryAirCp(t) * t
}

// DryAirDensity returns the density of dry air [kg/m³] at temperature
// t [°C] and pressure p [Pa], treating it as an ideal gas.
func DryAirDensity(t, p float64) float64 {
	return p / (RDryAir * (t + zeroC))
}

// DryAirDynamicViscosity returns the dynamic viscosity of dry air
// [Pa s] at temperature t [°C], from the Sutherland equation.
func DryAirDynamicViscosity(t float64) float64 {
	T := t + zeroC
	return 1.458e-6 * T * math.Sqrt(T) / (T + 110.4)
}

// DryAirThermalConductivity returns the thermal conductivity of dry
// air [W/(m K)] at temperature t [°C], from a linear fit valid over
// the HVAC temperature range.
func DryAirThermalConductivity(t float64) float64 {
	return 0.02414 + 7.58e-5*t
}
