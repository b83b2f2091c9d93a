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

// WaterEnthalpy returns the specific enthalpy of liquid water [kJ/kg]
// at temperature t [°C], with the reference state h = 0 at 0 °C.
func WaterEnthalpy(t float64) float64 {
	return cpWater * t
}

// WaterSpecificHeat returns the isobaric specific heat of liquid
// water [kJ/(kg K)].
func WaterSpecificHeat(t float64) float64 {
	return cpWater
}

// WaterDensity returns the density of liquid water [kg/m³] at
// temperature t [°C] and atmospheric pressure, from the correlation of
//
//	Kell, G.S. (1975) Density, thermal expansivity, and
//	compressibility of liquid water from 0° to 150°C,
//	J. Chem. Eng. Data 20(1):97–105.
func WaterDensity(t float64) float64 {
	num := 999.83952 + 16.945176*t - 7.9870401e-3*t*t -
		46.170461e-6*t*t*t + 105.56302e-9*t*t*t*t -
		280.54253e-12*t*t*t*t*t
	return num / (1 + 16.879850e-3*t)
}

// IceEnthalpy returns the specific enthalpy of ice [kJ/kg] at
// temperature t [°C] relative to liquid water at 0 °C: the (negative)
// heat of fusion plus the sensible part.
func IceEnthalpy(t float64) float64 {
	return -fusionHeat + cpIce*t
}
