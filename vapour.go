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

// WaterVapourEnthalpy returns the specific enthalpy of water vapour
// [kJ/kg] at temperature t [°C]: the latent heat of vaporization at
// 0 °C plus the sensible superheat.
func WaterVapourEnthalpy(t float64) float64 {
	return latentHeat0 + cpVapour*t
}

// WaterVapourDensity returns the density of water vapour [kg/m³] at
// temperature t [°C] and partial pressure p [Pa], treating it as an
// ideal gas.
func WaterVapourDensity(t, p float64) float64 {
	return p / (RWaterVapour * (t + zeroC))
}

// WaterVapourDynamicViscosity returns the dynamic viscosity of water
// vapour [Pa s] at temperature t [°C], from a linear fit valid over
// the HVAC temperature range.
func WaterVapourDynamicViscosity(t float64) float64 {
	return (8.02 + 0.0361*t) * 1e-6
}

// WaterVapourThermalConductivity returns the thermal conductivity of
// water vapour [W/(m K)] at temperature t [°C], from a linear fit
// valid over the HVAC temperature range.
func WaterVapourThermalConductivity(t float64) float64 {
	return 0.01672 + 5.49e-5*t
}
