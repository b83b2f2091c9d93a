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

// Enthalpy returns the specific enthalpy of moist air [kJ/kg dry air]
// at dry-bulb temperature t [°C], humidity ratio x [kg/kg] and total
// pressure p [Pa]. For supersaturated air (x above the saturation
// humidity ratio) the excess moisture is accounted for as water mist
// above 0 °C and as ice mist below. At x = 0 the result reduces
// exactly to DryAirEnthalpy.
func Enthalpy(t, x, p float64) float64 {
	ha := DryAirEnthalpy(t)
	hv := WaterVapourEnthalpy(t)
	if x == 0 {
		return ha
	}
	xs := MaxHumidityRatio(satPressure(t), p)
	if x <= xs {
		return ha + x*hv
	}
	if t > 0 {
		return ha + xs*hv + (x-xs)*WaterEnthalpy(t)
	}
	return ha + xs*hv + (x-xs)*IceEnthalpy(t)
}

// SpecificHeat returns the isobaric specific heat of moist air
// [kJ/(kg dry air K)] at dry-bulb temperature t [°C] and humidity
// ratio x [kg/kg].
func SpecificHeat(t, x float64) float64 {
	return DryAirCp(t) + x*cpVapour
}

// Density returns the density of moist air [kg/m³] at dry-bulb
// temperature t [°C], humidity ratio x [kg/kg] and total pressure p
// [Pa], treating the mixture as ideal gases. At x = 0 the result
// reduces exactly to DryAirDensity.
func Density(t, x, p float64) float64 {
	return DryAirDensity(t, p) * (1 + x) / (1 + x*RWaterVapour/RDryAir)
}

// moleFractionVapour returns the mole fraction of water vapour in
// moist air with humidity ratio x.
func moleFractionVapour(x float64) float64 {
	return x / (x + epsilon)
}

// DynamicViscosity returns the dynamic viscosity of moist air [Pa s]
// at dry-bulb temperature t [°C] and humidity ratio x [kg/kg], as a
// mole-fraction-weighted blend of the dry-air and vapour viscosities.
func DynamicViscosity(t, x float64) float64 {
	xv := moleFractionVapour(x)
	return (1-xv)*DryAirDynamicViscosity(t) + xv*WaterVapourDynamicViscosity(t)
}

// ThermalConductivity returns the thermal conductivity of moist air
// [W/(m K)] at dry-bulb temperature t [°C] and humidity ratio x
// [kg/kg], as a mole-fraction-weighted blend of the dry-air and
// vapour conductivities.
func ThermalConductivity(t, x float64) float64 {
	xv := moleFractionVapour(x)
	return (1-xv)*DryAirThermalConductivity(t) + xv*WaterVapourThermalConductivity(t)
}
