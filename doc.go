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

// Package psychro calculates thermophysical properties of moist air,
// water and ice for HVAC process modeling.
//
// Properties that follow directly from empirical correlations
// (saturation pressure, humidity ratio, enthalpy, density, viscosity,
// thermal conductivity) are evaluated in closed form. Properties with
// no closed-form expression (dew point at low relative humidity,
// wet-bulb temperature, dry-bulb temperature from enthalpy or relative
// humidity) are obtained by inverting the forward correlations with the
// root finder in github.com/thermalmodel/psychro/solver.
//
// Units are °C for temperature, Pa for pressure, kg water per kg dry
// air for humidity ratio, kJ per kg dry air for specific enthalpy, and
// percent for relative humidity, unless noted otherwise.
package psychro
