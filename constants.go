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

const (
	// RDryAir is the specific gas constant of dry air [J/(kg K)].
	RDryAir = 287.055

	// RWaterVapour is the specific gas constant of water vapour [J/(kg K)].
	RWaterVapour = 461.52

	// epsilon is the ratio of the molar masses of water vapour and
	// dry air.
	epsilon = 0.621945

	// PressureAtm is the standard atmospheric pressure [Pa].
	PressureAtm = 101325.0

	// TMin and TMax delimit the temperature range [°C] over which the
	// correlations in this package are valid.
	TMin = -100.0
	TMax = 200.0

	// latentHeat0 is the latent heat of vaporization of water at 0 °C
	// [kJ/kg].
	latentHeat0 = 2501.0

	// cpVapour is the specific heat of water vapour [kJ/(kg K)],
	// treated as constant over the HVAC temperature range.
	cpVapour = 1.86

	// cpWater is the specific heat of liquid water [kJ/(kg K)].
	cpWater = 4.186

	// cpIce is the specific heat of ice [kJ/(kg K)] and fusionHeat the
	// heat of fusion at 0 °C [kJ/kg].
	cpIce      = 2.09
	fusionHeat = 333.55

	// zeroC is the zero of the Celsius scale [K].
	zeroC = 273.15
)
