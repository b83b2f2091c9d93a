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

// MoistAir is an immutable moist-air state: dry-bulb temperature,
// humidity and total pressure fixed at construction, with all other
// properties derived on demand. The zero value is not valid; use
// NewMoistAir or NewMoistAirFromX.
type MoistAir struct {
	t  float64 // dry-bulb temperature [°C]
	x  float64 // humidity ratio [kg/kg]
	rh float64 // relative humidity [%]
	p  float64 // total pressure [Pa]
}

// NewMoistAir returns the moist-air state with dry-bulb temperature t
// [°C], relative humidity rh [%] and total pressure p [Pa]. All inputs
// are validated here once; the returned value cannot represent an
// invalid state.
func NewMoistAir(t, rh, p float64) (MoistAir, error) {
	if err := checkTemperature("dry-bulb temperature", t); err != nil {
		return MoistAir{}, err
	}
	if rh < 0 || rh > 100 {
		return MoistAir{}, errRange("relative humidity", rh, "must be between 0 and 100 %")
	}
	if p <= 0 {
		return MoistAir{}, errRange("pressure", p, "must be positive")
	}
	ps := satPressure(t)
	if ps >= p {
		return MoistAir{}, errRange("saturation pressure", ps, "must be below total pressure")
	}
	return MoistAir{t: t, x: HumidityRatio(rh, ps, p), rh: rh, p: p}, nil
}

// NewMoistAirFromX returns the moist-air state with dry-bulb
// temperature t [°C], humidity ratio x [kg/kg] and total pressure p
// [Pa].
func NewMoistAirFromX(t, x, p float64) (MoistAir, error) {
	if err := checkTemperature("dry-bulb temperature", t); err != nil {
		return MoistAir{}, err
	}
	if x < 0 {
		return MoistAir{}, errRange("humidity ratio", x, "must not be negative")
	}
	if p <= 0 {
		return MoistAir{}, errRange("pressure", p, "must be positive")
	}
	ps := satPressure(t)
	if ps >= p {
		return MoistAir{}, errRange("saturation pressure", ps, "must be below total pressure")
	}
	rh := RelativeHumidity(t, x, p)
	if rh > 100 {
		// Supersaturated: the excess is mist, the vapour phase is
		// saturated.
		rh = 100
	}
	return MoistAir{t: t, x: x, rh: rh, p: p}, nil
}

// DryBulb returns the dry-bulb temperature [°C].
func (a MoistAir) DryBulb() float64 { return a.t }

// HumidityRatio returns the humidity ratio [kg/kg].
func (a MoistAir) HumidityRatio() float64 { return a.x }

// RelHumidity returns the relative humidity [%].
func (a MoistAir) RelHumidity() float64 { return a.rh }

// Pressure returns the total pressure [Pa].
func (a MoistAir) Pressure() float64 { return a.p }

// Enthalpy returns the specific enthalpy [kJ/kg dry air].
func (a MoistAir) Enthalpy() float64 { return Enthalpy(a.t, a.x, a.p) }

// Density returns the density [kg/m³].
func (a MoistAir) Density() float64 { return Density(a.t, a.x, a.p) }

// SpecificHeat returns the isobaric specific heat [kJ/(kg dry air K)].
func (a MoistAir) SpecificHeat() float64 { return SpecificHeat(a.t, a.x) }

// DynamicViscosity returns the dynamic viscosity [Pa s].
func (a MoistAir) DynamicViscosity() float64 { return DynamicViscosity(a.t, a.x) }

// ThermalConductivity returns the thermal conductivity [W/(m K)].
func (a MoistAir) ThermalConductivity() float64 { return ThermalConductivity(a.t, a.x) }

// DewPoint returns the dew-point temperature [°C].
func (a MoistAir) DewPoint() (float64, error) { return DewPoint(a.t, a.rh, a.p) }

// WetBulb returns the thermodynamic wet-bulb temperature [°C].
func (a MoistAir) WetBulb() (float64, error) { return WetBulb(a.t, a.rh, a.p) }
