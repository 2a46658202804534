/*
Copyright © 2026 the AqChem authors.
This file is part of AqChem.

AqChem is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

AqChem is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with AqChem.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package chemquant parses dimensioned quantity strings and converts
// between the mass-, volume-, and amount-based concentration units used
// in aqueous chemistry. All values are held as SI github.com/ctessum/unit
// quantities; the substance-amount dimension is registered here.
package chemquant

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ctessum/unit"
)

// MoleDim is the substance-amount base dimension. The unit package
// reserves the "mol" symbol, so the dimension is registered as "mole".
// It is initialized here, not in an init function, so that the
// dimension sets below can depend on it.
var MoleDim = unit.NewDimension("mole")

// Dimension sets for the quantities handled here.
var (
	// Mole is an amount of substance.
	Mole = unit.Dimensions{MoleDim: 1}
	// PerMole is an inverse amount of substance (e.g. Avogadro's number).
	PerMole = unit.Dimensions{MoleDim: -1}
	// MolePerMeter3 is molar concentration.
	MolePerMeter3 = unit.Dimensions{MoleDim: 1, unit.LengthDim: -3}
	// MolePerKilogram is molality.
	MolePerKilogram = unit.Dimensions{MoleDim: 1, unit.MassDim: -1}
	// KilogramPerMole is molecular weight.
	KilogramPerMole = unit.Dimensions{unit.MassDim: 1, MoleDim: -1}
	// JoulePerMole is molar energy (reaction enthalpy, activation energy).
	JoulePerMole = unit.Dimensions{unit.MassDim: 1, unit.LengthDim: 2,
		unit.TimeDim: -2, MoleDim: -1}
	// JoulePerMoleKelvin is molar heat capacity (the gas constant).
	JoulePerMoleKelvin = unit.Dimensions{unit.MassDim: 1, unit.LengthDim: 2,
		unit.TimeDim: -2, unit.TemperatureDim: -1, MoleDim: -1}
	// Coulomb is electric charge.
	Coulomb = unit.Dimensions{unit.CurrentDim: 1, unit.TimeDim: 1}
	// CoulombPerMole is molar charge (the Faraday constant).
	CoulombPerMole = unit.Dimensions{unit.CurrentDim: 1, unit.TimeDim: 1,
		MoleDim: -1}
	// Meter2PerSecond is a diffusion coefficient.
	Meter2PerSecond = unit.Dimensions{unit.LengthDim: 2, unit.TimeDim: -1}
	// Meter2PerVoltSecond is ionic mobility, m2/(V s) = A s2/kg.
	Meter2PerVoltSecond = unit.Dimensions{unit.CurrentDim: 1,
		unit.TimeDim: 2, unit.MassDim: -1}
	// SiemensMeter2PerMole is molar conductivity, S m2/mol.
	SiemensMeter2PerMole = unit.Dimensions{unit.CurrentDim: 2,
		unit.TimeDim: 3, unit.MassDim: -1, MoleDim: -1}
)

// Celsius creates a Kelvin quantity from a temperature in degrees Celsius.
func Celsius(c float64) *unit.Unit {
	return unit.New(c+273.15, unit.Kelvin)
}

// Fahrenheit creates a Kelvin quantity from a temperature in degrees
// Fahrenheit.
func Fahrenheit(f float64) *unit.Unit {
	return unit.New((f+459.67)*5./9., unit.Kelvin)
}

// Parse converts a string containing a magnitude and a unit label,
// separated by whitespace (e.g. "5 mol/kg", "0.1 g/L", "25 degC"), into
// an SI quantity. A bare magnitude is treated as dimensionless.
func Parse(s string) (*unit.Unit, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("chemquant: empty quantity string")
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return nil, fmt.Errorf("chemquant: parsing magnitude in %q: %v", s, err)
	}
	return FromValue(v, strings.Join(fields[1:], " "))
}

// FromValue creates an SI quantity from a magnitude and a unit label.
// The label vocabulary covers the quantities used in aqueous-solution
// work; an unrecognized label is an error.
func FromValue(v float64, units string) (*unit.Unit, error) {
	switch units {
	// Substance amount.
	case "mol", "moles":
		return unit.New(v, Mole), nil
	case "mmol":
		return unit.New(v*1.e-3, Mole), nil
	case "umol":
		return unit.New(v*1.e-6, Mole), nil
	case "kmol":
		return unit.New(v*1.e3, Mole), nil

	// Mass.
	case "kg":
		return unit.New(v, unit.Kilogram), nil
	case "g":
		return unit.New(v*1.e-3, unit.Kilogram), nil
	case "mg":
		return unit.New(v*1.e-6, unit.Kilogram), nil
	case "ug":
		return unit.New(v*1.e-9, unit.Kilogram), nil

	// Volume.
	case "m^3":
		return unit.New(v, unit.Meter3), nil
	case "L", "l":
		return unit.New(v*1.e-3, unit.Meter3), nil
	case "mL", "ml":
		return unit.New(v*1.e-6, unit.Meter3), nil

	// Molar concentration.
	case "mol/m^3":
		return unit.New(v, MolePerMeter3), nil
	case "mol/L", "M":
		return unit.New(v*1.e3, MolePerMeter3), nil
	case "mmol/L", "mM":
		return unit.New(v, MolePerMeter3), nil

	// Molality.
	case "mol/kg":
		return unit.New(v, MolePerKilogram), nil
	case "mmol/kg":
		return unit.New(v*1.e-3, MolePerKilogram), nil

	// Mass concentration. 1 g/L = 1 kg/m3.
	case "kg/m^3", "g/L":
		return unit.New(v, unit.KilogramPerMeter3), nil
	case "mg/L":
		return unit.New(v*1.e-3, unit.KilogramPerMeter3), nil
	case "ug/L":
		return unit.New(v*1.e-6, unit.KilogramPerMeter3), nil

	// Mole fraction and other dimensionless quantities.
	case "", "dimensionless", "fraction", "mol/mol":
		return unit.New(v, unit.Dimless), nil

	// Molecular weight.
	case "kg/mol":
		return unit.New(v, KilogramPerMole), nil
	case "g/mol":
		return unit.New(v*1.e-3, KilogramPerMole), nil

	// Temperature.
	case "K":
		return unit.New(v, unit.Kelvin), nil
	case "degC":
		return Celsius(v), nil
	case "degF":
		return Fahrenheit(v), nil

	// Pressure.
	case "Pa":
		return unit.New(v, unit.Pascal), nil
	case "kPa":
		return unit.New(v*1.e3, unit.Pascal), nil
	case "bar":
		return unit.New(v*1.e5, unit.Pascal), nil
	case "atm":
		return unit.New(v*101325., unit.Pascal), nil

	// Molar energy.
	case "J/mol":
		return unit.New(v, JoulePerMole), nil
	case "kJ/mol":
		return unit.New(v*1.e3, JoulePerMole), nil

	// Diffusion coefficient.
	case "m^2/s":
		return unit.New(v, Meter2PerSecond), nil
	case "cm^2/s":
		return unit.New(v*1.e-4, Meter2PerSecond), nil

	// Molar conductivity.
	case "S m^2/mol":
		return unit.New(v, SiemensMeter2PerMole), nil
	case "mS cm^2/mol":
		return unit.New(v*1.e-7, SiemensMeter2PerMole), nil
	}
	return nil, fmt.Errorf("chemquant: unrecognized unit %q", units)
}
