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

package aqchem

import (
	"fmt"
	"math"

	"github.com/ctessum/unit"
	"github.com/spatialmodel/aqchem/chemquant"
	"gonum.org/v1/gonum/floats"
)

// InvalidArgumentError indicates a malformed input to one of the
// equilibrium computations.
type InvalidArgumentError struct {
	Op     string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("aqchem: %s: %s", e.Op, e.Reason)
}

// AdjustTempVantHoff adjusts a reaction equilibrium constant measured
// at reference temperature tempRef (nil means 25 degC) to temperature
// temp using the Van't Hoff equation
//
//	ln(K2/K1) = (ΔH/R) (1/T1 - 1/T2)
//
// where enthalpy is the reaction enthalpy ΔH [J/mol], assumed
// independent of temperature over the extrapolation range.
//
// Reference: Stumm & Morgan, Aquatic Chemistry, 3rd ed., p. 53.
func AdjustTempVantHoff(equilibriumConstant float64, enthalpy, temp, tempRef *unit.Unit) (float64, error) {
	return adjustExp("Van't Hoff adjustment", equilibriumConstant, enthalpy, temp, tempRef)
}

// AdjustTempArrhenius adjusts a rate constant measured at reference
// temperature tempRef (nil means 25 degC) to temperature temp using
// the Arrhenius equation, with activationEnergy in place of the
// Van't Hoff enthalpy. The arithmetic is identical to
// AdjustTempVantHoff; the two stay separate operations because callers
// reason about them by physical meaning.
func AdjustTempArrhenius(rateConstant float64, activationEnergy, temp, tempRef *unit.Unit) (float64, error) {
	return adjustExp("Arrhenius adjustment", rateConstant, activationEnergy, temp, tempRef)
}

func adjustExp(op string, k float64, energy, temp, tempRef *unit.Unit) (float64, error) {
	if tempRef == nil {
		tempRef = TRef
	}
	if energy == nil || !energy.Dimensions().Matches(chemquant.JoulePerMole) {
		return 0, &InvalidArgumentError{op, "energy must be a molar-energy quantity [J/mol]"}
	}
	t, err := absTemperature(temp)
	if err != nil {
		return 0, &InvalidArgumentError{op, err.Error()}
	}
	tr, err := absTemperature(tempRef)
	if err != nil {
		return 0, &InvalidArgumentError{op, err.Error()}
	}
	return k * math.Exp(energy.Value()/R.Value()*(1/tr.Value()-1/t.Value())), nil
}

// AdjustTempPitzer calculates a Pitzer-model parameter at temperature
// temp from the temperature-dependent coefficients c1..c5 fitted at
// reference temperature tempRef (nil means 25 degC):
//
//	c1 + c2(1/T + 1/Tref) + c2 ln(T/Tref) + c3(T - Tref)
//	   + c4(T² - Tref²) + c5(T⁻² - Tref⁻²)
//
// c2 multiplies both the reciprocal and the logarithmic terms; that is
// the form given in the PHREEQC documentation, not a typo.
func AdjustTempPitzer(c1, c2, c3, c4, c5 float64, temp, tempRef *unit.Unit) (float64, error) {
	const op = "Pitzer adjustment"
	if tempRef == nil {
		tempRef = TRef
	}
	T, err := absTemperature(temp)
	if err != nil {
		return 0, &InvalidArgumentError{op, err.Error()}
	}
	Tr, err := absTemperature(tempRef)
	if err != nil {
		return 0, &InvalidArgumentError{op, err.Error()}
	}
	t, tr := T.Value(), Tr.Value()
	return c1 +
		c2*(1/t+1/tr) + c2*math.Log(t/tr) +
		c3*(t-tr) +
		c4*(t*t-tr*tr) +
		c5*(1/(t*t)-1/(tr*tr)), nil
}

// Alpha returns the acid-base distribution coefficient of a polyprotic
// acid in its n-fold-deprotonated form at the given pH: the fraction
// of total acid present in that form. pKa holds the negative log10
// dissociation constants of the acid's successive deprotonation steps,
// so n may run from 0 (fully protonated) to len(pKa) (fully
// deprotonated).
//
// Writing H = 10^-pH and p = len(pKa), term i (i = 0..p) is
//
//	(Π_{j<i} 10^-pKa_j) · H^(p-i)
//
// and alpha_n = term_n / Σ terms. The alphas over all n sum to 1 for
// any pH, and at pH == pKa[k] terms k and k+1 are equal (exactly 0.5
// each only in the monoprotic case).
//
// Reference: Stumm & Morgan, Aquatic Chemistry, 3rd ed., pp. 127-130.
func Alpha(n int, pH float64, pKa []float64) (float64, error) {
	const op = "alpha distribution coefficient"
	if len(pKa) == 0 {
		return 0, &InvalidArgumentError{op, "no pKa values given"}
	}
	if n < 0 {
		return 0, &InvalidArgumentError{op, fmt.Sprintf("negative deprotonation level %d", n)}
	}
	if len(pKa) < n {
		return 0, &InvalidArgumentError{op,
			fmt.Sprintf("deprotonation level %d needs at least %d pKa values, have %d", n, n, len(pKa))}
	}

	h := math.Pow(10, -pH)
	p := len(pKa)
	terms := make([]float64, p+1)
	for i := range terms {
		t := math.Pow(h, float64(p-i))
		for j := 0; j < i; j++ {
			t *= math.Pow(10, -pKa[j])
		}
		terms[i] = t
	}
	return terms[n] / floats.Sum(terms), nil
}
