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

// Package formula interprets chemical formula strings such as "H2O",
// "(CH3)2CHOH", or "SO4-2". Charged species carry a trailing + or -
// sign followed, for polyvalent ions, by the charge magnitude.
package formula

import (
	"fmt"
	"strconv"

	"github.com/ctessum/unit"
	"github.com/spatialmodel/aqchem/chemquant"
)

// InvalidFormulaError indicates a string that cannot be interpreted as
// a chemical formula.
type InvalidFormulaError struct {
	Formula string
	Reason  string
}

func (e *InvalidFormulaError) Error() string {
	return fmt.Sprintf("formula: invalid formula %q: %s", e.Formula, e.Reason)
}

// IsValid reports whether f can be interpreted as a chemical formula.
func IsValid(f string) bool {
	_, err := Composition(f)
	return err == nil
}

// Composition returns the elemental composition of f as a map from
// element symbol to atom count.
func Composition(f string) (map[string]int, error) {
	core, _, err := splitCharge(f)
	if err != nil {
		return nil, err
	}
	comp := make(map[string]int)
	i, err := parseGroup(f, core, 0, comp)
	if err != nil {
		return nil, err
	}
	if i != len(core) {
		return nil, &InvalidFormulaError{f, fmt.Sprintf("unexpected character at position %d", i)}
	}
	if len(comp) == 0 {
		return nil, &InvalidFormulaError{f, "no elements"}
	}
	return comp, nil
}

// MolecularWeight returns the molecular weight of f as a mass-per-amount
// quantity (SI kg/mol; divide by 1e-3 for g/mol).
func MolecularWeight(f string) (*unit.Unit, error) {
	comp, err := Composition(f)
	if err != nil {
		return nil, err
	}
	var gPerMol float64
	for el, n := range comp {
		gPerMol += atomicWeights[el] * float64(n)
	}
	return unit.New(gPerMol*1.e-3, chemquant.KilogramPerMole), nil
}

// FormalCharge returns the signed formal charge encoded in f, e.g. +1
// for "Na+" and -2 for "SO4-2". Neutral species return 0.
func FormalCharge(f string) (int, error) {
	if _, err := Composition(f); err != nil {
		return 0, err
	}
	_, charge, err := splitCharge(f)
	return charge, err
}

// splitCharge separates the elemental core of f from its charge suffix.
func splitCharge(f string) (core string, charge int, err error) {
	for i := 0; i < len(f); i++ {
		if f[i] != '+' && f[i] != '-' {
			continue
		}
		sign := 1
		if f[i] == '-' {
			sign = -1
		}
		mag := f[i+1:]
		if mag == "" {
			return f[:i], sign, nil
		}
		m, err := strconv.Atoi(mag)
		if err != nil || m < 1 {
			return "", 0, &InvalidFormulaError{f, "malformed charge suffix"}
		}
		return f[:i], sign * m, nil
	}
	return f, 0, nil
}

// parseGroup parses element symbols, counts, and parenthesized
// subgroups starting at position i of core, accumulating atom counts
// into comp. It returns the position after the parsed run.
func parseGroup(orig, core string, i int, comp map[string]int) (int, error) {
	for i < len(core) {
		switch {
		case core[i] == '(':
			sub := make(map[string]int)
			j, err := parseGroup(orig, core, i+1, sub)
			if err != nil {
				return 0, err
			}
			if j >= len(core) || core[j] != ')' {
				return 0, &InvalidFormulaError{orig, "unbalanced parentheses"}
			}
			j++
			n, j := parseCount(core, j)
			for el, c := range sub {
				comp[el] += c * n
			}
			i = j
		case core[i] == ')':
			return i, nil
		case core[i] >= 'A' && core[i] <= 'Z':
			j := i + 1
			for j < len(core) && core[j] >= 'a' && core[j] <= 'z' {
				j++
			}
			el := core[i:j]
			if _, ok := atomicWeights[el]; !ok {
				return 0, &InvalidFormulaError{orig, fmt.Sprintf("unknown element %q", el)}
			}
			n, j := parseCount(core, j)
			comp[el] += n
			i = j
		default:
			return i, nil
		}
	}
	return i, nil
}

// parseCount reads an optional repeat count at position i, defaulting
// to 1.
func parseCount(s string, i int) (int, int) {
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return 1, i
	}
	n, _ := strconv.Atoi(s[i:j])
	return n, j
}
