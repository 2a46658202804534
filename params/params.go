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

// Package params stores named physical-property records for chemical
// species and resolves them under specified environmental conditions.
// Records for a species are populated lazily from a backing Source the
// first time the species is looked up.
package params

import (
	"fmt"

	"github.com/ctessum/unit"
)

// SpeciesNotFoundError indicates that a species has no entry in the
// store even after population from the backing source was attempted.
type SpeciesNotFoundError struct {
	Formula string
}

func (e *SpeciesNotFoundError) Error() string {
	return fmt.Sprintf("params: no entry for species %s", e.Formula)
}

// ParameterNotFoundError indicates that a species exists in the store
// but has no record with the requested name whose validity conditions
// are satisfied.
type ParameterNotFoundError struct {
	Formula, Name string
}

func (e *ParameterNotFoundError) Error() string {
	return fmt.Sprintf("params: parameter %s not found for species %s", e.Name, e.Formula)
}

// Range is an inclusive interval of a physical quantity. A reference
// point is expressed as a Range with Min == Max; it records where the
// value was measured and, unlike a proper interval, does not restrict
// where the value applies.
type Range struct {
	Min, Max *unit.Unit
}

// Point creates a Range representing the single reference value q.
func Point(q *unit.Unit) *Range {
	return &Range{Min: q, Max: q}
}

// excludes reports whether r rules out the condition value q. A
// reference point excludes nothing; a proper interval excludes values
// outside it, including quantities of different dimensions.
func (r *Range) excludes(q *unit.Unit) bool {
	if r.Min.Value() == r.Max.Value() {
		return false
	}
	if !unit.DimensionsMatch(q, r.Min) || !unit.DimensionsMatch(q, r.Max) {
		return true
	}
	return q.Value() < r.Min.Value() || q.Value() > r.Max.Value()
}

func (r *Range) midpoint() float64 {
	return (r.Min.Value() + r.Max.Value()) / 2
}

// Parameter is one named physical-property record for a species,
// optionally scoped to ranges of temperature, pressure, and ionic
// strength under which its value applies. Records are immutable once
// stored; to change a value, insert a replacement record.
type Parameter struct {
	Name  string
	Value *unit.Unit

	// Validity conditions; nil means unrestricted.
	Temperature   *Range
	Pressure      *Range
	IonicStrength *Range

	Reference string // literature citation
	Comment   string
}

// Conditions is the environment a parameter query is evaluated under.
// Nil fields are unconstrained.
type Conditions struct {
	Temperature   *unit.Unit
	Pressure      *unit.Unit
	IonicStrength *unit.Unit
}

// Applies reports whether p is valid under c. Each non-nil condition
// must not be excluded by the corresponding range; a record without a
// range for some condition, or with only a reference point, matches
// any value of it.
func (p *Parameter) Applies(c Conditions) bool {
	if c.Temperature != nil && p.Temperature != nil && p.Temperature.excludes(c.Temperature) {
		return false
	}
	if c.Pressure != nil && p.Pressure != nil && p.Pressure.excludes(c.Pressure) {
		return false
	}
	if c.IonicStrength != nil && p.IonicStrength != nil && p.IonicStrength.excludes(c.IonicStrength) {
		return false
	}
	return true
}
