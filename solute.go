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
	"log/slog"
	"math"

	"github.com/ctessum/unit"
	"github.com/spatialmodel/aqchem/chemquant"
	"github.com/spatialmodel/aqchem/formula"
	"github.com/spatialmodel/aqchem/params"
)

// Solute is one dissolved chemical species within a solution: its
// identity (formula, molecular weight, formal charge) and its current
// amount of substance. The amount is always held in moles so that
// repeated additions compose without unit drift; unit flexibility
// lives entirely at the construction and mutation boundaries.
//
// A Solute holds a reference to a shared parameter store; no two
// Solutes should represent the same species within one solution, but
// enforcing that is the caller's responsibility.
type Solute struct {
	formula string
	mw      *unit.Unit // [kg/mol]
	charge  int
	moles   *unit.Unit

	store *params.Store
	log   *slog.Logger

	tcpc *TCPC
}

// SoluteOption adjusts the construction of a Solute.
type SoluteOption func(*Solute) error

// WithLogger directs the solute's diagnostics to l instead of
// DefaultLogger.
func WithLogger(l *slog.Logger) SoluteOption {
	return func(s *Solute) error {
		s.log = l
		return nil
	}
}

// WithParameters inserts custom unconditioned parameter records (e.g.
// measured diffusion coefficients or transport numbers) into the
// store for this species at construction.
func WithParameters(p map[string]*unit.Unit) SoluteOption {
	return func(s *Solute) error {
		for name, v := range p {
			s.store.Add(s.formula, &params.Parameter{Name: name, Value: v})
		}
		return nil
	}
}

// NewSolute creates a Solute from a chemical formula and an amount
// string ("5 mol/kg", "0.1 g/L", ...). The solution volume and solvent
// mass supply the side information needed to convert volumetric and
// molal amounts to moles. Construction is all or nothing: an invalid
// formula returns a *formula.InvalidFormulaError and no Solute.
// Construction also triggers population of the parameter store for
// this species.
func NewSolute(f, amount string, volume, solventMass *unit.Unit, store *params.Store, opts ...SoluteOption) (*Solute, error) {
	if store == nil {
		return nil, fmt.Errorf("aqchem: creating solute %s: nil parameter store", f)
	}
	mw, err := formula.MolecularWeight(f)
	if err != nil {
		return nil, err
	}
	charge, err := formula.FormalCharge(f)
	if err != nil {
		return nil, err
	}
	s := &Solute{
		formula: f,
		mw:      mw,
		charge:  charge,
		store:   store,
		log:     DefaultLogger,
	}
	s.moles, err = s.toMoles(amount, volume, solventMass)
	if err != nil {
		return nil, fmt.Errorf("aqchem: creating solute %s: %v", f, err)
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	if err := store.Populate(f); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Solute) toMoles(amount string, volume, solventMass *unit.Unit) (*unit.Unit, error) {
	q, err := chemquant.Parse(amount)
	if err != nil {
		return nil, err
	}
	ctx := chemquant.Context{MW: s.mw, Volume: volume, SolventMass: solventMass}
	return ctx.ToMoles(q)
}

// Formula returns the species' chemical formula.
func (s *Solute) Formula() string { return s.formula }

// MolecularWeight returns the species' molecular weight as a
// mass-per-amount quantity.
func (s *Solute) MolecularWeight() *unit.Unit { return s.mw.Clone() }

// FormalCharge returns the species' signed formal charge.
func (s *Solute) FormalCharge() int { return s.charge }

// Moles returns the current amount of substance.
func (s *Solute) Moles() *unit.Unit { return s.moles.Clone() }

// AddAmount converts amount to moles under the given solution volume
// and solvent mass and adds it to the current amount. Negative amounts
// withdraw material; nothing here stops the total from going negative,
// which is a caller error.
func (s *Solute) AddAmount(amount string, volume, solventMass *unit.Unit) error {
	delta, err := s.toMoles(amount, volume, solventMass)
	if err != nil {
		return fmt.Errorf("aqchem: adding amount to %s: %v", s.formula, err)
	}
	s.moles = unit.Add(s.moles, delta)
	return nil
}

// SetAmount converts amount to moles under the given solution volume
// and solvent mass and replaces the current amount with it.
func (s *Solute) SetAmount(amount string, volume, solventMass *unit.Unit) error {
	moles, err := s.toMoles(amount, volume, solventMass)
	if err != nil {
		return fmt.Errorf("aqchem: setting amount of %s: %v", s.formula, err)
	}
	s.moles = moles
	return nil
}

// GetParameter resolves the named physical property for this species
// under the conditions c. Lookup misses return a
// *params.SpeciesNotFoundError or *params.ParameterNotFoundError;
// callers may treat either as "property unavailable."
func (s *Solute) GetParameter(name string, c params.Conditions) (*unit.Unit, error) {
	p, err := s.store.Get(s.formula, name, c)
	if err != nil {
		return nil, err
	}
	return p.Value.Clone(), nil
}

// AddParameter inserts a parameter record for this species. Existing
// records with the same name are kept: several condition-scoped
// records of one name may coexist.
func (s *Solute) AddParameter(p *params.Parameter) {
	s.store.Add(s.formula, p)
}

// Mobility returns the ionic mobility of the species at temperature T
// (nil means 25 degC), from the Einstein relation
//
//	μ = N_A e |z| D / (R T)
//
// where D is the species' diffusion_coefficient parameter. A species
// with no diffusion coefficient on record returns the lookup miss
// error: the dependency is hard, no default is substituted.
func (s *Solute) Mobility(T *unit.Unit) (*unit.Unit, error) {
	T, err := absTemperature(T)
	if err != nil {
		return nil, fmt.Errorf("aqchem: mobility of %s: %v", s.formula, err)
	}
	d, err := s.GetParameter("diffusion_coefficient", params.Conditions{Temperature: T})
	if err != nil {
		return nil, err
	}
	z := unit.New(math.Abs(float64(s.charge)), unit.Dimless)
	mob := unit.Div(unit.Mul(NA, E, z, d), unit.Mul(R, T))
	s.log.Info("computed ionic mobility", "formula", s.formula,
		"mobility", mob.Value(), "D", d.Value(), "T", T.Value())
	return mob, nil
}

// MolarConductivity returns the molar (equivalent) conductivity of the
// species at infinite dilution at temperature T (nil means 25 degC),
// from the Nernst-Einstein relation
//
//	κ = D (e N_A)² z² / (R T)
//
// in conductivity-per-concentration units [S m2/mol]. Like Mobility,
// it requires the diffusion_coefficient parameter.
func (s *Solute) MolarConductivity(T *unit.Unit) (*unit.Unit, error) {
	T, err := absTemperature(T)
	if err != nil {
		return nil, fmt.Errorf("aqchem: molar conductivity of %s: %v", s.formula, err)
	}
	d, err := s.GetParameter("diffusion_coefficient", params.Conditions{Temperature: T})
	if err != nil {
		return nil, err
	}
	z2 := unit.New(float64(s.charge*s.charge), unit.Dimless)
	eNA := unit.Mul(E, NA)
	return unit.Div(unit.Mul(d, eNA, eNA, z2), unit.Mul(R, T)), nil
}

func (s *Solute) String() string {
	return fmt.Sprintf("Species %s MW=%g g/mol charge=%+d amount=%g mol",
		s.formula, s.mw.Value()*1.e3, s.charge, s.moles.Value())
}

// absTemperature defaults a nil temperature to 25 degC and rejects
// quantities that are not absolute temperatures.
func absTemperature(T *unit.Unit) (*unit.Unit, error) {
	if T == nil {
		return TRef, nil
	}
	if !T.Dimensions().Matches(unit.Kelvin) {
		return nil, fmt.Errorf("temperature has dimensions %v, want K", T.Dimensions())
	}
	return T, nil
}
