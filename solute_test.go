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
	"errors"
	"io"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/ctessum/unit"
	"github.com/spatialmodel/aqchem/chemquant"
	"github.com/spatialmodel/aqchem/formula"
	"github.com/spatialmodel/aqchem/params"
)

var (
	testVolume      = unit.New(2.e-3, unit.Meter3) // 2 L
	testSolventMass = unit.New(2, unit.Kilogram)
)

func testStore(t *testing.T) *params.Store {
	t.Helper()
	db, err := params.DefaultDatabase()
	if err != nil {
		t.Fatal(err)
	}
	return params.NewStore(db, NewLogger(io.Discard, slog.LevelError))
}

func TestNewSoluteRoundTrip(t *testing.T) {
	const testTolerance = 1.e-12
	s, err := NewSolute("Na+", "0.5 mol", testVolume, testSolventMass, testStore(t))
	if err != nil {
		t.Fatal(err)
	}
	if different(s.Moles().Value(), 0.5, testTolerance) {
		t.Errorf("moles = %g, want 0.5", s.Moles().Value())
	}
	if s.FormalCharge() != 1 {
		t.Errorf("charge = %d, want 1", s.FormalCharge())
	}
	if mw := s.MolecularWeight().Value(); different(mw, 22.990e-3, 1.e-6) {
		t.Errorf("MW = %g kg/mol, want 22.990e-3", mw)
	}
	if s.Formula() != "Na+" {
		t.Errorf("formula = %q", s.Formula())
	}
}

func TestNewSoluteAmountBases(t *testing.T) {
	type test struct {
		formula, amount string
		moles           float64
	}
	tests := []test{
		{formula: "Na+", amount: "0.5 mol", moles: 0.5},
		{formula: "Cl-", amount: "0.1 mol/L", moles: 0.2},  // 2 L of solution
		{formula: "K+", amount: "0.5 mol/kg", moles: 1},    // 2 kg of water
		{formula: "NaCl", amount: "5.844 g", moles: 0.1},   // MW 58.44
		{formula: "NaCl", amount: "2.922 g/L", moles: 0.1}, // 2 L of solution
	}
	store := testStore(t)
	for _, tt := range tests {
		s, err := NewSolute(tt.formula, tt.amount, testVolume, testSolventMass, store)
		if err != nil {
			t.Errorf("%s %q: %v", tt.formula, tt.amount, err)
			continue
		}
		if different(s.Moles().Value(), tt.moles, 1.e-4) {
			t.Errorf("%s %q: moles = %g, want %g",
				tt.formula, tt.amount, s.Moles().Value(), tt.moles)
		}
	}
}

func TestNewSoluteInvalidFormula(t *testing.T) {
	s, err := NewSolute("NotAFormula!", "1 mol", testVolume, testSolventMass, testStore(t))
	var ferr *formula.InvalidFormulaError
	if !errors.As(err, &ferr) {
		t.Errorf("error = %v, want InvalidFormulaError", err)
	}
	if s != nil {
		t.Error("construction must not return a partial solute")
	}
}

func TestAddAndSetAmount(t *testing.T) {
	const testTolerance = 1.e-12
	s, err := NewSolute("K+", "1 mol", testVolume, testSolventMass, testStore(t))
	if err != nil {
		t.Fatal(err)
	}

	if err := s.AddAmount("0 mol", testVolume, testSolventMass); err != nil {
		t.Fatal(err)
	}
	if different(s.Moles().Value(), 1, testTolerance) {
		t.Errorf("adding zero changed the amount: %g", s.Moles().Value())
	}

	if err := s.AddAmount("0.25 mol/kg", testVolume, testSolventMass); err != nil {
		t.Fatal(err)
	}
	if different(s.Moles().Value(), 1.5, testTolerance) {
		t.Errorf("moles = %g, want 1.5", s.Moles().Value())
	}

	// Withdrawal: negative amounts subtract.
	if err := s.AddAmount("-0.5 mol", testVolume, testSolventMass); err != nil {
		t.Fatal(err)
	}
	if different(s.Moles().Value(), 1, testTolerance) {
		t.Errorf("moles = %g, want 1", s.Moles().Value())
	}

	if err := s.SetAmount("0.125 mol", testVolume, testSolventMass); err != nil {
		t.Fatal(err)
	}
	if s.Moles().Value() != 0.125 {
		t.Errorf("moles = %g, want exactly 0.125", s.Moles().Value())
	}

	if err := s.SetAmount("1 parsec", testVolume, testSolventMass); err == nil {
		t.Error("expected error for unparseable amount")
	}
}

func TestGetAndAddParameter(t *testing.T) {
	s, err := NewSolute("Na+", "1 mol", testVolume, testSolventMass, testStore(t))
	if err != nil {
		t.Fatal(err)
	}

	// From the default database.
	d, err := s.GetParameter("diffusion_coefficient", params.Conditions{})
	if err != nil {
		t.Fatal(err)
	}
	if d.Value() != 1.334e-9 {
		t.Errorf("D = %g, want 1.334e-9", d.Value())
	}

	_, err = s.GetParameter("nonexistent", params.Conditions{})
	var perr *params.ParameterNotFoundError
	if !errors.As(err, &perr) {
		t.Errorf("error = %v, want ParameterNotFoundError", err)
	}

	s.AddParameter(&params.Parameter{
		Name:  "transport_number",
		Value: unit.New(0.39, unit.Dimless),
	})
	tn, err := s.GetParameter("transport_number", params.Conditions{})
	if err != nil {
		t.Fatal(err)
	}
	if tn.Value() != 0.39 {
		t.Errorf("transport number = %g, want 0.39", tn.Value())
	}
}

func TestWithParameters(t *testing.T) {
	s, err := NewSolute("C6H12O6", "1 mol", testVolume, testSolventMass, testStore(t),
		WithParameters(map[string]*unit.Unit{
			"diffusion_coefficient": unit.New(6.7e-10, chemquant.Meter2PerSecond),
		}))
	if err != nil {
		t.Fatal(err)
	}
	d, err := s.GetParameter("diffusion_coefficient", params.Conditions{})
	if err != nil {
		t.Fatal(err)
	}
	if d.Value() != 6.7e-10 {
		t.Errorf("D = %g, want 6.7e-10", d.Value())
	}
}

func TestSpeciesNotFound(t *testing.T) {
	s, err := NewSolute("U+4", "1 mol", testVolume, testSolventMass, testStore(t))
	if err != nil {
		t.Fatal(err)
	}
	_, err = s.GetParameter("diffusion_coefficient", params.Conditions{})
	var serr *params.SpeciesNotFoundError
	if !errors.As(err, &serr) {
		t.Errorf("error = %v, want SpeciesNotFoundError", err)
	}
}

func TestMobility(t *testing.T) {
	s, err := NewSolute("Na+", "1 mol", testVolume, testSolventMass, testStore(t))
	if err != nil {
		t.Fatal(err)
	}
	mob, err := s.Mobility(nil)
	if err != nil {
		t.Fatal(err)
	}
	// mu = F*D/(R*T) = 96485.33 * 1.334e-9 / (8.3145 * 298.15).
	if different(mob.Value(), 5.1922e-8, 1.e-4) {
		t.Errorf("mobility = %g, want 5.1922e-8", mob.Value())
	}
	if !mob.Dimensions().Matches(chemquant.Meter2PerVoltSecond) {
		t.Errorf("mobility dimensions = %v", mob.Dimensions())
	}

	// A temperature away from the database reference point still
	// resolves the diffusion coefficient; only R*T changes.
	warm, err := s.Mobility(chemquant.Celsius(50))
	if err != nil {
		t.Fatal(err)
	}
	if different(warm.Value(), mob.Value()*298.15/323.15, 1.e-10) {
		t.Errorf("mobility at 50 degC = %g, want %g",
			warm.Value(), mob.Value()*298.15/323.15)
	}

	// Mobility scales with |z|: SO4-2 at the same temperature.
	so4, err := NewSolute("SO4-2", "1 mol", testVolume, testSolventMass, testStore(t))
	if err != nil {
		t.Fatal(err)
	}
	mob2, err := so4.Mobility(TRef)
	if err != nil {
		t.Fatal(err)
	}
	want := 2 * 1.065e-9 / 1.334e-9 * mob.Value()
	if different(mob2.Value(), want, 1.e-6) {
		t.Errorf("SO4-2 mobility = %g, want %g", mob2.Value(), want)
	}
}

func TestMobilityRequiresDiffusionCoefficient(t *testing.T) {
	s, err := NewSolute("U+4", "1 mol", testVolume, testSolventMass, testStore(t))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Mobility(nil); err == nil {
		t.Error("expected lookup miss to propagate")
	}
	if _, err := s.MolarConductivity(nil); err == nil {
		t.Error("expected lookup miss to propagate")
	}
}

func TestMolarConductivity(t *testing.T) {
	s, err := NewSolute("Na+", "1 mol", testVolume, testSolventMass, testStore(t))
	if err != nil {
		t.Fatal(err)
	}
	k, err := s.MolarConductivity(chemquant.Celsius(25))
	if err != nil {
		t.Fatal(err)
	}
	// kappa = D*F^2/(R*T); the literature value for Na+ is about
	// 50.1 S cm2/mol = 5.01e-3 S m2/mol.
	if different(k.Value(), 5.0097e-3, 1.e-3) {
		t.Errorf("molar conductivity = %g, want 5.0097e-3", k.Value())
	}
	if !k.Dimensions().Matches(chemquant.SiemensMeter2PerMole) {
		t.Errorf("molar conductivity dimensions = %v", k.Dimensions())
	}

	if _, err := s.MolarConductivity(unit.New(1, unit.Kilogram)); err == nil {
		t.Error("expected error for non-temperature argument")
	}
}

func TestTCPC(t *testing.T) {
	s, err := NewSolute("Na+", "1 mol", testVolume, testSolventMass, testStore(t))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.TCPCParameters(); ok {
		t.Error("no TCPC parameters should be set yet")
	}
	s.SetTCPC(TCPC{S: 52.3, B: 1.72, N: 0.96})
	got, ok := s.TCPCParameters()
	if !ok {
		t.Fatal("TCPC parameters missing after SetTCPC")
	}
	want := TCPC{S: 52.3, B: 1.72, N: 0.96,
		Valence: 1, CounterValence: -1, StoichCoeff: 1, CounterStoichCoeff: 1}
	if got != want {
		t.Errorf("TCPC = %+v, want %+v", got, want)
	}
}

func TestSoluteString(t *testing.T) {
	s, err := NewSolute("Na+", "0.5 mol", testVolume, testSolventMass, testStore(t))
	if err != nil {
		t.Fatal(err)
	}
	str := s.String()
	for _, want := range []string{"Na+", "charge=+1", "0.5 mol"} {
		if !strings.Contains(str, want) {
			t.Errorf("String() = %q, missing %q", str, want)
		}
	}
}

func different(a, b, tolerance float64) bool {
	if a == b {
		return false
	}
	return 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b)
}
