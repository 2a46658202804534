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

// TCPC holds the parameters of the TCPC activity-coefficient model for
// a solute's parent salt: the solvation parameter S, the approaching
// parameter b, the n parameter, the valences of the solute and its
// counterion, and their stoichiometric coefficients in the salt. The
// bag is replaced as a whole by SetTCPC; individual fields are never
// mutated in place.
type TCPC struct {
	S, B, N float64

	Valence            int // charge on the solute, including sign
	CounterValence     int // charge on the complementary ion
	StoichCoeff        int // solute's coefficient in the parent salt
	CounterStoichCoeff int // complementary ion's coefficient
}

// SetTCPC stores t as this solute's TCPC parameter set, replacing any
// previous one. Zero valence or stoichiometry fields are defaulted to
// the monovalent 1:1 salt (+1/-1, 1:1).
func (s *Solute) SetTCPC(t TCPC) {
	if t.Valence == 0 {
		t.Valence = 1
	}
	if t.CounterValence == 0 {
		t.CounterValence = -1
	}
	if t.StoichCoeff == 0 {
		t.StoichCoeff = 1
	}
	if t.CounterStoichCoeff == 0 {
		t.CounterStoichCoeff = 1
	}
	s.tcpc = &t
}

// TCPCParameters returns the stored TCPC parameter set, if any.
func (s *Solute) TCPCParameters() (TCPC, bool) {
	if s.tcpc == nil {
		return TCPC{}, false
	}
	return *s.tcpc, true
}
