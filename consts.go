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
	"github.com/ctessum/unit"
	"github.com/spatialmodel/aqchem/chemquant"
)

// Physical constants (CODATA 2018), as dimensioned quantities.
var (
	// NA is Avogadro's number [1/mol].
	NA = unit.New(6.02214076e23, chemquant.PerMole)
	// E is the elementary charge [C].
	E = unit.New(1.602176634e-19, chemquant.Coulomb)
	// R is the molar gas constant [J/(mol K)].
	R = unit.New(8.31446261815324, chemquant.JoulePerMoleKelvin)
	// F is the Faraday constant [C/mol].
	F = unit.Mul(NA, E)
	// TRef is the standard reference temperature, 25 degC.
	TRef = unit.New(298.15, unit.Kelvin)
)
