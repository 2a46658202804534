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

// Package aqchem models dissolved chemical species in aqueous
// solution. A Solute tracks one species' identity and amount of
// substance, resolves its physical-property parameters from a
// condition-aware store (package params), and derives transport
// properties (ionic mobility, molar conductivity) from them. The
// package-level equilibrium functions adjust equilibrium and rate
// constants across temperature (Van't Hoff, Arrhenius, Pitzer) and
// compute acid-base speciation fractions (Alpha).
//
// All physical quantities are dimensioned github.com/ctessum/unit
// values; package chemquant parses quantity strings and converts
// between mass-, volume-, and amount-based concentration bases.
package aqchem
