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

package chemquant

import (
	"fmt"

	"github.com/ctessum/unit"
)

// mwWater is the molecular weight of water, used for mole-fraction
// conversions.
var mwWater = unit.New(18.01528e-3, KilogramPerMole)

// Context holds the side information needed to convert between mass-,
// volume-, and amount-based quantities for one solute in one solution:
// the solute molecular weight, the solution volume, and the solvent
// mass. Fields that a particular conversion does not need may be nil.
type Context struct {
	MW          *unit.Unit // molecular weight [kg/mol]
	Volume      *unit.Unit // solution volume [m3]
	SolventMass *unit.Unit // solvent mass [kg]
}

// ToMoles converts q to an amount of substance. The input may be an
// amount, a molar concentration, a molality, a mass, a mass
// concentration, or a mole fraction; anything else is an error, as is a
// conversion whose required side information is missing from the
// Context.
func (c Context) ToMoles(q *unit.Unit) (*unit.Unit, error) {
	d := q.Dimensions()
	switch {
	case d.Matches(Mole):
		return q.Clone(), nil
	case d.Matches(MolePerMeter3):
		if c.Volume == nil {
			return nil, fmt.Errorf("chemquant: converting %v to moles: no solution volume in context", q)
		}
		return unit.Mul(q, c.Volume), nil
	case d.Matches(MolePerKilogram):
		if c.SolventMass == nil {
			return nil, fmt.Errorf("chemquant: converting %v to moles: no solvent mass in context", q)
		}
		return unit.Mul(q, c.SolventMass), nil
	case d.Matches(unit.Kilogram):
		if c.MW == nil {
			return nil, fmt.Errorf("chemquant: converting %v to moles: no molecular weight in context", q)
		}
		return unit.Div(q, c.MW), nil
	case d.Matches(unit.KilogramPerMeter3):
		if c.Volume == nil || c.MW == nil {
			return nil, fmt.Errorf("chemquant: converting %v to moles: need both solution volume and molecular weight in context", q)
		}
		return unit.Div(unit.Mul(q, c.Volume), c.MW), nil
	case d.Matches(unit.Dimless):
		// Mole fraction x: n = x/(1-x) * n_solvent, with the solvent
		// taken to be water.
		if c.SolventMass == nil {
			return nil, fmt.Errorf("chemquant: converting mole fraction %v to moles: no solvent mass in context", q)
		}
		x := q.Value()
		if x >= 1 {
			return nil, fmt.Errorf("chemquant: mole fraction %g out of range [0,1)", x)
		}
		nSolvent := unit.Div(c.SolventMass, mwWater)
		return unit.Mul(unit.New(x/(1-x), unit.Dimless), nSolvent), nil
	}
	return nil, fmt.Errorf("chemquant: cannot convert dimensions %v to moles", d)
}
