/*
 * agents.go, part of molrx.
 *
 *
 * Copyright 2026 The molrx authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package balance

import (
	chem "github.com/molrx/molrx"
)

// agent is a number of balancing molecules added to one side of a reaction.
type agent struct {
	name     string
	mol      func() *chem.Molecule
	n        int
	reactant bool
}

// Water returns H2O, with both hydrogens implicit and two lone pairs on the oxygen.
func Water() *chem.Molecule {
	mol := chem.NewMolecule("water")
	o := chem.NewAtom("O")
	o.ImplicitH = 2
	mol.AddAtom(o)
	mol.AddLonePair(0)
	mol.AddLonePair(0)
	return mol
}

// Proton returns H+.
func Proton() *chem.Molecule {
	mol := chem.NewMolecule("proton")
	h := chem.NewAtom("H")
	h.Charge = 1
	mol.AddAtom(h)
	return mol
}

// Hydrogen returns H2.
func Hydrogen() *chem.Molecule {
	mol := chem.NewMolecule("hydrogen")
	mol.AddAtom(chem.NewAtom("H"))
	mol.AddAtom(chem.NewAtom("H"))
	mol.AddBond(0, 1, chem.OrderSingle)
	return mol
}

// agentsFor returns the agents that cancel D (products minus reactants): water for the
// oxygen, then protons for the charge, then H2 for the remaining hydrogen.
// Agents go on the side that lacks them. D must contain only H and O.
func agentsFor(D *chem.Formula) ([]agent, error) {
	if !heavyBalanced(D) {
		return nil, ErrUnbalanceable
	}
	var ret []agent
	h := D.Count("H")
	if o := D.Count("O"); o != 0 {
		//water on the side with less oxygen
		ret = append(ret, agent{name: "H2O", mol: Water, n: abs(o), reactant: o > 0})
		h -= 2 * o
	}
	if c := D.Charge; c != 0 {
		ret = append(ret, agent{name: "H+", mol: Proton, n: abs(c), reactant: c > 0})
		h -= c
	}
	if h != 0 {
		if h%2 != 0 {
			return nil, ErrUnbalanceable
		}
		ret = append(ret, agent{name: "H2", mol: Hydrogen, n: abs(h) / 2, reactant: h > 0})
	}
	return ret, nil
}
