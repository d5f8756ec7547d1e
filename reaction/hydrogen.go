/*
 * hydrogen.go, part of molrx.
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

package reaction

import chem "github.com/molrx/molrx"

// Hydrogen migrations. The hydrogen leaves its atom and bonds to the other
// end of the motif. The skeleton is not broken, so there is one product.

// hydrogenTransfer builds the mechanism for a radical that takes a hydrogen
// atom n bonds away (through n-1 bonds to the carbon, plus the C-H bond).
func hydrogenTransfer(name string, n int) *Mechanism {
	atoms := make([]AtomQuery, n+1)
	bonds := make([]BondQuery, n)
	atoms[0] = AllOf(Neutral(), HasRadical())
	for i := 1; i < n; i++ {
		atoms[i] = NotSymbol("H")
		bonds[i-1] = AnyBond()
	}
	atoms[n-1] = AllOf(NotSymbol("H"), neutralClosedShell)
	atoms[n] = AllOf(Symbol("H"), neutralClosedShell)
	bonds[n-1] = single
	return &Mechanism{
		Name:        name,
		Description: "[A*]-...-C-H -> H-A-...-[C*]",
		Motif: Motif{
			Atoms:        atoms,
			Bonds:        bonds,
			ShortestPath: true,
		},
		Edits: []Edit{
			{Order(n-1, -1), Form(0, n, chem.OrderSingle), LoseElectron(0), GainElectron(n - 1)},
		},
	}
}

// the hydrogen is four bonds away from the radical.
var radicalSiteHrGamma = hydrogenTransfer("RadicalSiteHrGamma", 4)

// the hydrogen is five bonds away from the radical.
var radicalSiteHrDelta = hydrogenTransfer("RadicalSiteHrDelta", 5)

// tautomerization moves a hydrogen from X to Y in H-X-C=Y (i.e. enol to keto).
// X must have a lone pair.
var tautomerization = &Mechanism{
	Name:        "Tautomerization",
	Description: "H-X-C=Y -> X=C-Y-H",
	Motif: Motif{
		Atoms: []AtomQuery{
			AllOf(Symbol("H"), neutralClosedShell),
			AllOf(NotSymbol("H"), neutralClosedShell, HasLonePair()),
			neutralClosedShell,
			neutralClosedShell,
		},
		Bonds: []BondQuery{single, single, double},
	},
	Edits: []Edit{
		{Order(0, -1), Order(1, +1), Order(2, -1), Form(3, 0, chem.OrderSingle)},
	},
}
