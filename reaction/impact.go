/*
 * impact.go, part of molrx.
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

import (
	chem "github.com/molrx/molrx"
)

// Electron impact ionization: one electron is removed from a neutral molecule.
// The detectors of these rules find nothing in charged molecules.

func neutralMolecule(mol *chem.Molecule) bool {
	return mol.Charge() == 0
}

// electronImpactNBE ionizes a non-bonding (lone pair) electron. It is the only
// rule that fails, with ErrNoActiveCenter, when the molecule has no lone pairs.
var electronImpactNBE = &Mechanism{
	Name:        "ElectronImpactNBE",
	Description: "[A:] -> [A*+]",
	Motif: Motif{
		Atoms: []AtomQuery{AllOf(neutralClosedShell, HasLonePair())},
		Bonds: []BondQuery{},
	},
	Edits: []Edit{
		{LoseLonePair(0), GainElectron(0), Charge(0, +1)},
	},
	Precondition:     neutralMolecule,
	RequireLonePairs: true,
}

// electronImpactPDB ionizes a pi bond. The charge can end on either atom,
// so each bond gives two reactions.
var electronImpactPDB = &Mechanism{
	Name:        "ElectronImpactPDB",
	Description: "A=B -> [A+]-[B*] and [A*]-[B+]",
	Motif: Motif{
		Atoms:     []AtomQuery{neutralClosedShell, neutralClosedShell},
		Bonds:     []BondQuery{MinOrder(chem.OrderDouble)},
		Symmetric: true,
	},
	Edits: []Edit{
		{Order(0, -1), Charge(0, +1), GainElectron(1)},
		{Order(0, -1), GainElectron(0), Charge(1, +1)},
	},
	Precondition: neutralMolecule,
}

// electronImpactSDB ionizes a sigma bond, which breaks it.
var electronImpactSDB = &Mechanism{
	Name:        "ElectronImpactSDB",
	Description: "A-B -> [A+] + [B*] and [A*] + [B+]",
	Motif: Motif{
		Atoms:     []AtomQuery{neutralClosedShell, neutralClosedShell},
		Bonds:     []BondQuery{single},
		Symmetric: true,
	},
	Edits: []Edit{
		{Order(0, -1), Charge(0, +1), GainElectron(1)},
		{Order(0, -1), GainElectron(0), Charge(1, +1)},
	},
	Precondition: neutralMolecule,
}
