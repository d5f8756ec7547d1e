/*
 * cleavage.go, part of molrx.
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

// Bond cleavage. Both rules work on single, double and triple bonds between
// neutral atoms without unpaired electrons. A double or triple bond loses one unit
// of order, a single bond is broken and the fragments become separate products.

// heterolyticCleavage gives both electrons of the bond to one of its atoms.
// Each bond yields two reactions: first the atom that starts the match gets
// the positive charge, then the negative one.
var heterolyticCleavage = &Mechanism{
	Name:        "HeterolyticCleavage",
	Description: "A-B -> [A+] + [B-]: both electrons of the bond go to one atom",
	Motif: Motif{
		Atoms:     []AtomQuery{neutralClosedShell, neutralClosedShell},
		Bonds:     []BondQuery{cleavable},
		Symmetric: true,
	},
	Edits: []Edit{
		{Order(0, -1), Charge(0, +1), Charge(1, -1), GainLonePair(1)},
		{Order(0, -1), Charge(0, -1), GainLonePair(0), Charge(1, +1)},
	},
}

// homolyticCleavage gives one electron of the bond to each atom.
var homolyticCleavage = &Mechanism{
	Name:        "HomolyticCleavage",
	Description: "A-B -> [A*] + [B*]: each atom keeps one electron of the bond",
	Motif: Motif{
		Atoms:     []AtomQuery{neutralClosedShell, neutralClosedShell},
		Bonds:     []BondQuery{cleavable},
		Symmetric: true,
	},
	Edits: []Edit{
		{Order(0, -1), GainElectron(0), GainElectron(1)},
	},
}
