/*
 * rearrangement.go, part of molrx.
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

// Displacement of a charge, a lone pair or a radical along A-B=C: the double
// bond moves to A=B and whatever A had ends on C.

var rearrangementAnion = &Mechanism{
	Name:        "RearrangementAnion",
	Description: "[A-]-B=C -> A=B-[C-]",
	Motif: Motif{
		Atoms: []AtomQuery{AllOf(ChargeIs(-1), HasLonePair(), NoRadical()), neutralClosedShell, neutralClosedShell},
		Bonds: []BondQuery{single, double},
	},
	Edits: []Edit{
		{Order(0, +1), Order(1, -1), Charge(0, +1), LoseLonePair(0), Charge(2, -1), GainLonePair(2)},
	},
}

var rearrangementCation = &Mechanism{
	Name:        "RearrangementCation",
	Description: "[A+]-B=C -> A=B-[C+]",
	Motif: Motif{
		Atoms: []AtomQuery{AllOf(ChargeIs(1), NoRadical()), neutralClosedShell, neutralClosedShell},
		Bonds: []BondQuery{single, double},
	},
	Edits: []Edit{
		{Order(0, +1), Order(1, -1), Charge(0, -1), Charge(2, +1)},
	},
}

var rearrangementLonePair = &Mechanism{
	Name:        "RearrangementLonePair",
	Description: "[A:]-B=C -> [A+]=B-[C-]",
	Motif: Motif{
		Atoms: []AtomQuery{AllOf(neutralClosedShell, HasLonePair()), neutralClosedShell, neutralClosedShell},
		Bonds: []BondQuery{single, double},
	},
	Edits: []Edit{
		{Order(0, +1), Order(1, -1), LoseLonePair(0), Charge(0, +1), Charge(2, -1), GainLonePair(2)},
	},
}

var rearrangementRadical = &Mechanism{
	Name:        "RearrangementRadical",
	Description: "[A*]-B=C -> A=B-[C*]",
	Motif: Motif{
		Atoms: []AtomQuery{AllOf(Neutral(), HasRadical()), neutralClosedShell, neutralClosedShell},
		Bonds: []BondQuery{single, double},
	},
	Edits: []Edit{
		{Order(0, +1), Order(1, -1), LoseElectron(0), GainElectron(2)},
	},
}

// sharingLonePair turns a lone pair next to a cation into a new bond.
var sharingLonePair = &Mechanism{
	Name:        "SharingLonePair",
	Description: "[A:]-[B+] -> [A+]=B",
	Motif: Motif{
		Atoms: []AtomQuery{AllOf(neutralClosedShell, HasLonePair()), AllOf(ChargeIs(1), NoRadical())},
		Bonds: []BondQuery{single},
	},
	Edits: []Edit{
		{Order(0, +1), LoseLonePair(0), Charge(0, +1), Charge(1, -1)},
	},
}
