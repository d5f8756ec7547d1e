/*
 * elimination.go, part of molrx.
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

// Eliminations and fragmentations: a sigma bond is broken next to a charge or
// radical site, and the pieces become separate products.

// carbonylElimination expels carbon monoxide from an acylium ion. The leaving
// group takes the positive charge and the carbon keeps the bond electrons.
var carbonylElimination = &Mechanism{
	Name:        "CarbonylElimination",
	Description: "X-C#[O+] -> [X+] + [C-]#[O+]",
	Motif: Motif{
		Atoms: []AtomQuery{NoRadical(), AllOf(Symbol("C"), neutralClosedShell), AllOf(Symbol("O"), ChargeIs(1), NoRadical())},
		Bonds: []BondQuery{single, OrderIs(3)},
	},
	Edits: []Edit{
		{Order(0, -1), Charge(0, +1), Charge(1, -1), GainLonePair(1)},
	},
}

// hyperconjugation releases a proton next to a cationic center.
var hyperconjugation = &Mechanism{
	Name:        "Hyperconjugation",
	Description: "[A+]-B-H -> A=B + [H+]",
	Motif: Motif{
		Atoms: []AtomQuery{AllOf(ChargeIs(1), NoRadical()), neutralClosedShell, AllOf(Symbol("H"), neutralClosedShell)},
		Bonds: []BondQuery{single, single},
	},
	Edits: []Edit{
		{Order(0, +1), Order(1, -1), Charge(0, -1), Charge(2, +1)},
	},
}

// radicalSiteInitiation is the beta scission of a radical.
var radicalSiteInitiation = &Mechanism{
	Name:        "RadicalSiteInitiation",
	Description: "[A*]-B-C -> A=B + [C*]",
	Motif: Motif{
		Atoms: []AtomQuery{AllOf(Neutral(), HasRadical()), neutralClosedShell, neutralClosedShell},
		Bonds: []BondQuery{single, single},
	},
	Edits: []Edit{
		{Order(0, +1), Order(1, -1), LoseElectron(0), GainElectron(2)},
	},
}
