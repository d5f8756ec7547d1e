/*
 * doc.go, part of molrx.
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

/*
Package chem is the molecular graph model of the molrx library. It provides atoms, bonds,
lone pairs and single electrons, the Molecule container that holds them, and the Reaction
and ReactionSet records produced by the reaction-type rules in the reaction package.

	**molrx Capabilities**

    Molecules as attributed graphs: atoms carry an element symbol, a formal charge,
	an implicit hydrogen count and a small set of flags. Bonds carry an order and
	a stereo descriptor. Lone pairs and single electrons are electron containers
	owned by one atom.

    Deep copies. Molecule.Clone returns, together with the copy, a CloneMap
	that takes every atom, bond and electron container of the original to its
	counterpart in the copy. Code that edits a copy never needs to look things up
	by index or by scratch flags.

    Reactions. A Reaction holds reactants, agents, products, stoichiometric
	coefficients and the reactant to product mappings of the objects a rule touched.

    Molecular formulas (Hill order) and nominal masses.

Subpackages:

	chemgraph   gonum graph adapter, connectivity partition.
	reaction    the reaction-type transformation engine and its rules.
	balance     stoichiometric balancing of reactions.
	chemjson    JSON transport of molecules and reaction sets.

Many functions here panic instead of returning errors when given nil objects or indexes
out of range. Those are programming errors, and the program should crash.
*/
package chem
