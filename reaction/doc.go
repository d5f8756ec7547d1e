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
Package reaction implements reaction types: rules that find an active center in a
molecule and produce new molecules by moving electrons around it (breaking and
forming bonds, shifting charges, lone pairs and radicals).

Every rule is a Mechanism: a Motif, which is a linear pattern of atom and bond
queries, plus one or more Edits. A Rule applies a Mechanism in the same way for
every reaction type:

	1. unless told that the caller already did it, flag (chem.ReactiveCenter) every
	   atom and bond that takes part in some instance of the motif;
	2. find every instance of the motif made only of flagged atoms and bonds;
	3. for each instance and each edit, clone the reactant, apply the edit to the
	   clone through the clone's identity map, and split the result into its
	   connected components if a bond was broken;
	4. record a chem.Reaction with the reactant, the fragments as products, and
	   mappings from every atom and surviving bond of the instance to its copy.

Rules are obtained by name from the registry:

	rule, err := reaction.New("HeterolyticCleavage")
	set, err := rule.Initiate(chem.MoleculeSet{mol}, nil)

Rules log through zap (see WithLogger) and are not safe for concurrent use on
the same reactant.
*/
package reaction
