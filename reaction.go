/*
 * reaction.go, part of molrx.
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

package chem

import "github.com/google/uuid"

// MoleculeSet is an ordered collection of molecules.
type MoleculeSet []*Molecule

// AtomCount returns the total number of atoms in the set.
func (S MoleculeSet) AtomCount() int {
	n := 0
	for _, v := range S {
		n += v.Len()
	}
	return n
}

// Charge returns the sum of the formal charges of all the molecules.
func (S MoleculeSet) Charge() int {
	c := 0
	for _, v := range S {
		c += v.Charge()
	}
	return c
}

// Owner returns the index of the molecule that holds o (an atom or an electron
// container), or -1.
func (S MoleculeSet) Owner(o ChemObject) int {
	for i, m := range S {
		if m.Holds(o) {
			return i
		}
	}
	return -1
}

// Holds returns true if o is an atom or electron container of the molecule.
func (M *Molecule) Holds(o ChemObject) bool {
	switch v := o.(type) {
	case *Atom:
		return M.AtomIndex(v) >= 0
	case *Bond:
		return M.BondIndex(v) >= 0
	case *LonePair:
		return indexOf(M.lonePairs, v) >= 0
	case *SingleElectron:
		return indexOf(M.singleElectrons, v) >= 0
	}
	return false
}

// Mapping says that the product-side object descends from the reactant-side one.
type Mapping struct {
	Reactant ChemObject
	Product  ChemObject
}

// Reaction is a record of one transformation: reactants (and agents) that
// give products. Coefficients are the stoichiometric multipliers of each
// molecule, 1 unless a balancer changed them.
type Reaction struct {
	ID                   string
	Type                 string //the identifier of the rule that produced the reaction, if any
	Reactants            MoleculeSet
	Agents               MoleculeSet
	Products             MoleculeSet
	ReactantCoefficients []int
	ProductCoefficients  []int
	Mappings             []Mapping
}

// NewReaction returns an empty reaction of the given type with a fresh random ID.
func NewReaction(typ string) *Reaction {
	return &Reaction{ID: uuid.NewString(), Type: typ}
}

// AddReactant appends a reactant with coefficient 1.
func (R *Reaction) AddReactant(m *Molecule) {
	R.AddReactantN(m, 1)
}

// AddReactantN appends a reactant with coefficient n.
func (R *Reaction) AddReactantN(m *Molecule, n int) {
	R.Reactants = append(R.Reactants, m)
	R.ReactantCoefficients = append(R.ReactantCoefficients, n)
}

// AddProduct appends a product with coefficient 1.
func (R *Reaction) AddProduct(m *Molecule) {
	R.AddProductN(m, 1)
}

// AddProductN appends a product with coefficient n.
func (R *Reaction) AddProductN(m *Molecule, n int) {
	R.Products = append(R.Products, m)
	R.ProductCoefficients = append(R.ProductCoefficients, n)
}

// AddAgent appends an agent (a molecule that takes part but is not consumed).
func (R *Reaction) AddAgent(m *Molecule) {
	R.Agents = append(R.Agents, m)
}

// AddMapping records that p (in a product) descends from r (in a reactant).
func (R *Reaction) AddMapping(r, p ChemObject) {
	R.Mappings = append(R.Mappings, Mapping{Reactant: r, Product: p})
}

// ReactantCoefficient returns the coefficient of the ith reactant.
func (R *Reaction) ReactantCoefficient(i int) int {
	if i < len(R.ReactantCoefficients) {
		return R.ReactantCoefficients[i]
	}
	return 1
}

// ProductCoefficient returns the coefficient of the ith product.
func (R *Reaction) ProductCoefficient(i int) int {
	if i < len(R.ProductCoefficients) {
		return R.ProductCoefficients[i]
	}
	return 1
}

// MappedProduct returns the product-side object mapped to r, or nil.
func (R *Reaction) MappedProduct(r ChemObject) ChemObject {
	for _, m := range R.Mappings {
		if m.Reactant == r {
			return m.Product
		}
	}
	return nil
}

// ReactionSet is an ordered collection of reactions.
type ReactionSet struct {
	reactions []*Reaction
}

// NewReactionSet returns an empty set.
func NewReactionSet() *ReactionSet {
	return &ReactionSet{}
}

// Add appends r to the set.
func (S *ReactionSet) Add(r *Reaction) {
	S.reactions = append(S.reactions, r)
}

// Len returns the number of reactions in the set.
func (S *ReactionSet) Len() int {
	return len(S.reactions)
}

// Reaction returns the ith reaction. Panics if out of range.
func (S *ReactionSet) Reaction(i int) *Reaction {
	if i < 0 || i >= len(S.reactions) {
		panic("ReactionSet: Requested Reaction out of bounds")
	}
	return S.reactions[i]
}

// Reactions returns a copy of the reaction slice.
func (S *ReactionSet) Reactions() []*Reaction {
	ret := make([]*Reaction, len(S.reactions))
	copy(ret, S.reactions)
	return ret
}

// Merge appends all the reactions of O to S.
func (S *ReactionSet) Merge(O *ReactionSet) {
	if O == nil {
		return
	}
	S.reactions = append(S.reactions, O.reactions...)
}
