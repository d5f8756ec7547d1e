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

package chemjson

import (
	"fmt"

	chem "github.com/molrx/molrx"
)

// Kinds of object a Ref can point to.
const (
	KindAtom           = "atom"
	KindBond           = "bond"
	KindLonePair       = "lonepair"
	KindSingleElectron = "singleelectron"
)

// Ref points to an object of one molecule of a reaction: the Index-th object
// of the given Kind in the Molecule-th reactant or product.
type Ref struct {
	Molecule int
	Kind     string
	Index    int
}

// Mapping is the serializable form of a chem.Mapping.
type Mapping struct {
	Reactant Ref
	Product  Ref
}

// Reaction is the serializable form of a chem.Reaction.
type Reaction struct {
	ID                   string
	Type                 string `json:",omitempty"`
	Reactants            []*Molecule
	Agents               []*Molecule `json:",omitempty"`
	Products             []*Molecule
	ReactantCoefficients []int     `json:",omitempty"`
	ProductCoefficients  []int     `json:",omitempty"`
	Mappings             []Mapping `json:",omitempty"`
}

func fromSet(set chem.MoleculeSet) ([]*Molecule, error) {
	ret := make([]*Molecule, len(set))
	for i, m := range set {
		if m == nil {
			return nil, NewError("reaction", "fromSet", fmt.Errorf("molecule %d is nil", i))
		}
		j, err := FromMolecule(m)
		if err != nil {
			return nil, err
		}
		ret[i] = j
	}
	return ret, nil
}

func toSet(set []*Molecule) (chem.MoleculeSet, error) {
	ret := make(chem.MoleculeSet, len(set))
	for i, j := range set {
		if j == nil {
			return nil, NewError("reaction", "toSet", fmt.Errorf("molecule %d is null", i))
		}
		m, err := j.ToMolecule()
		if err != nil {
			return nil, err
		}
		ret[i] = m
	}
	return ret, nil
}

func refOf(set chem.MoleculeSet, o chem.ChemObject) (Ref, error) {
	i := set.Owner(o)
	if i < 0 {
		return Ref{}, fmt.Errorf("mapped object %v not in the reaction", o)
	}
	mol := set[i]
	switch v := o.(type) {
	case *chem.Atom:
		return Ref{i, KindAtom, mol.AtomIndex(v)}, nil
	case *chem.Bond:
		return Ref{i, KindBond, mol.BondIndex(v)}, nil
	case *chem.LonePair:
		return Ref{i, KindLonePair, indexOf(mol.LonePairs(), v)}, nil
	case *chem.SingleElectron:
		return Ref{i, KindSingleElectron, indexOf(mol.SingleElectrons(), v)}, nil
	}
	return Ref{}, fmt.Errorf("can't map object of type %T", o)
}

func indexOf[T comparable](s []T, el T) int {
	for i, v := range s {
		if v == el {
			return i
		}
	}
	return -1
}

func (R Ref) resolve(set chem.MoleculeSet) (chem.ChemObject, error) {
	if R.Molecule < 0 || R.Molecule >= len(set) {
		return nil, fmt.Errorf("molecule %d out of range", R.Molecule)
	}
	mol := set[R.Molecule]
	var n int
	switch R.Kind {
	case KindAtom:
		n = mol.Len()
	case KindBond:
		n = mol.NBonds()
	case KindLonePair:
		n = len(mol.LonePairs())
	case KindSingleElectron:
		n = len(mol.SingleElectrons())
	default:
		return nil, fmt.Errorf("unknown kind %q", R.Kind)
	}
	if R.Index < 0 || R.Index >= n {
		return nil, fmt.Errorf("%s %d out of range in molecule %d", R.Kind, R.Index, R.Molecule)
	}
	switch R.Kind {
	case KindAtom:
		return mol.Atom(R.Index), nil
	case KindBond:
		return mol.Bond(R.Index), nil
	case KindLonePair:
		return mol.LonePairs()[R.Index], nil
	}
	return mol.SingleElectrons()[R.Index], nil
}

// FromReaction returns the serializable form of r. Every mapped object must be in
// a reactant (reactant side) or a product (product side) of r.
func FromReaction(r *chem.Reaction) (*Reaction, error) {
	const funcname = "FromReaction"
	J := &Reaction{ID: r.ID, Type: r.Type, ReactantCoefficients: r.ReactantCoefficients, ProductCoefficients: r.ProductCoefficients}
	var err error
	if J.Reactants, err = fromSet(r.Reactants); err != nil {
		return nil, decorate(err, funcname)
	}
	if J.Agents, err = fromSet(r.Agents); err != nil {
		return nil, decorate(err, funcname)
	}
	if J.Products, err = fromSet(r.Products); err != nil {
		return nil, decorate(err, funcname)
	}
	for _, m := range r.Mappings {
		rr, err := refOf(r.Reactants, m.Reactant)
		if err != nil {
			return nil, NewError("reaction", funcname, err)
		}
		pr, err := refOf(r.Products, m.Product)
		if err != nil {
			return nil, NewError("reaction", funcname, err)
		}
		J.Mappings = append(J.Mappings, Mapping{Reactant: rr, Product: pr})
	}
	return J, nil
}

// ToReaction builds the chem.Reaction described by J, mappings resolved
// to the new objects.
func (J *Reaction) ToReaction() (*chem.Reaction, error) {
	const funcname = "ToReaction"
	r := &chem.Reaction{ID: J.ID, Type: J.Type, ReactantCoefficients: J.ReactantCoefficients, ProductCoefficients: J.ProductCoefficients}
	var err error
	if r.Reactants, err = toSet(J.Reactants); err != nil {
		return nil, decorate(err, funcname)
	}
	if r.Agents, err = toSet(J.Agents); err != nil {
		return nil, decorate(err, funcname)
	}
	if r.Products, err = toSet(J.Products); err != nil {
		return nil, decorate(err, funcname)
	}
	for i, m := range J.Mappings {
		ro, err := m.Reactant.resolve(r.Reactants)
		if err != nil {
			return nil, NewError("reaction", funcname, fmt.Errorf("mapping %d, reactant side: %w", i, err))
		}
		po, err := m.Product.resolve(r.Products)
		if err != nil {
			return nil, NewError("reaction", funcname, fmt.Errorf("mapping %d, product side: %w", i, err))
		}
		r.AddMapping(ro, po)
	}
	return r, nil
}

// decorate adds caller to err if it is a *Error, and wraps it into one otherwise.
func decorate(err error, caller string) error {
	if jerr, ok := err.(*Error); ok {
		jerr.Decorate(caller)
		return jerr
	}
	return NewError("process", caller, err)
}
