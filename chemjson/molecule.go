/*
 * molecule.go, part of molrx.
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

// Atom is the serializable form of a chem.Atom.
type Atom struct {
	Symbol    string
	Charge    int       `json:",omitempty"`
	ImplicitH int       `json:",omitempty"`
	Flags     chem.Flag `json:",omitempty"`
}

// Bond is the serializable form of a chem.Bond. Atoms are indexes in the molecule.
type Bond struct {
	Atoms  []int
	Order  float64
	Stereo chem.Stereo `json:",omitempty"`
	Flags  chem.Flag   `json:",omitempty"`
}

// Molecule is the serializable form of a chem.Molecule. Lone pairs and single
// electrons are given as the indexes of the atoms they sit on.
type Molecule struct {
	Name            string `json:",omitempty"`
	Atoms           []Atom
	Bonds           []Bond `json:",omitempty"`
	LonePairs       []int  `json:",omitempty"`
	SingleElectrons []int  `json:",omitempty"`
}

// FromMolecule returns the serializable form of mol.
func FromMolecule(mol *chem.Molecule) (*Molecule, error) {
	const funcname = "FromMolecule"
	if err := mol.Validate(); err != nil {
		return nil, NewError("molecule", funcname, err)
	}
	J := &Molecule{Name: mol.Name, Atoms: make([]Atom, mol.Len())}
	for i, at := range mol.Atoms() {
		J.Atoms[i] = Atom{Symbol: at.Symbol, Charge: at.Charge, ImplicitH: at.ImplicitH, Flags: at.FlagBits()}
	}
	for _, b := range mol.Bonds() {
		jb := Bond{Atoms: make([]int, len(b.Atoms)), Order: b.Order, Stereo: b.Stereo, Flags: b.FlagBits()}
		for i, at := range b.Atoms {
			jb.Atoms[i] = mol.AtomIndex(at)
		}
		J.Bonds = append(J.Bonds, jb)
	}
	for _, lp := range mol.LonePairs() {
		J.LonePairs = append(J.LonePairs, mol.AtomIndex(lp.Atom))
	}
	for _, se := range mol.SingleElectrons() {
		J.SingleElectrons = append(J.SingleElectrons, mol.AtomIndex(se.Atom))
	}
	return J, nil
}

// ToMolecule builds the chem.Molecule described by J. Out of range atom
// indexes give an error.
func (J *Molecule) ToMolecule() (*chem.Molecule, error) {
	const funcname = "ToMolecule"
	mol := chem.NewMolecule(J.Name)
	for _, a := range J.Atoms {
		at := chem.NewAtom(a.Symbol)
		at.Charge = a.Charge
		at.ImplicitH = a.ImplicitH
		at.SetFlag(a.Flags, true)
		mol.AddAtom(at)
	}
	n := mol.Len()
	inrange := func(is ...int) error {
		for _, i := range is {
			if i < 0 || i >= n {
				return NewError("molecule", funcname, fmt.Errorf("atom index %d out of range, molecule has %d atoms", i, n))
			}
		}
		return nil
	}
	for _, jb := range J.Bonds {
		if len(jb.Atoms) < 2 {
			return nil, NewError("molecule", funcname, fmt.Errorf("bond with %d atoms", len(jb.Atoms)))
		}
		if err := inrange(jb.Atoms...); err != nil {
			return nil, err
		}
		ats := make([]*chem.Atom, len(jb.Atoms))
		for i, v := range jb.Atoms {
			ats[i] = mol.Atom(v)
		}
		b := &chem.Bond{Atoms: ats, Order: jb.Order, Stereo: jb.Stereo}
		b.SetFlag(jb.Flags, true)
		if err := mol.AddElectronContainer(b); err != nil {
			return nil, NewError("molecule", funcname, err)
		}
	}
	if err := inrange(J.LonePairs...); err != nil {
		return nil, err
	}
	for _, i := range J.LonePairs {
		mol.AddLonePair(i)
	}
	if err := inrange(J.SingleElectrons...); err != nil {
		return nil, err
	}
	for _, i := range J.SingleElectrons {
		mol.AddSingleElectron(i)
	}
	return mol, nil
}
