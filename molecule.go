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

package chem

import "fmt"

// Molecule is an ordered collection of atoms plus ordered collections of the
// electron containers (bonds, lone pairs and single electrons) among them.
// Every electron container references only atoms present in the same Molecule.
// A Molecule is not safe for concurrent use if any goroutine modifies it,
// flags included.
type Molecule struct {
	Name            string
	atoms           []*Atom
	bonds           []*Bond
	lonePairs       []*LonePair
	singleElectrons []*SingleElectron
}

// NewMolecule returns an empty molecule with the given name.
func NewMolecule(name string) *Molecule {
	return &Molecule{Name: name}
}

// Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.atoms)
}

// Atom returns the Atom corresponding to the index i. Panics if out of range.
func (M *Molecule) Atom(i int) *Atom {
	if i < 0 || i >= len(M.atoms) {
		panic("Molecule: Requested Atom out of bounds")
	}
	return M.atoms[i]
}

// Bond returns the Bond corresponding to the index i. Panics if out of range.
func (M *Molecule) Bond(i int) *Bond {
	if i < 0 || i >= len(M.bonds) {
		panic("Molecule: Requested Bond out of bounds")
	}
	return M.bonds[i]
}

// NBonds returns the number of bonds in the molecule
func (M *Molecule) NBonds() int {
	return len(M.bonds)
}

// Atoms returns a copy of the atom slice.
func (M *Molecule) Atoms() []*Atom {
	ret := make([]*Atom, len(M.atoms))
	copy(ret, M.atoms)
	return ret
}

// Bonds returns a copy of the bond slice.
func (M *Molecule) Bonds() []*Bond {
	ret := make([]*Bond, len(M.bonds))
	copy(ret, M.bonds)
	return ret
}

// LonePairs returns a copy of the lone pair slice.
func (M *Molecule) LonePairs() []*LonePair {
	ret := make([]*LonePair, len(M.lonePairs))
	copy(ret, M.lonePairs)
	return ret
}

// SingleElectrons returns a copy of the single electron slice.
func (M *Molecule) SingleElectrons() []*SingleElectron {
	ret := make([]*SingleElectron, len(M.singleElectrons))
	copy(ret, M.singleElectrons)
	return ret
}

// ElectronContainers returns all the electron containers of the molecule:
// bonds first, then lone pairs, then single electrons.
func (M *Molecule) ElectronContainers() []ElectronContainer {
	ret := make([]ElectronContainer, 0, len(M.bonds)+len(M.lonePairs)+len(M.singleElectrons))
	for _, v := range M.bonds {
		ret = append(ret, v)
	}
	for _, v := range M.lonePairs {
		ret = append(ret, v)
	}
	for _, v := range M.singleElectrons {
		ret = append(ret, v)
	}
	return ret
}

// AtomIndex returns the position of at in the molecule, or -1 if at is not in it.
func (M *Molecule) AtomIndex(at *Atom) int {
	return indexOf(M.atoms, at)
}

// BondIndex returns the position of b in the molecule, or -1 if b is not in it.
func (M *Molecule) BondIndex(b *Bond) int {
	return indexOf(M.bonds, b)
}

// Contains returns true if at belongs to the molecule.
func (M *Molecule) Contains(at *Atom) bool {
	return M.AtomIndex(at) >= 0
}

// AddAtom appends at to the molecule and returns its index.
func (M *Molecule) AddAtom(at *Atom) int {
	if at == nil {
		panic("Molecule: Tried to add a nil Atom")
	}
	M.atoms = append(M.atoms, at)
	return len(M.atoms) - 1
}

// AddBond creates a bond of the given order between the atoms with indexes
// i and j, appends it and returns it. Panics if the indexes are out of range.
func (M *Molecule) AddBond(i, j int, order float64) *Bond {
	b := NewBond(M.Atom(i), M.Atom(j), order)
	M.bonds = append(M.bonds, b)
	return b
}

// AddLonePair adds a lone pair to the atom with index i.
func (M *Molecule) AddLonePair(i int) *LonePair {
	lp := &LonePair{Atom: M.Atom(i)}
	M.lonePairs = append(M.lonePairs, lp)
	return lp
}

// AddSingleElectron adds an unpaired electron to the atom with index i.
func (M *Molecule) AddSingleElectron(i int) *SingleElectron {
	se := &SingleElectron{Atom: M.Atom(i)}
	M.singleElectrons = append(M.singleElectrons, se)
	return se
}

// Connect creates a bond of the given order between a and b, which must
// belong to the molecule.
func (M *Molecule) Connect(a, b *Atom, order float64) (*Bond, error) {
	bond := NewBond(a, b, order)
	if err := M.AddElectronContainer(bond); err != nil {
		return nil, errDecorate(err, "Connect")
	}
	return bond, nil
}

// AddElectronContainer appends an existing bond, lone pair or single electron.
// All the atoms it references must belong to the molecule. The container is
// not copied.
func (M *Molecule) AddElectronContainer(ec ElectronContainer) error {
	for _, at := range ec.Members() {
		if !M.Contains(at) {
			return NewError(fmt.Sprintf("atom %s", at), ErrNotMember, "AddElectronContainer")
		}
	}
	switch v := ec.(type) {
	case *Bond:
		M.bonds = append(M.bonds, v)
	case *LonePair:
		M.lonePairs = append(M.lonePairs, v)
	case *SingleElectron:
		M.singleElectrons = append(M.singleElectrons, v)
	default:
		panic(fmt.Sprintf("AddElectronContainer: unknown container type %T", ec))
	}
	return nil
}

// RemoveElectronContainer removes ec from the molecule.
func (M *Molecule) RemoveElectronContainer(ec ElectronContainer) error {
	removed := false
	switch v := ec.(type) {
	case *Bond:
		M.bonds, removed = takefromslice(M.bonds, v)
	case *LonePair:
		M.lonePairs, removed = takefromslice(M.lonePairs, v)
	case *SingleElectron:
		M.singleElectrons, removed = takefromslice(M.singleElectrons, v)
	}
	if !removed {
		return NewError("can't remove electron container", ErrNotMember, "RemoveElectronContainer")
	}
	return nil
}

// RemoveBond removes b from the molecule. The atoms are kept.
func (M *Molecule) RemoveBond(b *Bond) error {
	return errDecorate(M.RemoveElectronContainer(b), "RemoveBond")
}

// RemoveLonePair removes lp from the molecule.
func (M *Molecule) RemoveLonePair(lp *LonePair) error {
	return errDecorate(M.RemoveElectronContainer(lp), "RemoveLonePair")
}

// RemoveSingleElectron removes se from the molecule.
func (M *Molecule) RemoveSingleElectron(se *SingleElectron) error {
	return errDecorate(M.RemoveElectronContainer(se), "RemoveSingleElectron")
}

// returns the position of el in s, or -1
func indexOf[T comparable](s []T, el T) int {
	for i, v := range s {
		if v == el {
			return i
		}
	}
	return -1
}

// return a new slice with the element el removed, and whether it was there.
func takefromslice[T comparable](s []T, el T) ([]T, bool) {
	i := indexOf(s, el)
	if i < 0 {
		return s, false
	}
	news := make([]T, 0, len(s)-1)
	news = append(news, s[:i]...)
	return append(news, s[i+1:]...), true
}

// ConnectedBonds returns the bonds containing at, in the molecule's order.
func (M *Molecule) ConnectedBonds(at *Atom) []*Bond {
	ret := make([]*Bond, 0, 4)
	for _, b := range M.bonds {
		if b.Contains(at) {
			ret = append(ret, b)
		}
	}
	return ret
}

// ConnectedAtoms returns the atoms bonded to at, following the order of the bonds.
func (M *Molecule) ConnectedAtoms(at *Atom) []*Atom {
	ret := make([]*Atom, 0, 4)
	for _, b := range M.bonds {
		if !b.Contains(at) {
			continue
		}
		for _, v := range b.Atoms {
			if v != at {
				ret = append(ret, v)
			}
		}
	}
	return ret
}

// BondBetween returns the bond joining a and b, or nil.
func (M *Molecule) BondBetween(a, b *Atom) *Bond {
	for _, v := range M.bonds {
		if v.Contains(a) && v.Contains(b) {
			return v
		}
	}
	return nil
}

// ConnectedLonePairs returns the lone pairs of at.
func (M *Molecule) ConnectedLonePairs(at *Atom) []*LonePair {
	var ret []*LonePair
	for _, v := range M.lonePairs {
		if v.Atom == at {
			ret = append(ret, v)
		}
	}
	return ret
}

// ConnectedSingleElectrons returns the unpaired electrons of at.
func (M *Molecule) ConnectedSingleElectrons(at *Atom) []*SingleElectron {
	var ret []*SingleElectron
	for _, v := range M.singleElectrons {
		if v.Atom == at {
			ret = append(ret, v)
		}
	}
	return ret
}

// LonePairCount returns the number of lone pairs on at.
func (M *Molecule) LonePairCount(at *Atom) int {
	return len(M.ConnectedLonePairs(at))
}

// SingleElectronCount returns the number of unpaired electrons on at.
func (M *Molecule) SingleElectronCount(at *Atom) int {
	return len(M.ConnectedSingleElectrons(at))
}

// BondOrderSum returns the sum of the orders of the bonds of at.
func (M *Molecule) BondOrderSum(at *Atom) float64 {
	var s float64
	for _, b := range M.ConnectedBonds(at) {
		s += b.Order
	}
	return s
}

// Charge returns the total formal charge of the molecule.
func (M *Molecule) Charge() int {
	c := 0
	for _, v := range M.atoms {
		c += v.Charge
	}
	return c
}

// Unpaired returns the number of unpaired electrons in the molecule.
func (M *Molecule) Unpaired() int {
	return len(M.singleElectrons)
}

// ResetFlags clears the flags f on every atom, bond and electron container.
func (M *Molecule) ResetFlags(f Flag) {
	for _, v := range M.atoms {
		v.SetFlag(f, false)
	}
	for _, v := range M.ElectronContainers() {
		v.SetFlag(f, false)
	}
}

// Validate checks that every electron container references only atoms in the molecule,
// and that no atom is present twice.
func (M *Molecule) Validate() error {
	seen := make(map[*Atom]bool, len(M.atoms))
	for i, v := range M.atoms {
		if v == nil {
			return NewError(fmt.Sprintf("atom %d is nil", i), nil, "Validate")
		}
		if seen[v] {
			return NewError(fmt.Sprintf("atom %d (%s) is present twice", i, v), nil, "Validate")
		}
		seen[v] = true
	}
	for i, ec := range M.ElectronContainers() {
		for _, at := range ec.Members() {
			if !seen[at] {
				return NewError(fmt.Sprintf("electron container %d (%T)", i, ec), ErrNotMember, "Validate")
			}
		}
	}
	return nil
}

// String returns a short, line-notation-like description of the molecule
// (not SMILES), mostly useful for debugging.
func (M *Molecule) String() string {
	s := ""
	for i, v := range M.atoms {
		if i > 0 {
			s += "."
		}
		s += v.String()
	}
	for _, b := range M.bonds {
		if len(b.Atoms) != 2 {
			continue
		}
		s += fmt.Sprintf(" %d-%d:%g", M.AtomIndex(b.Begin()), M.AtomIndex(b.End()), b.Order)
	}
	return s
}
