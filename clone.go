/*
 * clone.go, part of molrx.
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

// CloneMap takes each object of a molecule to its copy in a clone.
type CloneMap struct {
	atoms           map[*Atom]*Atom
	bonds           map[*Bond]*Bond
	lonePairs       map[*LonePair]*LonePair
	singleElectrons map[*SingleElectron]*SingleElectron
}

// Atom returns the copy of at, or nil if at was not in the cloned molecule.
func (C *CloneMap) Atom(at *Atom) *Atom {
	return C.atoms[at]
}

// Bond returns the copy of b, or nil if b was not in the cloned molecule.
func (C *CloneMap) Bond(b *Bond) *Bond {
	return C.bonds[b]
}

// LonePair returns the copy of lp, or nil.
func (C *CloneMap) LonePair(lp *LonePair) *LonePair {
	return C.lonePairs[lp]
}

// SingleElectron returns the copy of se, or nil.
func (C *CloneMap) SingleElectron(se *SingleElectron) *SingleElectron {
	return C.singleElectrons[se]
}

// Object returns the copy of any ChemObject of the original molecule, or nil.
func (C *CloneMap) Object(o ChemObject) ChemObject {
	switch v := o.(type) {
	case *Atom:
		if r := C.atoms[v]; r != nil {
			return r
		}
	case *Bond:
		if r := C.bonds[v]; r != nil {
			return r
		}
	case *LonePair:
		if r := C.lonePairs[v]; r != nil {
			return r
		}
	case *SingleElectron:
		if r := C.singleElectrons[v]; r != nil {
			return r
		}
	}
	return nil
}

// Clone returns a deep copy of the molecule. Every atom, bond and electron
// container of the copy is a new object, and the containers point to the
// copy's own atoms. Positions are preserved. The returned CloneMap takes the
// objects of M to their copies. Clone fails if the molecule is inconsistent,
// i.e. some container references an atom that is not in the molecule.
func (M *Molecule) Clone() (*Molecule, *CloneMap, error) {
	if err := M.Validate(); err != nil {
		return nil, nil, NewError("could not clone molecule", err, "Clone")
	}
	cm := &CloneMap{
		atoms:           make(map[*Atom]*Atom, len(M.atoms)),
		bonds:           make(map[*Bond]*Bond, len(M.bonds)),
		lonePairs:       make(map[*LonePair]*LonePair, len(M.lonePairs)),
		singleElectrons: make(map[*SingleElectron]*SingleElectron, len(M.singleElectrons)),
	}
	N := NewMolecule(M.Name)
	N.atoms = make([]*Atom, len(M.atoms))
	for i, v := range M.atoms {
		N.atoms[i] = v.Copy()
		cm.atoms[v] = N.atoms[i]
	}
	N.bonds = make([]*Bond, len(M.bonds))
	for i, v := range M.bonds {
		ats := make([]*Atom, len(v.Atoms))
		for j, at := range v.Atoms {
			ats[j] = cm.atoms[at]
		}
		N.bonds[i] = v.Copy(ats...)
		cm.bonds[v] = N.bonds[i]
	}
	N.lonePairs = make([]*LonePair, len(M.lonePairs))
	for i, v := range M.lonePairs {
		N.lonePairs[i] = &LonePair{Atom: cm.atoms[v.Atom], Flags: v.Flags}
		cm.lonePairs[v] = N.lonePairs[i]
	}
	N.singleElectrons = make([]*SingleElectron, len(M.singleElectrons))
	for i, v := range M.singleElectrons {
		N.singleElectrons[i] = &SingleElectron{Atom: cm.atoms[v.Atom], Flags: v.Flags}
		cm.singleElectrons[v] = N.singleElectrons[i]
	}
	return N, cm, nil
}
