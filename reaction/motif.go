/*
 * motif.go, part of molrx.
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

import (
	"fmt"
	"strings"

	chem "github.com/molrx/molrx"
	"github.com/molrx/molrx/chemgraph"
)

// Motif is a linear pattern: atom positions 0..n-1, where consecutive positions
// are joined by a 2-atom bond. Bonds[i] constrains the bond between positions i and i+1,
// so len(Bonds) must be len(Atoms)-1. A match never visits an atom twice.
type Motif struct {
	Atoms []AtomQuery
	Bonds []BondQuery

	//Symmetric motifs read the same in both directions. Only the first of a
	//match and its reverse is reported.
	Symmetric bool

	//ShortestPath requires the first and last atoms of a match to be exactly
	//len(Bonds) bonds apart, i.e. no shortcut through a ring.
	ShortestPath bool
}

// Match is one instance of a motif in a molecule.
type Match struct {
	Atoms []*chem.Atom
	Bonds []*chem.Bond
}

// Objects returns the atoms and then the bonds of the match.
func (m Match) Objects() []chem.ChemObject {
	ret := make([]chem.ChemObject, 0, len(m.Atoms)+len(m.Bonds))
	for _, v := range m.Atoms {
		ret = append(ret, v)
	}
	for _, v := range m.Bonds {
		ret = append(ret, v)
	}
	return ret
}

func (m Match) key(mol *chem.Molecule, reverse bool) string {
	ids := make([]string, len(m.Atoms))
	for i, v := range m.Atoms {
		j := i
		if reverse {
			j = len(m.Atoms) - 1 - i
		}
		ids[j] = fmt.Sprint(mol.AtomIndex(v))
	}
	return strings.Join(ids, "-")
}

// Find returns all the matches of the motif in mol, ordered by the index of the
// first atom, then by the index of the bonds followed. If onlyFlagged is true,
// every atom and bond of a match must carry the ReactiveCenter flag.
func (M *Motif) Find(mol *chem.Molecule, onlyFlagged bool) []Match {
	if len(M.Atoms) == 0 || len(M.Bonds) != len(M.Atoms)-1 {
		panic("Motif: malformed motif")
	}
	w := &walker{motif: M, mol: mol, onlyFlagged: onlyFlagged, seen: make(map[string]bool)}
	if M.ShortestPath {
		w.top = chemgraph.TopologyFromChem(mol, nil)
	}
	for _, at := range mol.Atoms() {
		if !w.atomOK(0, at) {
			continue
		}
		w.walk([]*chem.Atom{at}, nil)
	}
	return w.matches
}

// Mark sets the ReactiveCenter flag on every atom and bond of every match
// and returns the number of matches. Flags are never cleared.
func (M *Motif) Mark(mol *chem.Molecule) int {
	matches := M.Find(mol, false)
	for _, m := range matches {
		for _, o := range m.Objects() {
			o.SetFlag(chem.ReactiveCenter, true)
		}
	}
	return len(matches)
}

type walker struct {
	motif       *Motif
	mol         *chem.Molecule
	top         *chemgraph.Topology
	onlyFlagged bool
	seen        map[string]bool
	matches     []Match
}

func (w *walker) atomOK(pos int, at *chem.Atom) bool {
	if w.onlyFlagged && !at.Flag(chem.ReactiveCenter) {
		return false
	}
	return w.motif.Atoms[pos](w.mol, at)
}

func (w *walker) bondOK(pos int, b *chem.Bond) bool {
	if len(b.Atoms) != 2 {
		return false
	}
	if w.onlyFlagged && !b.Flag(chem.ReactiveCenter) {
		return false
	}
	return w.motif.Bonds[pos](w.mol, b)
}

func (w *walker) walk(atoms []*chem.Atom, bonds []*chem.Bond) {
	if len(atoms) == len(w.motif.Atoms) {
		w.emit(atoms, bonds)
		return
	}
	curr := atoms[len(atoms)-1]
	pos := len(bonds)
	for _, b := range w.mol.ConnectedBonds(curr) {
		if !w.bondOK(pos, b) {
			continue
		}
		next := b.Cross(curr)
		if inPath(atoms, next) || !w.atomOK(pos+1, next) {
			continue
		}
		//the slices are copied so sibling branches don't share backing arrays
		na := append(append(make([]*chem.Atom, 0, len(atoms)+1), atoms...), next)
		nb := append(append(make([]*chem.Bond, 0, len(bonds)+1), bonds...), b)
		w.walk(na, nb)
	}
}

func (w *walker) emit(atoms []*chem.Atom, bonds []*chem.Bond) {
	m := Match{Atoms: atoms, Bonds: bonds}
	if w.top != nil && w.top.Distance(atoms[0], atoms[len(atoms)-1]) != len(bonds) {
		return
	}
	if w.motif.Symmetric {
		if w.seen[m.key(w.mol, true)] {
			return
		}
		w.seen[m.key(w.mol, false)] = true
	}
	w.matches = append(w.matches, m)
}

func inPath(atoms []*chem.Atom, at *chem.Atom) bool {
	for _, v := range atoms {
		if v == at {
			return true
		}
	}
	return false
}
