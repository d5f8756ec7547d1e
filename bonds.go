/*
 * bonds.go, part of molrx.
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

import "math"

// Bond orders. Order 0 means undetermined.
const (
	OrderSingle   = 1.0
	OrderAromatic = 1.5
	OrderDouble   = 2.0
	OrderTriple   = 3.0
)

// orders closer than this are the same order
const ordertol = 1e-6

// Stereo describes the stereo configuration of a bond
type Stereo int

const (
	StereoNone Stereo = iota
	StereoUp
	StereoDown
	StereoE
	StereoZ
)

// Bond is an edge of the molecular graph. Most bonds join 2 atoms,
// but multi-center bonds are allowed.
type Bond struct {
	Atoms  []*Atom
	Order  float64
	Stereo Stereo
	Flags
}

// NewBond returns a bond of the given order between a and b.
func NewBond(a, b *Atom, order float64) *Bond {
	return &Bond{Atoms: []*Atom{a, b}, Order: order}
}

// Begin returns the first atom of the bond.
func (B *Bond) Begin() *Atom {
	return B.Atoms[0]
}

// End returns the last atom of the bond.
func (B *Bond) End() *Atom {
	return B.Atoms[len(B.Atoms)-1]
}

// Cross takes one end of a 2-atom bond and returns the other one.
func (B *Bond) Cross(origin *Atom) *Atom {
	if len(B.Atoms) != 2 {
		panic("Trying to cross a multi-center bond")
	}
	if origin == B.Atoms[0] {
		return B.Atoms[1]
	}
	if origin == B.Atoms[1] {
		return B.Atoms[0]
	}
	panic("Trying to cross a bond: The origin atom given is not present in the bond!") //I think this got to be a programming error, so a panic is warranted.
}

// Contains returns true if at is one of the atoms of the bond.
func (B *Bond) Contains(at *Atom) bool {
	for _, v := range B.Atoms {
		if v == at {
			return true
		}
	}
	return false
}

// Members returns the atoms of the bond.
func (B *Bond) Members() []*Atom {
	return B.Atoms
}

// Electrons returns the number of shared electrons, 2 per unit of order.
func (B *Bond) Electrons() int {
	return int(math.Round(2 * B.Order))
}

// IsOrder returns true if the bond has the order o.
func (B *Bond) IsOrder(o float64) bool {
	return math.Abs(B.Order-o) < ordertol
}

// Copy returns a copy of the bond pointing to the atoms ats,
// which must be given in the same order as in the original.
func (B *Bond) Copy(ats ...*Atom) *Bond {
	if len(ats) != len(B.Atoms) {
		panic("Bond.Copy: wrong number of atoms")
	}
	nb := &Bond{Atoms: make([]*Atom, len(ats)), Order: B.Order, Stereo: B.Stereo}
	copy(nb.Atoms, ats)
	nb.bits = B.bits
	return nb
}
