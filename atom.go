/*
 * atom.go, part of molrx.
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

// Atom is a node of the molecular graph. Atoms are identified by reference
// within one molecule, and by position across a molecule and its clones.
type Atom struct {
	Symbol    string
	Charge    int //formal charge
	ImplicitH int //hydrogens not present as atoms of the molecule
	Flags
}

// NewAtom returns a neutral atom with the given element symbol.
func NewAtom(symbol string) *Atom {
	return &Atom{Symbol: symbol}
}

// Copy returns a copy of the Atom object, flags included.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	Newat := new(Atom)
	Newat.Symbol = A.Symbol
	Newat.Charge = A.Charge
	Newat.ImplicitH = A.ImplicitH
	Newat.bits = A.bits
	return Newat
}

// String returns the symbol, bracketed and with the charge if the atom is charged, i.e. "[O-]".
func (A *Atom) String() string {
	switch {
	case A.Charge == 0:
		return A.Symbol
	case A.Charge == 1:
		return fmt.Sprintf("[%s+]", A.Symbol)
	case A.Charge == -1:
		return fmt.Sprintf("[%s-]", A.Symbol)
	case A.Charge > 0:
		return fmt.Sprintf("[%s+%d]", A.Symbol, A.Charge)
	}
	return fmt.Sprintf("[%s%d]", A.Symbol, A.Charge)
}
