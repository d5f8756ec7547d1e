/*
 * query.go, part of molrx.
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

import chem "github.com/molrx/molrx"

// AtomQuery decides whether an atom of mol can take one position of a motif.
type AtomQuery func(mol *chem.Molecule, at *chem.Atom) bool

// BondQuery decides whether a bond of mol can join two consecutive positions of a motif.
type BondQuery func(mol *chem.Molecule, b *chem.Bond) bool

// AnyAtom matches every atom.
func AnyAtom() AtomQuery {
	return func(*chem.Molecule, *chem.Atom) bool { return true }
}

// Symbol matches atoms of any of the given elements.
func Symbol(symbols ...string) AtomQuery {
	return func(_ *chem.Molecule, at *chem.Atom) bool {
		for _, s := range symbols {
			if at.Symbol == s {
				return true
			}
		}
		return false
	}
}

// NotSymbol matches atoms of none of the given elements.
func NotSymbol(symbols ...string) AtomQuery {
	is := Symbol(symbols...)
	return func(mol *chem.Molecule, at *chem.Atom) bool { return !is(mol, at) }
}

// ChargeIs matches atoms with formal charge c.
func ChargeIs(c int) AtomQuery {
	return func(_ *chem.Molecule, at *chem.Atom) bool { return at.Charge == c }
}

// Neutral matches atoms without formal charge.
func Neutral() AtomQuery {
	return ChargeIs(0)
}

// HasLonePair matches atoms with at least one lone pair.
func HasLonePair() AtomQuery {
	return func(mol *chem.Molecule, at *chem.Atom) bool { return mol.LonePairCount(at) > 0 }
}

// HasRadical matches atoms with at least one unpaired electron.
func HasRadical() AtomQuery {
	return func(mol *chem.Molecule, at *chem.Atom) bool { return mol.SingleElectronCount(at) > 0 }
}

// NoRadical matches atoms without unpaired electrons.
func NoRadical() AtomQuery {
	return func(mol *chem.Molecule, at *chem.Atom) bool { return mol.SingleElectronCount(at) == 0 }
}

// AllOf matches atoms that satisfy all the queries.
func AllOf(queries ...AtomQuery) AtomQuery {
	return func(mol *chem.Molecule, at *chem.Atom) bool {
		for _, q := range queries {
			if !q(mol, at) {
				return false
			}
		}
		return true
	}
}

// AnyBond matches every bond.
func AnyBond() BondQuery {
	return func(*chem.Molecule, *chem.Bond) bool { return true }
}

// OrderIs matches bonds of any of the given orders.
func OrderIs(orders ...float64) BondQuery {
	return func(_ *chem.Molecule, b *chem.Bond) bool {
		for _, o := range orders {
			if b.IsOrder(o) {
				return true
			}
		}
		return false
	}
}

// MinOrder matches bonds with order o or higher. Aromatic bonds (1.5) are not
// pi bonds for this purpose unless o is 1.5 or lower.
func MinOrder(o float64) BondQuery {
	return func(_ *chem.Molecule, b *chem.Bond) bool { return b.Order >= o-1e-6 }
}

// The queries most rules share.
var (
	neutralClosedShell = AllOf(Neutral(), NoRadical())
	cleavable          = OrderIs(chem.OrderSingle, chem.OrderDouble, chem.OrderTriple)
	single             = OrderIs(chem.OrderSingle)
	double             = OrderIs(chem.OrderDouble)
)
