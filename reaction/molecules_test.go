/*
 * molecules_test.go, part of molrx.
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
	chem "github.com/molrx/molrx"
)

// Small molecules for the tests. Hydrogens are implicit unless a rule
// needs them as motif atoms.

type at struct {
	sym    string
	charge int
	h      int //implicit hydrogens
	lp     int
	se     int
}

type bd struct {
	i, j  int
	order float64
}

func build(name string, atoms []at, bonds []bd) *chem.Molecule {
	mol := chem.NewMolecule(name)
	for _, v := range atoms {
		a := chem.NewAtom(v.sym)
		a.Charge = v.charge
		a.ImplicitH = v.h
		i := mol.AddAtom(a)
		for k := 0; k < v.lp; k++ {
			mol.AddLonePair(i)
		}
		for k := 0; k < v.se; k++ {
			mol.AddSingleElectron(i)
		}
	}
	for _, b := range bonds {
		mol.AddBond(b.i, b.j, b.order)
	}
	return mol
}

// C=C
func ethene() *chem.Molecule {
	return build("ethene", []at{{sym: "C", h: 2}, {sym: "C", h: 2}}, []bd{{0, 1, 2}})
}

// CC
func ethane() *chem.Molecule {
	return build("ethane", []at{{sym: "C", h: 3}, {sym: "C", h: 3}}, []bd{{0, 1, 1}})
}

// C1CC1
func cyclopropane() *chem.Molecule {
	return build("cyclopropane",
		[]at{{sym: "C", h: 2}, {sym: "C", h: 2}, {sym: "C", h: 2}},
		[]bd{{0, 1, 1}, {1, 2, 1}, {2, 0, 1}})
}

// CO
func methanol() *chem.Molecule {
	return build("methanol", []at{{sym: "C", h: 3}, {sym: "O", h: 1, lp: 2}}, []bd{{0, 1, 1}})
}

// [O-]C=C
func enolate() *chem.Molecule {
	return build("enolate",
		[]at{{sym: "O", charge: -1, lp: 3}, {sym: "C", h: 1}, {sym: "C", h: 2}},
		[]bd{{0, 1, 1}, {1, 2, 2}})
}

// [CH2+]C=C
func allylCation() *chem.Molecule {
	return build("allyl cation",
		[]at{{sym: "C", charge: 1, h: 2}, {sym: "C", h: 1}, {sym: "C", h: 2}},
		[]bd{{0, 1, 1}, {1, 2, 2}})
}

// [CH2]C=C
func allylRadical() *chem.Molecule {
	return build("allyl radical",
		[]at{{sym: "C", h: 2, se: 1}, {sym: "C", h: 1}, {sym: "C", h: 2}},
		[]bd{{0, 1, 1}, {1, 2, 2}})
}

// NC=C
func vinylamine() *chem.Molecule {
	return build("vinylamine",
		[]at{{sym: "N", h: 2, lp: 1}, {sym: "C", h: 1}, {sym: "C", h: 2}},
		[]bd{{0, 1, 1}, {1, 2, 2}})
}

// CO[CH2+]
func methoxymethylCation() *chem.Molecule {
	return build("methoxymethyl cation",
		[]at{{sym: "C", h: 3}, {sym: "O", lp: 2}, {sym: "C", charge: 1, h: 2}},
		[]bd{{0, 1, 1}, {1, 2, 1}})
}

// CC#[O+]
func acylium() *chem.Molecule {
	return build("acetylium",
		[]at{{sym: "C", h: 3}, {sym: "C"}, {sym: "O", charge: 1, lp: 1}},
		[]bd{{0, 1, 1}, {1, 2, 3}})
}

// [CH2+]C[H], with one explicit hydrogen on the second carbon.
func ethylCation() *chem.Molecule {
	return build("ethyl cation",
		[]at{{sym: "C", charge: 1, h: 2}, {sym: "C", h: 2}, {sym: "H"}},
		[]bd{{0, 1, 1}, {1, 2, 1}})
}

// [CH2]CC, a propyl radical.
func propylRadical() *chem.Molecule {
	return build("propyl radical",
		[]at{{sym: "C", h: 2, se: 1}, {sym: "C", h: 2}, {sym: "C", h: 3}},
		[]bd{{0, 1, 1}, {1, 2, 1}})
}

// [CH2]CCC[H], a butyl radical with one explicit hydrogen on the last carbon.
func butylRadical() *chem.Molecule {
	return build("butyl radical",
		[]at{{sym: "C", h: 2, se: 1}, {sym: "C", h: 2}, {sym: "C", h: 2}, {sym: "C", h: 2}, {sym: "H"}},
		[]bd{{0, 1, 1}, {1, 2, 1}, {2, 3, 1}, {3, 4, 1}})
}

// [H]OC=C, vinyl alcohol with the hydroxyl hydrogen explicit.
func vinylAlcohol() *chem.Molecule {
	return build("vinyl alcohol",
		[]at{{sym: "H"}, {sym: "O", lp: 2}, {sym: "C", h: 1}, {sym: "C", h: 2}},
		[]bd{{0, 1, 1}, {1, 2, 1}, {2, 3, 2}})
}

// all returns one of each test molecule.
func all() []*chem.Molecule {
	return []*chem.Molecule{ethene(), ethane(), cyclopropane(), methanol(), enolate(), allylCation(),
		allylRadical(), vinylamine(), methoxymethylCation(), acylium(), ethylCation(), propylRadical(),
		butylRadical(), vinylAlcohol()}
}

// productAtom returns the product-side atom mapped to the ith atom of the reactant.
func productAtom(r *chem.Reaction, i int) *chem.Atom {
	p := r.MappedProduct(r.Reactants[0].Atom(i))
	if p == nil {
		return nil
	}
	return p.(*chem.Atom)
}

// productOf returns the product that holds o.
func productOf(r *chem.Reaction, o chem.ChemObject) *chem.Molecule {
	i := r.Products.Owner(o)
	if i < 0 {
		return nil
	}
	return r.Products[i]
}
