/*
 * molecule_test.go, part of molrx.
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

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// acetaldehyde returns CC=O with implicit hydrogens and two lone pairs on the oxygen.
func acetaldehyde() *Molecule {
	mol := NewMolecule("acetaldehyde")
	c1 := NewAtom("C")
	c1.ImplicitH = 3
	c2 := NewAtom("C")
	c2.ImplicitH = 1
	mol.AddAtom(c1)
	mol.AddAtom(c2)
	mol.AddAtom(NewAtom("O"))
	mol.AddBond(0, 1, OrderSingle)
	mol.AddBond(1, 2, OrderDouble)
	mol.AddLonePair(2)
	mol.AddLonePair(2)
	return mol
}

func TestMoleculeQueries(Te *testing.T) {
	mol := acetaldehyde()
	c1, c2, o := mol.Atom(0), mol.Atom(1), mol.Atom(2)
	assert.Equal(Te, 3, mol.Len())
	assert.Equal(Te, 2, mol.NBonds())
	assert.Equal(Te, 2, mol.AtomIndex(o))
	assert.Equal(Te, -1, mol.AtomIndex(NewAtom("O")))
	assert.Equal(Te, []*Atom{c1, o}, mol.ConnectedAtoms(c2))
	assert.Len(Te, mol.ConnectedBonds(c2), 2)
	assert.Same(Te, mol.Bond(1), mol.BondBetween(o, c2))
	assert.Nil(Te, mol.BondBetween(c1, o))
	assert.Same(Te, o, mol.Bond(1).Cross(c2))
	assert.Same(Te, c2, mol.Bond(1).Begin())
	assert.Same(Te, o, mol.Bond(1).End())
	assert.Equal(Te, "C.C.O 0-1:1 1-2:2", mol.String())
	assert.Equal(Te, 2, mol.LonePairCount(o))
	assert.Equal(Te, 0, mol.LonePairCount(c1))
	assert.InDelta(Te, 3.0, mol.BondOrderSum(c2), 1e-9)
	assert.Equal(Te, 4, mol.Bond(1).Electrons())
	assert.Len(Te, mol.ElectronContainers(), 4)
	assert.NoError(Te, mol.Validate())
	assert.Panics(Te, func() { mol.Atom(3) })
	assert.Panics(Te, func() { mol.Bond(0).Cross(o) })
}

func TestMoleculeEdits(Te *testing.T) {
	mol := acetaldehyde()
	o := mol.Atom(2)
	lps := mol.ConnectedLonePairs(o)
	require.NoError(Te, mol.RemoveLonePair(lps[0]))
	assert.Equal(Te, 1, mol.LonePairCount(o))
	err := mol.RemoveLonePair(lps[0])
	assert.True(Te, errors.Is(err, ErrNotMember))

	mol.AddSingleElectron(0)
	assert.Equal(Te, 1, mol.Unpaired())
	require.NoError(Te, mol.RemoveSingleElectron(mol.SingleElectrons()[0]))
	assert.Equal(Te, 0, mol.Unpaired())

	b := mol.Bond(0)
	require.NoError(Te, mol.RemoveBond(b))
	assert.Equal(Te, 1, mol.NBonds())
	assert.Equal(Te, -1, mol.BondIndex(b))
	nb, err := mol.Connect(mol.Atom(0), o, OrderSingle)
	require.NoError(Te, err)
	assert.Equal(Te, 1, mol.BondIndex(nb))

	_, err = mol.Connect(mol.Atom(0), NewAtom("N"), OrderSingle)
	assert.True(Te, errors.Is(err, ErrNotMember))
	var cerr Error
	require.True(Te, errors.As(err, &cerr))
	assert.Contains(Te, cerr.Decorate(""), "Connect")
}

func TestValidate(Te *testing.T) {
	mol := acetaldehyde()
	mol.Bond(0).Atoms[0] = NewAtom("C")
	assert.True(Te, errors.Is(mol.Validate(), ErrNotMember))

	mol = acetaldehyde()
	mol.AddAtom(mol.Atom(0))
	assert.Error(Te, mol.Validate())
}

func TestFlags(Te *testing.T) {
	mol := acetaldehyde()
	at := mol.Atom(1)
	at.SetFlag(ReactiveCenter, true)
	at.SetFlag(Mapped, true)
	assert.True(Te, at.Flag(ReactiveCenter|Mapped))
	assert.Equal(Te, "reactive|mapped", at.FlagBits().String())
	at.SetFlag(Mapped, false)
	assert.False(Te, at.Flag(Mapped))
	assert.Equal(Te, ReactiveCenter, at.FlagBits())
	mol.Bond(0).SetFlag(ReactiveCenter, true)
	mol.ResetFlags(ReactiveCenter)
	assert.False(Te, at.Flag(ReactiveCenter))
	assert.False(Te, mol.Bond(0).Flag(ReactiveCenter))
}

func TestMoleculeSet(Te *testing.T) {
	a, b := acetaldehyde(), acetaldehyde()
	b.Atom(0).Charge = 1
	set := MoleculeSet{a, b}
	assert.Equal(Te, 6, set.AtomCount())
	assert.Equal(Te, 1, set.Charge())
	assert.Equal(Te, 1, set.Owner(b.Bond(1)))
	assert.Equal(Te, 0, set.Owner(a.LonePairs()[0]))
	assert.Equal(Te, -1, set.Owner(NewAtom("C")))
}

func TestReaction(Te *testing.T) {
	a := acetaldehyde()
	r := NewReaction("test")
	r.AddReactant(a)
	r.AddProductN(acetaldehyde(), 2)
	r.AddMapping(a.Atom(0), r.Products[0].Atom(0))
	assert.NotEmpty(Te, r.ID)
	assert.NotEqual(Te, r.ID, NewReaction("test").ID)
	assert.Equal(Te, 1, r.ReactantCoefficient(0))
	assert.Equal(Te, 2, r.ProductCoefficient(0))
	assert.Equal(Te, 1, r.ProductCoefficient(5))
	assert.Equal(Te, r.Products[0].Atom(0), r.MappedProduct(a.Atom(0)))
	assert.Nil(Te, r.MappedProduct(a.Atom(1)))

	set := NewReactionSet()
	set.Add(r)
	other := NewReactionSet()
	other.Add(NewReaction("other"))
	set.Merge(other)
	set.Merge(nil)
	assert.Equal(Te, 2, set.Len())
	assert.Equal(Te, "other", set.Reaction(1).Type)
	assert.Panics(Te, func() { set.Reaction(2) })
}
