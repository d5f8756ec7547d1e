/*
 * rule_test.go, part of molrx.
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
	"errors"
	"strings"
	"testing"

	chem "github.com/molrx/molrx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initiate(Te *testing.T, name string, mol *chem.Molecule) *chem.ReactionSet {
	Te.Helper()
	rule, err := New(name)
	require.NoError(Te, err)
	set, err := rule.Initiate(chem.MoleculeSet{mol}, nil)
	require.NoError(Te, err)
	return set
}

func containerElectrons(ms ...*chem.Molecule) int {
	n := 0
	for _, m := range ms {
		for _, ec := range m.ElectronContainers() {
			n += ec.Electrons()
		}
	}
	return n
}

func snapshot(mol *chem.Molecule) string {
	return mol.String() + "|" + chem.FormulaOf(mol).String() + "|" +
		strings.Repeat("l", len(mol.LonePairs())) + strings.Repeat("s", mol.Unpaired())
}

// TestDisplacementOfCharge is the heterolytic cleavage of the pi bond of ethene.
func TestDisplacementOfCharge(Te *testing.T) {
	mol := ethene()
	set := initiate(Te, "HeterolyticCleavage", mol)
	require.Equal(Te, 2, set.Len())
	for i, charges := range [][2]int{{1, -1}, {-1, 1}} {
		r := set.Reaction(i)
		require.Len(Te, r.Products, 1)
		p := r.Products[0]
		assert.Equal(Te, 2, p.Len())
		require.Equal(Te, 1, p.NBonds())
		assert.True(Te, p.Bond(0).IsOrder(chem.OrderSingle))
		a0, a1 := productAtom(r, 0), productAtom(r, 1)
		assert.Equal(Te, charges[0], a0.Charge)
		assert.Equal(Te, charges[1], a1.Charge)
		neg := a1
		if charges[0] < 0 {
			neg = a0
		}
		assert.Equal(Te, 1, p.LonePairCount(neg))
		assert.Equal(Te, "urn:molrx:reaction:HeterolyticCleavage", r.Type)
	}
	//the reactant is untouched
	assert.True(Te, mol.Bond(0).IsOrder(chem.OrderDouble))
	assert.Equal(Te, 0, mol.Atom(0).Charge)
	assert.Empty(Te, mol.LonePairs())
}

func TestHomolysis(Te *testing.T) {
	mol := ethane()
	for _, o := range []chem.ChemObject{mol.Atom(0), mol.Atom(1), mol.Bond(0)} {
		require.False(Te, o.Flag(chem.ReactiveCenter))
	}
	set := initiate(Te, "HomolyticCleavage", mol)
	for _, o := range []chem.ChemObject{mol.Atom(0), mol.Atom(1), mol.Bond(0)} {
		assert.True(Te, o.Flag(chem.ReactiveCenter))
	}
	require.Equal(Te, 1, set.Len())
	r := set.Reaction(0)
	require.Len(Te, r.Products, 2)
	for _, p := range r.Products {
		assert.Equal(Te, 1, p.Len())
		assert.Equal(Te, 0, p.NBonds())
		assert.Equal(Te, 1, p.Unpaired())
	}
	//the broken bond is not mapped, the atoms are
	assert.Nil(Te, r.MappedProduct(mol.Bond(0)))
	assert.NotNil(Te, productAtom(r, 0))
	assert.NotNil(Te, productAtom(r, 1))
	assert.True(Te, productAtom(r, 1).Flag(chem.Mapped))
	assert.False(Te, mol.Atom(1).Flag(chem.Mapped))
}

func TestHomolysisInRing(Te *testing.T) {
	mol := cyclopropane()
	set := initiate(Te, "HomolyticCleavage", mol)
	require.Equal(Te, 3, set.Len())
	for _, r := range set.Reactions() {
		require.Len(Te, r.Products, 1)
		p := r.Products[0]
		assert.Equal(Te, 3, p.Len())
		assert.Equal(Te, 2, p.NBonds())
		assert.Equal(Te, 2, p.Unpaired())
	}
}

func TestContract(Te *testing.T) {
	for _, rule := range All() {
		for _, reactants := range []chem.MoleculeSet{nil, {}, {ethene(), ethane()}, {nil}} {
			set, err := rule.Initiate(reactants, nil)
			assert.Nil(Te, set)
			assert.True(Te, errors.Is(err, ErrContract), "%s: %v", rule.Name(), err)
		}
		mol := methanol()
		set, err := rule.Initiate(chem.MoleculeSet{mol}, chem.MoleculeSet{ethane()})
		assert.Nil(Te, set)
		require.True(Te, errors.Is(err, ErrContract), "%s: %v", rule.Name(), err)
		var rerr *Error
		require.True(Te, errors.As(err, &rerr))
		assert.Equal(Te, rule.Name(), rerr.Rule())
		//nothing was done to the reactant
		for _, at := range mol.Atoms() {
			assert.False(Te, at.Flag(chem.ReactiveCenter))
		}
	}
}

// TestInvariants runs every rule on every test molecule and checks what must
// hold for all of them.
func TestInvariants(Te *testing.T) {
	for _, rule := range All() {
		for _, mol := range all() {
			before := snapshot(mol)
			set, err := rule.Initiate(chem.MoleculeSet{mol}, nil)
			if errors.Is(err, ErrNoActiveCenter) {
				assert.Equal(Te, "ElectronImpactNBE", rule.Name())
				assert.Empty(Te, mol.LonePairs())
				continue
			}
			require.NoError(Te, err, "%s on %s", rule.Name(), mol.Name)
			assert.Equal(Te, before, snapshot(mol), "%s modified %s", rule.Name(), mol.Name)
			ionization := 0
			if strings.HasPrefix(rule.Name(), "ElectronImpact") {
				ionization = 1
			}
			for i, r := range set.Reactions() {
				require.Len(Te, r.Reactants, 1)
				assert.Same(Te, mol, r.Reactants[0])
				assert.Equal(Te, mol.Len(), r.Products.AtomCount(), "%s on %s", rule.Name(), mol.Name)
				assert.Equal(Te, mol.Charge()+ionization, r.Products.Charge(), "%s on %s", rule.Name(), mol.Name)
				assert.Equal(Te, containerElectrons(mol)-ionization, containerElectrons(r.Products...), "%s on %s", rule.Name(), mol.Name)
				for _, p := range r.Products {
					assert.NoError(Te, p.Validate())
					for _, at := range p.Atoms() {
						assert.False(Te, mol.Contains(at), "products must not share atoms with the reactant")
					}
				}
				assert.NotEmpty(Te, r.Mappings)
				for _, m := range r.Mappings {
					assert.Equal(Te, 0, r.Reactants.Owner(m.Reactant))
					owners := 0
					for _, p := range r.Products {
						if p.Holds(m.Product) {
							owners++
						}
					}
					assert.Equal(Te, 1, owners)
					for j, other := range set.Reactions() {
						if j != i {
							assert.Equal(Te, -1, other.Products.Owner(m.Product))
						}
					}
				}
			}
		}
	}
}

// flagBits returns the flags of every atom, then of every electron container.
func flagBits(mol *chem.Molecule) []chem.Flag {
	var ret []chem.Flag
	for _, at := range mol.Atoms() {
		ret = append(ret, at.FlagBits())
	}
	for _, o := range mol.ElectronContainers() {
		ret = append(ret, o.FlagBits())
	}
	return ret
}

func TestDetectionIdempotent(Te *testing.T) {
	for _, rule := range All() {
		for _, mol := range all() {
			n := rule.DetectActiveCenters(mol)
			flags := flagBits(mol)
			assert.Equal(Te, n, rule.DetectActiveCenters(mol), "%s on %s", rule.Name(), mol.Name)
			assert.Equal(Te, flags, flagBits(mol), "%s on %s", rule.Name(), mol.Name)
		}
	}
}

func TestActiveCentersSet(Te *testing.T) {
	mol := ethane()
	rule := NewHomolyticCleavage(WithActiveCenters(true))
	set, err := rule.Initiate(chem.MoleculeSet{mol}, nil)
	require.NoError(Te, err)
	assert.Equal(Te, 0, set.Len())
	assert.False(Te, mol.Atom(0).Flag(chem.ReactiveCenter))

	//a center needs all its atoms and bonds flagged
	mol.Atom(0).SetFlag(chem.ReactiveCenter, true)
	mol.Atom(1).SetFlag(chem.ReactiveCenter, true)
	set, err = rule.Initiate(chem.MoleculeSet{mol}, nil)
	require.NoError(Te, err)
	assert.Equal(Te, 0, set.Len())

	mol.Bond(0).SetFlag(chem.ReactiveCenter, true)
	set, err = rule.Initiate(chem.MoleculeSet{mol}, nil)
	require.NoError(Te, err)
	assert.Equal(Te, 1, set.Len())
}

func TestParameters(Te *testing.T) {
	rule := NewHeterolyticCleavage()
	assert.Equal(Te, []interface{}{false}, rule.Parameters())
	require.NoError(Te, rule.SetParameters(true))
	assert.Equal(Te, []interface{}{true}, rule.Parameters())
	for _, bad := range [][]interface{}{nil, {true, false}, {"yes"}, {1}} {
		err := rule.SetParameters(bad...)
		assert.True(Te, errors.Is(err, ErrContract), "%v", bad)
	}
	//failed calls don't change the parameter
	assert.Equal(Te, []interface{}{true}, rule.Parameters())
}

// TestNoActiveCenter documents that the rules don't agree on whether a missing
// active center is an error: ElectronImpactNBE fails on a molecule without
// lone pairs, while every rule, NBE included, silently finds nothing in a
// charged molecule.
func TestNoActiveCenter(Te *testing.T) {
	_, err := NewElectronImpactNBE().Initiate(chem.MoleculeSet{ethane()}, nil)
	assert.True(Te, errors.Is(err, ErrNoActiveCenter))
	assert.False(Te, errors.Is(err, ErrContract))

	set, err := NewElectronImpactNBE().Initiate(chem.MoleculeSet{enolate()}, nil)
	require.NoError(Te, err)
	assert.Equal(Te, 0, set.Len())

	set, err = NewElectronImpactPDB().Initiate(chem.MoleculeSet{ethane()}, nil)
	require.NoError(Te, err)
	assert.Equal(Te, 0, set.Len())

	set, err = NewElectronImpactPDB().Initiate(chem.MoleculeSet{allylCation()}, nil)
	require.NoError(Te, err)
	assert.Equal(Te, 0, set.Len())
}

func TestCloneFailure(Te *testing.T) {
	mol := ethane()
	stray := chem.NewAtom("C")
	//the bond now points to an atom outside the molecule
	mol.Bond(0).Atoms[1] = stray
	for _, o := range []chem.ChemObject{mol.Atom(0), mol.Atom(1), mol.Bond(0), stray} {
		o.SetFlag(chem.ReactiveCenter, true)
	}
	rule := NewHomolyticCleavage(WithActiveCenters(true))
	_, err := rule.Initiate(chem.MoleculeSet{mol}, nil)
	require.Error(Te, err)
	assert.True(Te, errors.Is(err, ErrClone))
	assert.True(Te, errors.Is(err, chem.ErrNotMember))
}
