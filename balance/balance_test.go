/*
 * balance_test.go, part of molrx.
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

package balance

import (
	"testing"

	chem "github.com/molrx/molrx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// mol builds a molecule of unbonded heavy atoms with the given implicit hydrogens.
// Bonds don't matter to the balancer.
func mol(name string, charge int, atoms ...interface{}) *chem.Molecule {
	m := chem.NewMolecule(name)
	for i := 0; i < len(atoms); i += 2 {
		at := chem.NewAtom(atoms[i].(string))
		at.ImplicitH = atoms[i+1].(int)
		m.AddAtom(at)
	}
	if charge != 0 {
		m.Atom(0).Charge = charge
	}
	return m
}

func TestAmmonia(Te *testing.T) {
	r := chem.NewReaction("test")
	r.AddReactant(mol("N2", 0, "N", 0, "N", 0))
	r.AddReactant(Hydrogen())
	r.AddProduct(mol("NH3", 0, "N", 3))
	B := &Balancer{Logger: zaptest.NewLogger(Te)}
	require.NoError(Te, B.Balance(r))
	assert.Equal(Te, []int{1, 3}, r.ReactantCoefficients)
	assert.Equal(Te, []int{2}, r.ProductCoefficients)
	assert.Len(Te, r.Reactants, 2)
	assert.Len(Te, r.Products, 1)
	assert.True(Te, Difference(r).IsZero())
}

func TestAmmoniaHydrogenAgent(Te *testing.T) {
	//the hydrogen comes as an agent, appended after the coefficient search
	r := chem.NewReaction("test")
	r.AddReactant(mol("N2", 0, "N", 0, "N", 0))
	r.AddProduct(mol("NH3", 0, "N", 3))
	require.NoError(Te, Balance(r))
	require.Len(Te, r.Reactants, 2)
	assert.Equal(Te, "H2", chem.FormulaOf(r.Reactants[1]).String())
	assert.Equal(Te, []int{1, 3}, r.ReactantCoefficients)
	assert.Equal(Te, []int{2}, r.ProductCoefficients)
	assert.True(Te, Difference(r).IsZero())
}

func TestMethaneCoupling(Te *testing.T) {
	r := chem.NewReaction("test")
	r.AddReactant(mol("CH4", 0, "C", 4))
	r.AddProduct(mol("C2H6", 0, "C", 3, "C", 3))
	require.NoError(Te, Balance(r))
	assert.Equal(Te, []int{2}, r.ReactantCoefficients)
	require.Len(Te, r.Products, 2)
	assert.Equal(Te, "H2", chem.FormulaOf(r.Products[1]).String())
	assert.Equal(Te, 1, r.ProductCoefficient(1))
	assert.True(Te, Difference(r).IsZero())
}

func TestAgents(Te *testing.T) {
	//ethyl cation to ethene releases a proton
	r := chem.NewReaction("test")
	r.AddReactant(mol("C2H5+", 1, "C", 2, "C", 3))
	r.AddProduct(mol("C2H4", 0, "C", 2, "C", 2))
	require.NoError(Te, Balance(r))
	require.Len(Te, r.Products, 2)
	assert.Equal(Te, "H+", chem.FormulaOf(r.Products[1]).String())
	assert.True(Te, Difference(r).IsZero())

	//ethanol to acetaldehyde releases H2
	r = chem.NewReaction("test")
	r.AddReactant(mol("ethanol", 0, "C", 3, "C", 2, "O", 1))
	r.AddProduct(mol("acetaldehyde", 0, "C", 3, "C", 1, "O", 0))
	require.NoError(Te, Balance(r))
	require.Len(Te, r.Products, 2)
	assert.Equal(Te, "H2", chem.FormulaOf(r.Products[1]).String())

	//ethene to ethanol takes water
	r = chem.NewReaction("test")
	r.AddReactant(mol("C2H4", 0, "C", 2, "C", 2))
	r.AddProduct(mol("ethanol", 0, "C", 3, "C", 2, "O", 1))
	require.NoError(Te, Balance(r))
	require.Len(Te, r.Reactants, 2)
	assert.Equal(Te, "H2O", chem.FormulaOf(r.Reactants[1]).String())
	assert.Len(Te, r.Products, 1)
	assert.True(Te, Difference(r).IsZero())
}

func TestBalanced(Te *testing.T) {
	r := chem.NewReaction("test")
	r.AddReactant(Water())
	r.AddProduct(Water())
	require.NoError(Te, Balance(r))
	assert.Len(Te, r.Reactants, 1)
	assert.Len(Te, r.Products, 1)
	assert.Equal(Te, []int{1}, r.ReactantCoefficients)
}

func TestUnbalanceable(Te *testing.T) {
	r := chem.NewReaction("test")
	r.AddReactant(mol("N2", 0, "N", 0, "N", 0))
	r.AddProduct(mol("S", 0, "S", 0))
	err := Balance(r)
	assert.ErrorIs(Te, err, ErrUnbalanceable)
	//nothing changed
	assert.Len(Te, r.Products, 1)
	assert.Equal(Te, []int{1}, r.ReactantCoefficients)

	//a lone hydrogen atom can't be made of H2, H2O and H+
	r = chem.NewReaction("test")
	r.AddReactant(mol("CH3", 0, "C", 3))
	r.AddProduct(mol("CH4", 0, "C", 4))
	assert.ErrorIs(Te, Balance(r), ErrUnbalanceable)

	r = chem.NewReaction("test")
	for i := 0; i < 9; i++ {
		r.AddReactant(mol("C", 0, "C", 0))
	}
	r.AddProduct(mol("N", 0, "N", 0))
	B := &Balancer{MaxCoefficient: 5}
	assert.ErrorIs(Te, B.Balance(r), ErrUnbalanceable)
}
