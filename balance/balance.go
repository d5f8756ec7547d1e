/*
 * balance.go, part of molrx.
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

// Package balance adjusts the stoichiometry of reactions so that both sides
// have the same atoms and charge.
package balance

import (
	"errors"
	"fmt"
	"math"

	chem "github.com/molrx/molrx"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat/combin"
)

// ErrUnbalanceable is returned (wrapped) when no balanced form of the reaction is found.
var ErrUnbalanceable = errors.New("reaction can't be balanced")

// DefaultMaxCoefficient is the largest coefficient the search tries if none is set.
const DefaultMaxCoefficient = 5

// maxCandidates bounds the size of the coefficient search.
const maxCandidates = 1 << 20

// Balancer balances reactions. The zero value is ready to use.
type Balancer struct {
	//MaxCoefficient is the largest stoichiometric coefficient tried for each molecule.
	MaxCoefficient int
	Logger         *zap.Logger
}

// Balance sets the coefficients of the reactants and products of r, and adds water,
// protons and molecular hydrogen to either side, so that every element and
// the total charge are the same on both sides. Coefficients are only searched
// if some element other than H and O is unbalanced. Balance fails with
// ErrUnbalanceable if no combination of coefficients and agents works, in which
// case r is left as it was.
func (B *Balancer) Balance(r *chem.Reaction) error {
	log := B.Logger
	if log == nil {
		log = zap.NewNop()
	}
	max := B.MaxCoefficient
	if max <= 0 {
		max = DefaultMaxCoefficient
	}
	rf := formulas(r.Reactants)
	pf := formulas(r.Products)
	rc := coefficients(len(rf), r.ReactantCoefficient)
	pc := coefficients(len(pf), r.ProductCoefficient)
	D := difference(rf, rc, pf, pc)
	if !heavyBalanced(D) {
		var err error
		rc, pc, err = search(rf, pf, max)
		if err != nil {
			return chem.NewError(fmt.Sprintf("reaction %s", r.ID), err, "Balance")
		}
		D = difference(rf, rc, pf, pc)
		log.Debug("coefficients found", zap.Ints("reactants", rc), zap.Ints("products", pc))
	}
	agents, err := agentsFor(D)
	if err != nil {
		return chem.NewError(fmt.Sprintf("reaction %s: residual %s", r.ID, D), err, "Balance")
	}
	r.ReactantCoefficients = rc
	r.ProductCoefficients = pc
	for _, a := range agents {
		if a.reactant {
			r.AddReactantN(a.mol(), a.n)
		} else {
			r.AddProductN(a.mol(), a.n)
		}
		log.Debug("balancing agent added", zap.String("agent", a.name), zap.Int("n", a.n), zap.Bool("reactant", a.reactant))
	}
	return nil
}

// Balance balances r with the default Balancer.
func Balance(r *chem.Reaction) error {
	B := &Balancer{}
	return B.Balance(r)
}

// Difference returns the formula of the products minus the formula of the
// reactants, coefficients included. It is zero for a balanced reaction.
func Difference(r *chem.Reaction) *chem.Formula {
	rf := formulas(r.Reactants)
	pf := formulas(r.Products)
	return difference(rf, coefficients(len(rf), r.ReactantCoefficient),
		pf, coefficients(len(pf), r.ProductCoefficient))
}

func formulas(ms chem.MoleculeSet) []*chem.Formula {
	ret := make([]*chem.Formula, len(ms))
	for i, m := range ms {
		ret[i] = chem.FormulaOf(m)
	}
	return ret
}

func coefficients(n int, get func(int) int) []int {
	ret := make([]int, n)
	for i := range ret {
		ret[i] = get(i)
	}
	return ret
}

func difference(rf []*chem.Formula, rc []int, pf []*chem.Formula, pc []int) *chem.Formula {
	D := chem.NewFormula()
	for i, f := range pf {
		D.Add(f, pc[i])
	}
	for i, f := range rf {
		D.Add(f, -rc[i])
	}
	return D
}

// heavyBalanced is true if only H, O and the charge are unbalanced in D.
func heavyBalanced(D *chem.Formula) bool {
	for _, e := range D.Elements() {
		if e != "H" && e != "O" {
			return false
		}
	}
	return true
}

// residual is how far D is from balanced using only agents. Any residual
// is fixable with agents, but smaller ones need fewer.
func residual(D *chem.Formula) int {
	return abs(D.Count("H")) + abs(D.Count("O")) + abs(D.Charge)
}

// search tries every combination of coefficients from 1 to max and returns
// the one that balances every element but H and O with the smallest residual,
// and then the smallest sum of coefficients. The first combination, in
// lexicographic order, wins ties.
func search(rf, pf []*chem.Formula, max int) ([]int, []int, error) {
	n := len(rf) + len(pf)
	if n == 0 {
		return nil, nil, ErrUnbalanceable
	}
	if math.Pow(float64(max), float64(n)) > maxCandidates {
		return nil, nil, fmt.Errorf("%w: too many molecules (%d) for the coefficient search", ErrUnbalanceable, n)
	}
	lens := make([]int, n)
	for i := range lens {
		lens[i] = max
	}
	var best []int
	bestres, bestsum := math.MaxInt, math.MaxInt
	gen := combin.NewCartesianGenerator(lens)
	prod := make([]int, n)
	coefs := make([]int, n)
	for gen.Next() {
		gen.Product(prod)
		sum := 0
		for i, v := range prod {
			coefs[i] = v + 1
			sum += v + 1
		}
		D := difference(rf, coefs[:len(rf)], pf, coefs[len(rf):])
		if !heavyBalanced(D) {
			continue
		}
		res := residual(D)
		if res < bestres || (res == bestres && sum < bestsum) {
			best = append(best[:0], coefs...)
			bestres, bestsum = res, sum
		}
	}
	if best == nil {
		return nil, nil, ErrUnbalanceable
	}
	//the halves must not share storage, agents get appended to the reactant side.
	return append([]int(nil), best[:len(rf)]...), append([]int(nil), best[len(rf):]...), nil
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
