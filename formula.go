/*
 * formula.go, part of molrx.
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
	"fmt"
	"sort"
	"strings"
)

// Formula is a molecular formula: element counts plus the total charge.
// Implicit hydrogens are counted as H.
type Formula struct {
	counts map[string]int
	Charge int
}

// NewFormula returns an empty formula.
func NewFormula() *Formula {
	return &Formula{counts: make(map[string]int)}
}

// FormulaOf returns the formula of the atoms in mol.
func FormulaOf(mol Atomer) *Formula {
	F := NewFormula()
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		F.counts[at.Symbol]++
		if at.ImplicitH > 0 {
			F.counts["H"] += at.ImplicitH
		}
		F.Charge += at.Charge
	}
	return F
}

// Count returns the number of atoms of the element symbol.
func (F *Formula) Count(symbol string) int {
	return F.counts[symbol]
}

// AddCount adds n atoms of symbol (n can be negative).
func (F *Formula) AddCount(symbol string, n int) {
	F.counts[symbol] += n
	if F.counts[symbol] == 0 {
		delete(F.counts, symbol)
	}
}

// Add adds n times the formula O to F, in place, and returns F.
func (F *Formula) Add(O *Formula, n int) *Formula {
	for k, v := range O.counts {
		F.AddCount(k, v*n)
	}
	F.Charge += O.Charge * n
	return F
}

// Copy returns a copy of F.
func (F *Formula) Copy() *Formula {
	return NewFormula().Add(F, 1)
}

// IsZero returns true if all the counts and the charge are 0.
// Meaningful for formula differences.
func (F *Formula) IsZero() bool {
	return len(F.counts) == 0 && F.Charge == 0
}

// Elements returns the element symbols present, in Hill order:
// C first, then H, then the rest alphabetically. If there is no carbon,
// everything is alphabetical.
func (F *Formula) Elements() []string {
	ret := make([]string, 0, len(F.counts))
	for k := range F.counts {
		ret = append(ret, k)
	}
	_, carbon := F.counts["C"]
	rank := func(s string) int {
		if !carbon {
			return 2
		}
		switch s {
		case "C":
			return 0
		case "H":
			return 1
		}
		return 2
	}
	sort.Slice(ret, func(i, j int) bool {
		ri, rj := rank(ret[i]), rank(ret[j])
		if ri != rj {
			return ri < rj
		}
		return ret[i] < ret[j]
	})
	return ret
}

// Mass returns the nominal mass of the formula. It returns an error
// if some element is not in the mass table.
func (F *Formula) Mass() (float64, error) {
	var m float64
	for k, v := range F.counts {
		sm, ok := symbolMass[k]
		if !ok {
			return 0, NewError(fmt.Sprintf("no mass for element %s", k), nil, "Mass")
		}
		m += sm * float64(v)
	}
	return m, nil
}

// String returns the formula in Hill order, i.e. "C2H6O", with the charge appended
// if not zero, i.e. "H3O+".
func (F *Formula) String() string {
	var b strings.Builder
	for _, k := range F.Elements() {
		b.WriteString(k)
		if n := F.counts[k]; n != 1 {
			fmt.Fprintf(&b, "%d", n)
		}
	}
	switch {
	case F.Charge == 1:
		b.WriteString("+")
	case F.Charge == -1:
		b.WriteString("-")
	case F.Charge > 1:
		fmt.Fprintf(&b, "%d+", F.Charge)
	case F.Charge < -1:
		fmt.Fprintf(&b, "%d-", -F.Charge)
	}
	return b.String()
}
