/*
 * edit.go, part of molrx.
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

	chem "github.com/molrx/molrx"
)

type opKind int

const (
	opOrder opKind = iota
	opCharge
	opLonePair
	opElectron
	opForm
)

// Op is one step of an edit. Positions refer to the atoms (or bonds) of a Match.
type Op struct {
	kind  opKind
	pos   int
	to    int
	delta int
	order float64
}

func (o Op) String() string {
	switch o.kind {
	case opOrder:
		return fmt.Sprintf("bond%d%+d", o.pos, o.delta)
	case opCharge:
		return fmt.Sprintf("charge%d%+d", o.pos, o.delta)
	case opLonePair:
		return fmt.Sprintf("lp%d%+d", o.pos, o.delta)
	case opElectron:
		return fmt.Sprintf("se%d%+d", o.pos, o.delta)
	}
	return fmt.Sprintf("form%d-%d:%g", o.pos, o.to, o.order)
}

// Order changes the order of the motif bond at position bond by delta (+1 or -1).
// A bond whose order falls below 1 is removed from the product.
func Order(bond, delta int) Op {
	return Op{kind: opOrder, pos: bond, delta: delta}
}

// Charge changes the formal charge of the motif atom at position atom by delta.
func Charge(atom, delta int) Op {
	return Op{kind: opCharge, pos: atom, delta: delta}
}

// GainLonePair adds a lone pair to the motif atom at position atom.
func GainLonePair(atom int) Op {
	return Op{kind: opLonePair, pos: atom, delta: 1}
}

// LoseLonePair removes one lone pair from the motif atom at position atom.
func LoseLonePair(atom int) Op {
	return Op{kind: opLonePair, pos: atom, delta: -1}
}

// GainElectron adds an unpaired electron to the motif atom at position atom.
func GainElectron(atom int) Op {
	return Op{kind: opElectron, pos: atom, delta: 1}
}

// LoseElectron removes one unpaired electron from the motif atom at position atom.
func LoseElectron(atom int) Op {
	return Op{kind: opElectron, pos: atom, delta: -1}
}

// Form creates a bond of the given order between the motif atoms at positions a1 and a2.
func Form(a1, a2 int, order float64) Op {
	return Op{kind: opForm, pos: a1, to: a2, order: order}
}

// Edit is the list of operations that turn a reactant into a product,
// applied in order.
type Edit []Op

// outcome is what an edit did to a clone.
type outcome struct {
	removed map[*chem.Bond]bool //keys are reactant-side bonds
	formed  []*chem.Bond
}

// apply performs the edit on clone. m is a match on the original molecule,
// and cm takes the original's objects to the clone's.
func (E Edit) apply(clone *chem.Molecule, cm *chem.CloneMap, m Match) (*outcome, error) {
	out := &outcome{removed: make(map[*chem.Bond]bool)}
	for _, op := range E {
		switch op.kind {
		case opOrder:
			orig := m.Bonds[op.pos]
			if out.removed[orig] {
				return nil, fmt.Errorf("op %s: bond already removed", op)
			}
			b := cm.Bond(orig)
			b.Order += float64(op.delta)
			if b.Order < chem.OrderSingle-1e-6 {
				if err := clone.RemoveBond(b); err != nil {
					return nil, err
				}
				out.removed[orig] = true
			}
		case opCharge:
			cm.Atom(m.Atoms[op.pos]).Charge += op.delta
		case opLonePair:
			at := cm.Atom(m.Atoms[op.pos])
			if op.delta > 0 {
				clone.AddLonePair(clone.AtomIndex(at))
				continue
			}
			lps := clone.ConnectedLonePairs(at)
			if len(lps) == 0 {
				return nil, fmt.Errorf("op %s: atom %s has no lone pair", op, at)
			}
			if err := clone.RemoveLonePair(lps[len(lps)-1]); err != nil {
				return nil, err
			}
		case opElectron:
			at := cm.Atom(m.Atoms[op.pos])
			if op.delta > 0 {
				clone.AddSingleElectron(clone.AtomIndex(at))
				continue
			}
			ses := clone.ConnectedSingleElectrons(at)
			if len(ses) == 0 {
				return nil, fmt.Errorf("op %s: atom %s has no unpaired electron", op, at)
			}
			if err := clone.RemoveSingleElectron(ses[len(ses)-1]); err != nil {
				return nil, err
			}
		case opForm:
			b, err := clone.Connect(cm.Atom(m.Atoms[op.pos]), cm.Atom(m.Atoms[op.to]), op.order)
			if err != nil {
				return nil, err
			}
			out.formed = append(out.formed, b)
		}
	}
	return out, nil
}

// check panics if some op of the edit points outside a motif with
// the given number of atoms.
func (E Edit) check(natoms int) {
	for _, op := range E {
		limit := natoms
		if op.kind == opOrder {
			limit = natoms - 1
		}
		if op.pos < 0 || op.pos >= limit || (op.kind == opForm && (op.to < 0 || op.to >= natoms)) {
			panic(fmt.Sprintf("Edit: op %s out of the motif", op))
		}
	}
}
