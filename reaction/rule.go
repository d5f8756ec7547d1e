/*
 * rule.go, part of molrx.
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
	"github.com/molrx/molrx/chemgraph"
	"go.uber.org/zap"
)

// URIBase prefixes the name of a mechanism to build the identifier of its rule.
const URIBase = "urn:molrx:reaction:"

// Mechanism describes one reaction type: the motif that defines its active
// centers and the edits applied to each instance of it. Each edit gives one
// Reaction per match.
type Mechanism struct {
	Name        string
	Description string
	Motif       Motif
	Edits       []Edit

	//Precondition, if not nil, must hold for the molecule for any
	//active center to be found. A failed precondition is not an error.
	Precondition func(mol *chem.Molecule) bool

	//RequireLonePairs makes Initiate fail with ErrNoActiveCenter
	//if the reactant has no lone pairs at all.
	RequireLonePairs bool
}

// Rule applies a Mechanism to molecules. A Rule has one parameter: whether the
// active centers of the reactant have already been flagged by the caller.
// A Rule must not be run concurrently on the same reactant.
type Rule struct {
	mech             *Mechanism
	activeCentersSet bool
	log              *zap.Logger
}

// Option configures a Rule.
type Option func(*Rule)

// WithLogger sets the logger of the rule. The default logger discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(R *Rule) {
		if l != nil {
			R.log = l
		}
	}
}

// WithActiveCenters sets the only parameter of the rule.
func WithActiveCenters(set bool) Option {
	return func(R *Rule) { R.activeCentersSet = set }
}

// NewRule returns a rule for the mechanism m. Panics if the edits of m don't fit its motif.
func NewRule(m *Mechanism, opts ...Option) *Rule {
	for _, e := range m.Edits {
		e.check(len(m.Motif.Atoms))
	}
	R := &Rule{mech: m, log: zap.NewNop()}
	for _, o := range opts {
		o(R)
	}
	R.log = R.log.With(zap.String("rule", m.Name))
	return R
}

// Name returns the name of the mechanism.
func (R *Rule) Name() string {
	return R.mech.Name
}

// ID returns the URI-style identifier of the rule.
func (R *Rule) ID() string {
	return URIBase + R.mech.Name
}

// Mechanism returns the mechanism the rule applies.
func (R *Rule) Mechanism() *Mechanism {
	return R.mech
}

// Parameters returns the parameters of the rule: one bool, true if the
// active centers are taken as already flagged.
func (R *Rule) Parameters() []interface{} {
	return []interface{}{R.activeCentersSet}
}

// SetParameters sets the parameters of the rule. Exactly one bool is accepted.
func (R *Rule) SetParameters(params ...interface{}) error {
	if len(params) != 1 {
		return newError(R.mech.Name, ErrContract, fmt.Sprintf("only one parameter allowed, got %d", len(params)), nil, "SetParameters")
	}
	set, ok := params[0].(bool)
	if !ok {
		return newError(R.mech.Name, ErrContract, fmt.Sprintf("the parameter must be a bool, got %T", params[0]), nil, "SetParameters")
	}
	R.activeCentersSet = set
	return nil
}

// DetectActiveCenters flags, with chem.ReactiveCenter, every atom and bond of mol that
// takes part in at least one instance of the motif of the rule. It returns the
// number of instances. Flags already set are left alone.
func (R *Rule) DetectActiveCenters(mol *chem.Molecule) int {
	if R.mech.Precondition != nil && !R.mech.Precondition(mol) {
		R.log.Debug("precondition not met, no active centers")
		return 0
	}
	n := R.mech.Motif.Mark(mol)
	R.log.Debug("active centers detected", zap.Int("matches", n))
	return n
}

// Initiate applies the rule to the only molecule in reactants. agents must be empty.
// Each match of the motif on the flagged atoms and bonds of the reactant, and each
// edit of the mechanism, gives one Reaction, whose products are the fragments
// of an edited copy of the reactant. The reactant is never modified, except for the
// ReactiveCenter flags set when the active centers are not marked beforehand.
func (R *Rule) Initiate(reactants, agents chem.MoleculeSet) (*chem.ReactionSet, error) {
	if len(reactants) != 1 || reactants[0] == nil {
		return nil, newError(R.mech.Name, ErrContract, fmt.Sprintf("exactly one reactant is accepted, got %d", len(reactants)), nil, "Initiate")
	}
	if len(agents) != 0 {
		return nil, newError(R.mech.Name, ErrContract, "agents are not accepted", nil, "Initiate")
	}
	mol := reactants[0]
	if R.mech.RequireLonePairs && len(mol.LonePairs()) == 0 {
		return nil, newError(R.mech.Name, ErrNoActiveCenter, "the reactant has no lone pairs", nil, "Initiate")
	}
	if !R.activeCentersSet {
		R.DetectActiveCenters(mol)
	}
	set := chem.NewReactionSet()
	if R.mech.Precondition != nil && !R.mech.Precondition(mol) {
		return set, nil
	}
	for _, m := range R.mech.Motif.Find(mol, true) {
		for i, e := range R.mech.Edits {
			r, err := R.react(mol, m, e)
			if err != nil {
				return nil, errDecorate(err, fmt.Sprintf("Initiate: edit %d", i))
			}
			set.Add(r)
		}
	}
	R.log.Debug("reactions generated", zap.Int("reactions", set.Len()))
	return set, nil
}

// react applies one edit to a copy of mol at the match m and builds the Reaction.
func (R *Rule) react(mol *chem.Molecule, m Match, e Edit) (*chem.Reaction, error) {
	clone, cm, err := mol.Clone()
	if err != nil {
		return nil, newError(R.mech.Name, ErrClone, "", err, "react")
	}
	out, err := e.apply(clone, cm, m)
	if err != nil {
		return nil, newError(R.mech.Name, ErrEdit, "", err, "react")
	}
	products := chem.MoleculeSet{clone}
	if len(out.removed) > 0 {
		products, err = chemgraph.Partition(clone)
		if err != nil {
			return nil, newError(R.mech.Name, ErrEdit, "partition failed", err, "react")
		}
	}
	r := chem.NewReaction(R.ID())
	r.AddReactant(mol)
	for _, p := range products {
		r.AddProduct(p)
	}
	for _, o := range m.Objects() {
		if b, ok := o.(*chem.Bond); ok && out.removed[b] {
			continue
		}
		p := cm.Object(o)
		p.SetFlag(chem.Mapped, true)
		r.AddMapping(o, p)
	}
	R.log.Debug("reaction", zap.String("id", r.ID), zap.Int("products", len(products)))
	return r, nil
}

// errDecorate is a helper function that asserts that the error
// implements chem.Error and decorates the error with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(chem.Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}
