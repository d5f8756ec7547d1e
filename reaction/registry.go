/*
 * registry.go, part of molrx.
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

import "sort"

// catalogue holds every mechanism, in the order All returns them.
var catalogue = []*Mechanism{
	heterolyticCleavage,
	homolyticCleavage,
	rearrangementAnion,
	rearrangementCation,
	rearrangementLonePair,
	rearrangementRadical,
	sharingLonePair,
	electronImpactNBE,
	electronImpactPDB,
	electronImpactSDB,
	carbonylElimination,
	hyperconjugation,
	radicalSiteInitiation,
	radicalSiteHrGamma,
	radicalSiteHrDelta,
	tautomerization,
}

// New returns the rule with the given name (i.e. "HomolyticCleavage") or identifier
// (i.e. "urn:molrx:reaction:HomolyticCleavage").
func New(name string, opts ...Option) (*Rule, error) {
	for _, m := range catalogue {
		if m.Name == name || URIBase+m.Name == name {
			return NewRule(m, opts...), nil
		}
	}
	return nil, newError(name, ErrUnknown, "", nil, "New")
}

// Names returns the names of all the reaction types, sorted.
func Names() []string {
	ret := make([]string, len(catalogue))
	for i, m := range catalogue {
		ret[i] = m.Name
	}
	sort.Strings(ret)
	return ret
}

// All returns one rule for each reaction type, all configured with opts.
func All(opts ...Option) []*Rule {
	ret := make([]*Rule, len(catalogue))
	for i, m := range catalogue {
		ret[i] = NewRule(m, opts...)
	}
	return ret
}

// Convenience constructors.

func NewHeterolyticCleavage(opts ...Option) *Rule { return NewRule(heterolyticCleavage, opts...) }
func NewHomolyticCleavage(opts ...Option) *Rule  { return NewRule(homolyticCleavage, opts...) }
func NewElectronImpactNBE(opts ...Option) *Rule  { return NewRule(electronImpactNBE, opts...) }
func NewElectronImpactPDB(opts ...Option) *Rule  { return NewRule(electronImpactPDB, opts...) }
