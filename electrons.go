/*
 * electrons.go, part of molrx.
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

// LonePair is a non-bonding electron pair owned by one atom.
type LonePair struct {
	Atom *Atom
	Flags
}

func (L *LonePair) Electrons() int { return 2 }

func (L *LonePair) Contains(at *Atom) bool { return L.Atom == at }

func (L *LonePair) Members() []*Atom { return []*Atom{L.Atom} }

// SingleElectron is an unpaired electron (a radical) owned by one atom.
type SingleElectron struct {
	Atom *Atom
	Flags
}

func (S *SingleElectron) Electrons() int { return 1 }

func (S *SingleElectron) Contains(at *Atom) bool { return S.Atom == at }

func (S *SingleElectron) Members() []*Atom { return []*Atom{S.Atom} }
