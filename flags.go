/*
 * flags.go, part of molrx.
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

import "strings"

// Flag is one named boolean of a ChemObject. Flags are bits, so
// several of them can be combined with |.
type Flag uint8

const (
	//ReactiveCenter marks atoms and bonds that take part in at least
	//one instance of a reaction motif.
	ReactiveCenter Flag = 1 << iota
	//Mapped marks objects that appear in a Mapping.
	Mapped
)

var flagNames = []struct {
	f    Flag
	name string
}{
	{ReactiveCenter, "reactive"},
	{Mapped, "mapped"},
}

func (f Flag) String() string {
	names := make([]string, 0, len(flagNames))
	for _, v := range flagNames {
		if f&v.f != 0 {
			names = append(names, v.name)
		}
	}
	return strings.Join(names, "|")
}

// Flags is embedded in every ChemObject.
type Flags struct {
	bits Flag
}

// Flag returns true if all the bits in f are set.
func (F *Flags) Flag(f Flag) bool {
	return F.bits&f == f
}

// SetFlag sets or clears the bits in f.
func (F *Flags) SetFlag(f Flag, v bool) {
	if v {
		F.bits |= f
	} else {
		F.bits &^= f
	}
}

// FlagBits returns all the flags set, as one value.
func (F *Flags) FlagBits() Flag {
	return F.bits
}
