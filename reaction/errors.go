/*
 * errors.go, part of molrx.
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
	"fmt"
	"strings"

	chem "github.com/molrx/molrx"
)

// Kinds of errors returned by New, Initiate and SetParameters. Use errors.Is.
var (
	//ErrContract is a misuse of the rule: wrong number of reactants,
	//agents given, or malformed parameters. Nothing is done before it is reported.
	ErrContract = errors.New("contract violation")
	//ErrClone means the reactant could not be copied. The reactant is not modified.
	ErrClone = errors.New("could not clone the reactant")
	//ErrNoActiveCenter is only returned by rules that consider an absent
	//active center a failure. Other rules return an empty ReactionSet.
	ErrNoActiveCenter = errors.New("no active center found")
	//ErrEdit means an edit could not be applied to the copy of the reactant.
	ErrEdit = errors.New("could not apply the mechanism")
	//ErrUnknown is returned by New for a name that is not in the catalogue.
	ErrUnknown = errors.New("unknown reaction type")
)

// Error is the error type of the reaction package. It fullfills chem.Error.
type Error struct {
	message string
	rule    string
	kind    error
	cause   error
	deco    []string
}

func newError(rule string, kind error, message string, cause error, deco ...string) *Error {
	return &Error{rule: rule, kind: kind, message: message, cause: cause, deco: deco}
}

func (err *Error) Error() string {
	s := fmt.Sprintf("%s: %s", err.rule, err.kind.Error())
	if err.message != "" {
		s += ": " + err.message
	}
	if err.cause != nil {
		s += ": " + err.cause.Error()
	}
	if len(err.deco) > 0 {
		s += " (" + strings.Join(err.deco, " < ") + ")"
	}
	return s
}

// Decorate Adds new information to the error
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Is reports whether target is the kind of the error.
func (err *Error) Is(target error) bool {
	return target == err.kind
}

// Unwrap returns the cause of the error, if any.
func (err *Error) Unwrap() error {
	return err.cause
}

// Rule returns the name of the rule that produced the error.
func (err *Error) Rule() string {
	return err.rule
}

var _ chem.Error = (*Error)(nil)
