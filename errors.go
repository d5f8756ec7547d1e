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

package chem

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotMember is returned (wrapped) when an electron container, bond or
// atom does not belong to the molecule it is used with.
var ErrNotMember = errors.New("object is not a member of the molecule")

// CError is the error type of the chem package. It fullfills the Error interface.
type CError struct {
	msg   string
	deco  []string
	cause error
}

// NewError returns a CError with message msg, wrapping cause (which can be nil)
// and decorated with the given caller names.
func NewError(msg string, cause error, deco ...string) *CError {
	return &CError{msg: msg, cause: cause, deco: deco}
}

func (err *CError) Error() string {
	s := err.msg
	if err.cause != nil {
		if s == "" {
			s = err.cause.Error()
		} else {
			s = fmt.Sprintf("%s: %s", s, err.cause.Error())
		}
	}
	if len(err.deco) > 0 {
		s = fmt.Sprintf("%s (%s)", s, strings.Join(err.deco, " < "))
	}
	return s
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// Unwrap returns the wrapped cause, if any.
func (err *CError) Unwrap() error {
	return err.cause
}

// errDecorate decorates err with the caller's name if it implements Error,
// otherwise it wraps it in a new CError.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var err2 Error
	if errors.As(err, &err2) {
		err2.Decorate(caller)
		return err
	}
	return NewError("", err, caller)
}
