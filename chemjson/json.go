/*
 * json.go, part of molrx.
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

package chemjson

import (
	"encoding/json"
	"io"
	"strings"
)

// An easily JSON-serializable error type.
type Error struct {
	deco          []string
	cause         error
	IsError       bool   //If this is false (no error) all the other fields will be at their zero-values.
	InOptions     bool   //If error, was it in parsing the options?
	InMolecule    bool   //Was it in decoding or encoding a molecule?
	InReaction    bool   //In a reaction?
	InProcess     bool   //in the reaction engine?
	InPostProcess bool   //was it in preparing the output?
	Line          int    //Which line of the stream, if known (1-based).
	Function      string //which go function gave the error
	Message       string //the error itself
}

// Error implements the error interface
func (J *Error) Error() string {
	if len(J.deco) == 0 {
		return J.Message
	}
	return J.Message + " (" + strings.Join(J.deco, " < ") + ")"
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

// Unwrap returns the error that caused J.
func (J *Error) Unwrap() error {
	return J.cause
}

// Marshal serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - "))
	}
	return ret
}

// NewError takes an error and some additional info to create a json-marshal-ble error
func NewError(where, function string, err error) *Error {
	jerr := new(Error)
	jerr.IsError = true
	switch where {
	case "options":
		jerr.InOptions = true
	case "molecule":
		jerr.InMolecule = true
	case "reaction":
		jerr.InReaction = true
	case "postprocess":
		jerr.InPostProcess = true
	default:
		jerr.InProcess = true
	}
	jerr.Function = function
	jerr.Message = err.Error()
	jerr.cause = err
	return jerr
}

// Info is passed back to the calling program after a job.
type Info struct {
	Molecules            int
	ReactionsPerRule     map[string]int
	ReactionsPerMolecule []int
	Errors               []*Error
}

// Send Marshals the info and writes to out.
func (J *Info) Send(out io.Writer) error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(J); err != nil {
		return NewError("postprocess", "Info.Send", err)
	}
	return nil
}

// Options passed from the calling external program
type Options struct {
	Rules            []string //names or identifiers of the reaction types to run. Empty means all.
	ActiveCentersSet bool     //the molecules come with their ReactiveCenter flags set.
	Balance          bool     //balance every reaction with H2O, H+ and H2.
	Compress         bool     //compress the output with zstd.
}
