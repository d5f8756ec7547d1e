/*
 * stream.go, part of molrx.
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
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	chem "github.com/molrx/molrx"
)

// the first bytes of every zstd frame.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Encoder writes line-delimited JSON, optionally zstd-compressed.
type Encoder struct {
	zw  *zstd.Encoder
	enc *json.Encoder
}

// NewEncoder returns an Encoder writing to w. If compress is true, the stream
// is zstd-compressed, and Close must be called to flush it.
func NewEncoder(w io.Writer, compress bool) (*Encoder, error) {
	E := new(Encoder)
	if compress {
		zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			return nil, NewError("postprocess", "NewEncoder", err)
		}
		E.zw = zw
		w = zw
	}
	E.enc = json.NewEncoder(w)
	return E, nil
}

func (E *Encoder) encode(where, funcname string, v interface{}) error {
	if err := E.enc.Encode(v); err != nil {
		return NewError(where, funcname, err)
	}
	return nil
}

// EncodeOptions writes o. Options, if present, must be the first line of a stream.
func (E *Encoder) EncodeOptions(o *Options) error {
	return E.encode("options", "EncodeOptions", o)
}

// EncodeMolecule writes mol in one line.
func (E *Encoder) EncodeMolecule(mol *chem.Molecule) error {
	J, err := FromMolecule(mol)
	if err != nil {
		return decorate(err, "EncodeMolecule")
	}
	return E.encode("molecule", "EncodeMolecule", J)
}

// EncodeReaction writes r in one line.
func (E *Encoder) EncodeReaction(r *chem.Reaction) error {
	J, err := FromReaction(r)
	if err != nil {
		return decorate(err, "EncodeReaction")
	}
	return E.encode("reaction", "EncodeReaction", J)
}

// EncodeReactionSet writes each reaction of set in its own line.
func (E *Encoder) EncodeReactionSet(set *chem.ReactionSet) error {
	for i := 0; i < set.Len(); i++ {
		if err := E.EncodeReaction(set.Reaction(i)); err != nil {
			return decorate(err, fmt.Sprintf("EncodeReactionSet(reaction %d)", i))
		}
	}
	return nil
}

// Close flushes the compressed stream, if any. It does not close the
// underlying writer.
func (E *Encoder) Close() error {
	if E.zw == nil {
		return nil
	}
	if err := E.zw.Close(); err != nil {
		return NewError("postprocess", "Encoder.Close", err)
	}
	return nil
}

// Decoder reads the line-delimited JSON written by an Encoder.
type Decoder struct {
	r    *bufio.Reader
	zr   *zstd.Decoder
	line int
}

// NewDecoder returns a Decoder reading from r. zstd-compressed input is
// detected and decompressed.
func NewDecoder(r io.Reader) (*Decoder, error) {
	D := new(Decoder)
	br := bufio.NewReader(r)
	magic, err := br.Peek(len(zstdMagic))
	if err == nil && bytes.Equal(magic, zstdMagic) {
		D.zr, err = zstd.NewReader(br)
		if err != nil {
			return nil, NewError("process", "NewDecoder", err)
		}
		br = bufio.NewReader(D.zr)
	}
	D.r = br
	return D, nil
}

// next returns the next non-empty line, or io.EOF.
func (D *Decoder) next() ([]byte, error) {
	for {
		line, err := D.r.ReadBytes('\n')
		if len(line) > 0 {
			D.line++
		}
		if t := bytes.TrimSpace(line); len(t) > 0 {
			return t, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func (D *Decoder) decode(where, funcname string, v interface{}) error {
	line, err := D.next()
	if err == io.EOF {
		return io.EOF
	}
	if err == nil {
		err = json.Unmarshal(line, v)
	}
	if err != nil {
		jerr := NewError(where, funcname, err)
		jerr.Line = D.line
		return jerr
	}
	return nil
}

// atLine decorates err with the caller and the current line.
func (D *Decoder) atLine(err error, caller string) error {
	err = decorate(err, fmt.Sprintf("%s(line %d)", caller, D.line))
	if jerr, ok := err.(*Error); ok && jerr.Line == 0 {
		jerr.Line = D.line
	}
	return err
}

// DecodeOptions reads the options line.
func (D *Decoder) DecodeOptions() (*Options, error) {
	o := new(Options)
	if err := D.decode("options", "DecodeOptions", o); err != nil {
		return nil, err
	}
	return o, nil
}

// DecodeMolecule reads the next molecule. It returns io.EOF, unwrapped,
// at the end of the stream.
func (D *Decoder) DecodeMolecule() (*chem.Molecule, error) {
	J := new(Molecule)
	if err := D.decode("molecule", "DecodeMolecule", J); err != nil {
		return nil, err
	}
	mol, err := J.ToMolecule()
	if err != nil {
		return nil, D.atLine(err, "DecodeMolecule")
	}
	return mol, nil
}

// DecodeReaction reads the next reaction. It returns io.EOF, unwrapped,
// at the end of the stream.
func (D *Decoder) DecodeReaction() (*chem.Reaction, error) {
	J := new(Reaction)
	if err := D.decode("reaction", "DecodeReaction", J); err != nil {
		return nil, err
	}
	r, err := J.ToReaction()
	if err != nil {
		return nil, D.atLine(err, "DecodeReaction")
	}
	return r, nil
}

// DecodeReactionSet reads reactions until the end of the stream.
func (D *Decoder) DecodeReactionSet() (*chem.ReactionSet, error) {
	set := chem.NewReactionSet()
	for {
		r, err := D.DecodeReaction()
		if err == io.EOF {
			return set, nil
		}
		if err != nil {
			return nil, err
		}
		set.Add(r)
	}
}

// Close releases the decompressor, if any.
func (D *Decoder) Close() {
	if D.zr != nil {
		D.zr.Close()
	}
}
