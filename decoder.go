// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzstring

import "github.com/dsnet/lzstring/internal/bitstream"

// decoder rebuilds the code units from a token stream. The dictionary is an
// append-only table indexed by code, grown in lockstep with the trie the
// encoder built.
type decoder struct {
	br   *bitstream.Reader
	cw   codeWidth
	dict [][]uint16 // Reserved codes are left nil
	prev []uint16   // Previously decoded entry
}

func newDecoder(br *bitstream.Reader) *decoder {
	return &decoder{
		br:   br,
		cw:   newCodeWidth(),
		dict: make([][]uint16, firstCode, 256),
	}
}

func decompress(br *bitstream.Reader) ([]uint16, error) {
	return newDecoder(br).decode()
}

func (d *decoder) decode() ([]uint16, error) {
	var out []uint16
	for {
		if d.br.Exhausted() {
			return nil, ErrTruncated
		}
		code := d.br.ReadBits(d.cw.numBits)
		switch code {
		case codeLiteral8, codeLiteral16:
			lit := d.br.ReadBits(8 << code)
			d.dict = append(d.dict, []uint16{uint16(lit)})
			code = uint32(len(d.dict) - 1)
			d.cw.advance()
		case codeEOS:
			return out, nil
		}

		var entry []uint16
		switch size := uint32(len(d.dict)); {
		case code < size:
			entry = d.dict[code]
		case code == size && d.prev != nil:
			entry = extend(d.prev, d.prev[0]) // The code being defined by this very token
		default:
			return nil, ErrMalformed
		}
		out = append(out, entry...)

		if d.prev != nil {
			d.dict = append(d.dict, extend(d.prev, entry[0]))
		}
		d.cw.advance()
		d.prev = entry
	}
}

// extend returns a new slice holding s followed by c.
func extend(s []uint16, c uint16) []uint16 {
	e := make([]uint16, len(s)+1)
	copy(e, s)
	e[len(s)] = c
	return e
}
