// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitstream

import "github.com/dsnet/lzstring/internal"

// Reader unpacks tokens from symbols of a fixed width.
// Bits past the end of the input read as zero.
type Reader struct {
	syms        []uint16
	bitsPerChar uint
	val         uint16 // Current symbol
	left        uint   // Number of unread bits in val
	idx         int    // Index of the symbol following val
}

// NewReader returns a Reader over syms, each holding bitsPerChar bits.
// Any bits above bitsPerChar are ignored.
func NewReader(syms []uint16, bitsPerChar uint) *Reader {
	if bitsPerChar == 0 || bitsPerChar > 16 {
		panic("bitstream: invalid symbol width")
	}
	br := &Reader{syms: syms, bitsPerChar: bitsPerChar, left: bitsPerChar}
	br.val = br.next()
	return br
}

func (br *Reader) next() uint16 {
	var v uint16
	if br.idx < len(br.syms) {
		v = br.syms[br.idx]
	}
	br.idx++
	return v
}

// ReadBits reads an n-bit token, least-significant bit first.
// The value n must not exceed 32.
func (br *Reader) ReadBits(n uint) uint32 {
	var v uint64
	for rem := n; rem > 0; {
		k := rem
		if k > br.left {
			k = br.left
		}
		br.left -= k
		rem -= k
		v = v<<k | uint64(br.val>>br.left)&(1<<k-1)
		if br.left == 0 {
			br.left = br.bitsPerChar
			br.val = br.next()
		}
	}
	return uint32(internal.ReverseUint64N(v, n))
}

// Exhausted reports whether the symbol currently being read lies beyond the
// end of the input.
func (br *Reader) Exhausted() bool { return br.idx > len(br.syms) }
