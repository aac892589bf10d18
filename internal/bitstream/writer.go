// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bitstream packs variable-width tokens into fixed-width symbols
// and unpacks them again.
//
// Symbols are filled starting with their most-significant bit, while the bits
// of each token are consumed starting with its least-significant bit. This is
// the bit order used by lz-string.
package bitstream

import "github.com/dsnet/lzstring/internal"

// Writer packs tokens into symbols of BitsPerChar bits each.
// The zero value is not usable; use NewWriter.
type Writer struct {
	bitsPerChar uint
	val         uint64   // Pending bits, most recent in the low bits
	pos         uint     // Number of valid bits in val
	out         []uint16 // Completed symbols
}

// NewWriter returns a Writer producing symbols of bitsPerChar bits,
// which must be between 1 and 16.
func NewWriter(bitsPerChar uint) *Writer {
	if bitsPerChar == 0 || bitsPerChar > 16 {
		panic("bitstream: invalid symbol width")
	}
	return &Writer{bitsPerChar: bitsPerChar}
}

// WriteBits appends the low n bits of v, least-significant bit first.
// The value n must not exceed 32.
func (bw *Writer) WriteBits(v uint32, n uint) {
	bw.val = bw.val<<n | internal.ReverseUint64N(uint64(v), n)
	bw.pos += n
	for bw.pos >= bw.bitsPerChar {
		bw.pos -= bw.bitsPerChar
		bw.out = append(bw.out, uint16(bw.val>>bw.pos))
		bw.val &= 1<<bw.pos - 1
	}
}

// Flush pads the pending symbol with zero bits and emits it.
// A symbol is emitted even if there are no pending bits.
func (bw *Writer) Flush() {
	bw.out = append(bw.out, uint16(bw.val<<(bw.bitsPerChar-bw.pos)))
	bw.val, bw.pos = 0, 0
}

// Symbols returns the completed symbols.
func (bw *Writer) Symbols() []uint16 { return bw.out }
