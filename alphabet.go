// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzstring

import "sync"

// Symbol widths of the external forms.
const (
	rawBits    = 16
	base64Bits = 6
	utf16Bits  = 15
	byteBits   = 8

	utf16Offset = 32 // Keeps printable UTF-16 symbols clear of control characters
)

// alphabet maps 6-bit symbols to ASCII characters and back.
type alphabet struct {
	chars string

	once sync.Once
	rev  [256]int8 // Symbol for each byte, or -1; immutable once built
}

var (
	base64Alphabet = &alphabet{chars: "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/="}
	uriAlphabet    = &alphabet{chars: "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+-$"}
)

// reverse returns the reverse lookup table, building it on first use.
func (a *alphabet) reverse() *[256]int8 {
	a.once.Do(func() {
		for i := range a.rev {
			a.rev[i] = -1
		}
		for i := 0; i < len(a.chars); i++ {
			a.rev[a.chars[i]] = int8(i)
		}
	})
	return &a.rev
}

func (a *alphabet) encode(syms []uint16) []byte {
	b := make([]byte, len(syms))
	for i, s := range syms {
		b[i] = a.chars[s]
	}
	return b
}

func (a *alphabet) decode(s string) ([]uint16, error) {
	rev := a.reverse()
	syms := make([]uint16, len(s))
	for i := 0; i < len(s); i++ {
		v := rev[s[i]]
		if v < 0 {
			return nil, errSymbol
		}
		syms[i] = uint16(v)
	}
	return syms, nil
}
