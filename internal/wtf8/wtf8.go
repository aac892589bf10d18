// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package wtf8 converts between sequences of 16-bit code units and strings
// in the WTF-8 encoding.
//
// WTF-8 is a superset of UTF-8 that can also hold unpaired surrogates, each
// written as the 3-byte sequence UTF-8 would use if surrogates were ordinary
// code points. This makes the conversion lossless for any []uint16, which
// unicode/utf16 is not. Valid UTF-8 strings decode exactly as UTF-16 would.
package wtf8

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/dsnet/lzstring/internal/errors"
)

var errInvalid error = errors.Error{Code: errors.Corrupted, Pkg: "wtf8", Msg: "invalid byte sequence"}

const (
	surrMin = 0xd800
	lowMin  = 0xdc00 // First low surrogate
	surrMax = 0xdfff
)

// Encode returns the WTF-8 form of u.
func Encode(u []uint16) string {
	b := make([]byte, 0, len(u))
	for i := 0; i < len(u); i++ {
		c := rune(u[i])
		switch {
		case c < surrMin || c > surrMax:
			b = utf8.AppendRune(b, c)
		case c < lowMin && i+1 < len(u) && u[i+1] >= lowMin && u[i+1] <= surrMax:
			b = utf8.AppendRune(b, utf16.DecodeRune(c, rune(u[i+1])))
			i++
		default:
			b = append(b, 0xe0|byte(c>>12), 0x80|byte(c>>6)&0x3f, 0x80|byte(c)&0x3f)
		}
	}
	return string(b)
}

// Decode returns the 16-bit code units held by the WTF-8 string s.
func Decode(s string) ([]uint16, error) {
	u := make([]uint16, 0, len(s))
	for i := 0; i < len(s); {
		if c := s[i]; c < utf8.RuneSelf {
			u = append(u, uint16(c))
			i++
			continue
		}
		r, n := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && n == 1 {
			// UTF-8 rejects surrogates, so handle them here.
			if i+2 >= len(s) || s[i] != 0xed || s[i+1]&0xe0 != 0xa0 || s[i+2]&0xc0 != 0x80 {
				return nil, errInvalid
			}
			r, n = rune(0xd000)|rune(s[i+1]&0x3f)<<6|rune(s[i+2]&0x3f), 3
		}
		if r >= 0x10000 {
			r1, r2 := utf16.EncodeRune(r)
			u = append(u, uint16(r1), uint16(r2))
		} else {
			u = append(u, uint16(r))
		}
		i += n
	}
	return u, nil
}
