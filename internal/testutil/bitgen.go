// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/dsnet/lzstring/internal/bitstream"
)

var reTok = regexp.MustCompile(`^([DH])([0-9]+):([0-9a-fA-F]+)(?:[*]([0-9]+))?$`)

// DecodeBitGen decodes a BitGen formatted string into the byte form of an
// lz-string payload. It lets tests script token streams by hand, including
// streams that no encoder would produce.
//
// Tokens are separated by white space. The '#' character starts a comment
// that runs to the end of the line.
//
// Tokens "D[0-9]+:[0-9]+" and "H[0-9]+:[0-9a-fA-F]+" are a bit-length followed
// by a decimal or hexadecimal value of at most 32 bits. Values are written
// least-significant bit first into bytes that are filled starting with their
// most-significant bit. A trailing "*N" repeats a token N times.
//
// The stream is padded with 0 bits up to the nearest byte.
//
// Example BitGen file, the byte form of the string "a":
//	D2:0 D8:97 # 8-bit literal 'a'
//	D3:2       # End of stream
//
// Generated output stream (in hexadecimal):
//	"2190"
func DecodeBitGen(str string) ([]byte, error) {
	bw := bitstream.NewWriter(8)
	var nbits uint
	for _, line := range strings.Split(str, "\n") {
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		for _, t := range strings.Fields(line) {
			m := reTok.FindStringSubmatch(t)
			if m == nil {
				return nil, errors.New("testutil: invalid token: " + t)
			}
			base := 10
			if m[1] == "H" {
				base = 16
			}
			n, err1 := strconv.ParseUint(m[2], 10, 6)
			v, err2 := strconv.ParseUint(m[3], base, 32)
			if err1 != nil || err2 != nil || n > 32 {
				return nil, errors.New("testutil: invalid numeric token: " + t)
			}
			if v>>n != 0 {
				return nil, errors.New("testutil: integer overflow on token: " + t)
			}
			rep := 1
			if m[4] != "" {
				if rep, err1 = strconv.Atoi(m[4]); err1 != nil {
					return nil, errors.New("testutil: invalid quantified token: " + t)
				}
			}
			for i := 0; i < rep; i++ {
				bw.WriteBits(uint32(v), uint(n))
				nbits += uint(n)
			}
		}
	}
	if nbits%8 != 0 {
		bw.WriteBits(0, 8-nbits%8)
	}
	syms := bw.Symbols()
	b := make([]byte, len(syms))
	for i, s := range syms {
		b[i] = byte(s)
	}
	return b, nil
}
