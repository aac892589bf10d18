// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"strings"
)

// Rand implements a deterministic pseudo-random number generator.
// This differs from the math.Rand in that the exact output will be consistent
// across different versions of Go.
type Rand struct {
	cipher.Block
	blk [aes.BlockSize]byte
}

func NewRand(seed int) *Rand {
	var key [aes.BlockSize]byte
	binary.LittleEndian.PutUint64(key[:], uint64(seed))
	r, _ := aes.NewCipher(key[:])
	return &Rand{Block: r}
}

func (r *Rand) Int() (x int) {
	r.Encrypt(r.blk[:], r.blk[:])
	x |= int(r.blk[0]) << 0
	x |= int(r.blk[1]) << 8
	x |= int(r.blk[2]) << 16
	x |= int(r.blk[3]) << 24
	x |= int(r.blk[4]) << 32
	x |= int(r.blk[5]) << 40
	x |= int(r.blk[6]) << 48
	x |= int(r.blk[7]&0x3f) << 56
	return x
}

func (r *Rand) Intn(n int) int {
	return r.Int() % n
}

func (r *Rand) Bytes(n int) []byte {
	b := make([]byte, n)
	bb := b
	for len(bb) > 0 {
		r.Encrypt(r.blk[:], r.blk[:])
		cnt := copy(bb, r.blk[:])
		bb = bb[cnt:]
	}
	return b
}

// Rune returns a random valid rune. Roughly half are ASCII, and the rest are
// spread over the Latin-1, BMP, and supplementary planes so that both 8-bit
// and 16-bit literals and surrogate pairs show up.
func (r *Rand) Rune() rune {
	for {
		var c rune
		switch p := r.Intn(100); {
		case p < 50:
			c = rune(0x20 + r.Intn(0x5f))
		case p < 65:
			c = rune(r.Intn(0x100))
		case p < 90:
			c = rune(0x100 + r.Intn(0xfeff))
		default:
			c = rune(0x10000 + r.Intn(0x100000))
		}
		if c < 0xd800 || c > 0xdfff {
			return c
		}
	}
}

// String returns a string of n random runes drawn by Rune.
func (r *Rand) String(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteRune(r.Rune())
	}
	return sb.String()
}

// Repeats returns a string of about n runes that heavily favors dictionary
// compression, since most of it is a copy of text from some distance ago.
// Fresh runes are drawn from a small alphabet of size k.
func (r *Rand) Repeats(n, k int) string {
	alpha := []rune(r.String(k))
	randLen := func() int {
		switch p := r.Intn(100); {
		case p < 15: // 4..8
			return 4 + r.Intn(4)
		case p < 45: // 8..32
			return 8 + r.Intn(24)
		case p < 75: // 32..128
			return 32 + r.Intn(96)
		default: // 128..512
			return 128 + r.Intn(384)
		}
	}

	var b []rune
	for len(b) < n {
		if len(b) == 0 || r.Intn(4) == 0 {
			for i := randLen(); i > 0; i-- {
				b = append(b, alpha[r.Intn(len(alpha))])
			}
			continue
		}
		d := 1 + r.Intn(len(b))
		for i := randLen(); i > 0; i-- {
			b = append(b, b[len(b)-d])
		}
	}
	return string(b[:n])
}
