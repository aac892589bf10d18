// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzstring

import "github.com/dsnet/lzstring/internal/errors"

// Error is the interface implemented by every error returned from this
// package. It lets callers tell the different decoding failures apart.
type Error interface {
	error
	CompressError()

	// IsInvalid reports whether the caller passed an empty payload.
	IsInvalid() bool

	// IsCorrupted reports whether the payload references dictionary codes that
	// do not exist or holds symbols outside of its alphabet.
	IsCorrupted() bool

	// IsTruncated reports whether the payload ended before the end-of-stream
	// marker.
	IsTruncated() bool
}

var _ Error = errors.Error{}

var (
	// ErrEmpty is returned when decompressing an empty payload.
	// No compressor output is ever empty except for an empty input string,
	// so this is the "not a value" outcome of the JavaScript library.
	ErrEmpty error = errors.Error{Code: errors.Invalid, Pkg: "lzstring", Msg: "empty input"}

	// ErrMalformed is returned when a payload references a dictionary code that
	// has not been assigned yet.
	ErrMalformed error = errors.Error{Code: errors.Corrupted, Pkg: "lzstring", Msg: "unknown dictionary code"}

	// ErrTruncated is returned when a payload runs out before the
	// end-of-stream marker.
	ErrTruncated error = errors.Error{Code: errors.Truncated, Pkg: "lzstring", Msg: "missing end-of-stream marker"}

	errSymbol error = errors.Error{Code: errors.Corrupted, Pkg: "lzstring", Msg: "symbol outside of the alphabet"}
)

// Reserved codes. Dictionary codes start at firstCode.
const (
	codeLiteral8  = 0 // An 8-bit literal follows
	codeLiteral16 = 1 // A 16-bit literal follows
	codeEOS       = 2 // End of stream
	firstCode     = 3
)

// codeWidth tracks the number of bits used to write a code. It widens each
// time the dictionary grows past a power of two. The encoder and decoder
// must advance it at exactly the same points in the stream.
type codeWidth struct {
	numBits   uint
	enlargeIn int // Number of advances left before numBits grows
}

func newCodeWidth() codeWidth {
	return codeWidth{numBits: 2, enlargeIn: 2}
}

func (cw *codeWidth) advance() {
	if cw.enlargeIn--; cw.enlargeIn == 0 {
		cw.enlargeIn = 1 << cw.numBits
		cw.numBits++
	}
}
