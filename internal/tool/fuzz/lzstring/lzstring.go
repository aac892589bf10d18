// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build gofuzz
// +build gofuzz

package lzstring

import (
	"unicode/utf8"

	"github.com/dsnet/lzstring"
)

func Fuzz(data []byte) int {
	ok := testDecoders(data)
	if utf8.Valid(data) {
		testRoundTrip(string(data))
	}
	if ok {
		return 1 // Favor valid inputs
	}
	return 0
}

// testDecoders tests that every format either decodes the input or reports
// a classified error. It reports whether any format accepted the input.
func testDecoders(data []byte) bool {
	var ok bool
	for _, f := range lzstring.Formats {
		s, err := f.Decode(data)
		if err == nil {
			testRoundTrip(s)
			ok = true
			continue
		}
		if s != "" {
			panic("output returned with error")
		}
		if cerr, isErr := err.(lzstring.Error); !isErr || !(cerr.IsCorrupted() || cerr.IsTruncated() || cerr.IsInvalid()) {
			panic(err)
		}
	}
	return ok
}

// testRoundTrip tests that every format can round-trip valid text.
func testRoundTrip(s string) {
	for _, f := range lzstring.Formats {
		got, err := f.Decode(f.Encode(s))
		if err != nil {
			if s == "" && err == lzstring.ErrEmpty {
				continue
			}
			panic(err)
		}
		if got != s {
			panic("mismatching output")
		}
	}
}
