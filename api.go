// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package lzstring implements the lz-string compression format.
//
// lz-string is an LZ78 style dictionary coder for text. Codes are assigned to
// every (prefix, next character) pair as the input is scanned, and are
// written with a bit-width that grows along with the dictionary. The encoded
// bits can be rendered in several alphabets so that the output survives
// transports that only accept certain characters:
//
//	Compress                       16-bit code units (as a WTF-8 string)
//	CompressToArray                16-bit code units
//	CompressToUint8Array           16-bit code units as big-endian bytes
//	CompressToBase64               Base64, padded with '='
//	CompressToEncodedURIComponent  URI component safe characters
//	CompressToUTF16                printable 15-bit UTF-16 characters
//
// The output is compatible with version 1.4.4 of the JavaScript library.
// Text is processed as UTF-16, so strings containing invalid UTF-8 do not
// survive a round-trip; each invalid byte becomes U+FFFD.
//
// Each Decompress function returns ErrEmpty for an empty payload, ErrMalformed
// for a payload that references unknown dictionary codes, and ErrTruncated
// for a payload that ends before its end-of-stream marker. The nil slice
// forms follow the JavaScript library in treating nil as no payload, which
// decompresses to an empty string without error.
//
// The size of the output is not limited. Each dictionary entry can be one
// code unit longer than the previous one, so a hostile payload of n tokens
// may decompress to on the order of n*n/2 code units. Callers decoding
// untrusted input should bound the payload length accordingly.
package lzstring

import (
	"strings"
	"unicode/utf16"

	"github.com/dsnet/lzstring/internal/bitstream"
	"github.com/dsnet/lzstring/internal/wtf8"
)

func compressString(s string, bitsPerChar uint) []uint16 {
	return compress(utf16.Encode([]rune(s)), bitsPerChar)
}

func decompressSymbols(syms []uint16, bitsPerChar uint) (string, error) {
	u, err := decompress(bitstream.NewReader(syms, bitsPerChar))
	if err != nil {
		return "", err
	}
	return string(utf16.Decode(u)), nil
}

// Compress compresses s into a string of 16-bit code units.
// The code units need not form valid UTF-16, so they are returned in the
// WTF-8 encoding, which is UTF-8 extended to carry unpaired surrogates.
func Compress(s string) string {
	return wtf8.Encode(compressString(s, rawBits))
}

// Decompress decompresses the output of Compress.
func Decompress(s string) (string, error) {
	if s == "" {
		return "", ErrEmpty
	}
	u, err := wtf8.Decode(s)
	if err != nil {
		return "", err
	}
	return decompressSymbols(u, rawBits)
}

// CompressToArray compresses s into a sequence of 16-bit code units.
func CompressToArray(s string) []uint16 {
	u := compressString(s, rawBits)
	if u == nil {
		u = []uint16{}
	}
	return u
}

// DecompressFromArray decompresses the output of CompressToArray.
// A nil input decompresses to the empty string.
func DecompressFromArray(u []uint16) (string, error) {
	if u == nil {
		return "", nil
	}
	if len(u) == 0 {
		return "", ErrEmpty
	}
	return decompressSymbols(u, rawBits)
}

// CompressToUint8Array compresses s into the code units of CompressToArray,
// each split into two bytes with the most-significant byte first.
func CompressToUint8Array(s string) []byte {
	u := compressString(s, rawBits)
	b := make([]byte, 2*len(u))
	for i, c := range u {
		b[2*i+0] = byte(c >> 8)
		b[2*i+1] = byte(c)
	}
	return b
}

// DecompressFromUint8Array decompresses the output of CompressToUint8Array.
// A nil input is handled the same as by DecompressFromArray.
func DecompressFromUint8Array(b []byte) (string, error) {
	if b == nil {
		return DecompressFromArray(nil)
	}
	if len(b) == 0 {
		return "", ErrEmpty
	}
	syms := make([]uint16, len(b))
	for i, c := range b {
		syms[i] = uint16(c)
	}
	return decompressSymbols(syms, byteBits)
}

// CompressToBase64 compresses s into standard Base64 characters.
// The output is padded with '=' to a multiple of 4 characters.
func CompressToBase64(s string) string {
	b := base64Alphabet.encode(compressString(s, base64Bits))
	for len(b)%4 != 0 {
		b = append(b, '=')
	}
	return string(b)
}

// DecompressFromBase64 decompresses the output of CompressToBase64.
// Padding is optional.
func DecompressFromBase64(s string) (string, error) {
	if s == "" {
		return "", ErrEmpty
	}
	syms, err := base64Alphabet.decode(s)
	if err != nil {
		return "", err
	}
	return decompressSymbols(syms, base64Bits)
}

// CompressToEncodedURIComponent compresses s into characters that need no
// escaping in a URI query component.
func CompressToEncodedURIComponent(s string) string {
	return string(uriAlphabet.encode(compressString(s, base64Bits)))
}

// DecompressFromEncodedURIComponent decompresses the output of
// CompressToEncodedURIComponent. Spaces are read as '+', since that is what
// an unescaped '+' turns into after form decoding.
func DecompressFromEncodedURIComponent(s string) (string, error) {
	if s == "" {
		return "", ErrEmpty
	}
	s = strings.ReplaceAll(s, " ", "+")
	syms, err := uriAlphabet.decode(s)
	if err != nil {
		return "", err
	}
	return decompressSymbols(syms, base64Bits)
}

// CompressToUTF16 compresses s into printable characters, each carrying
// 15 bits. Non-empty output always ends in a space.
func CompressToUTF16(s string) string {
	syms := compressString(s, utf16Bits)
	if syms == nil {
		return ""
	}
	var sb strings.Builder
	sb.Grow(3*len(syms) + 1)
	for _, c := range syms {
		sb.WriteRune(rune(c) + utf16Offset)
	}
	sb.WriteByte(' ')
	return sb.String()
}

// DecompressFromUTF16 decompresses the output of CompressToUTF16.
func DecompressFromUTF16(s string) (string, error) {
	if s == "" {
		return "", ErrEmpty
	}
	syms := utf16.Encode([]rune(s))
	for i, c := range syms {
		if c < utf16Offset {
			return "", errSymbol
		}
		syms[i] = c - utf16Offset
	}
	return decompressSymbols(syms, utf16Bits)
}
