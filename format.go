// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzstring

import "github.com/dsnet/lzstring/internal/errors"

// Format selects one of the external forms of a compressed payload.
type Format int

const (
	FormatRaw    Format = iota // Compress and Decompress
	FormatBase64               // CompressToBase64 and DecompressFromBase64
	FormatURI                  // CompressToEncodedURIComponent and DecompressFromEncodedURIComponent
	FormatUTF16                // CompressToUTF16 and DecompressFromUTF16
	FormatBytes                // CompressToUint8Array and DecompressFromUint8Array
)

var formatNames = [...]string{
	FormatRaw:    "raw",
	FormatBase64: "base64",
	FormatURI:    "uri",
	FormatUTF16:  "utf16",
	FormatBytes:  "bytes",
}

// Formats lists every supported format.
var Formats = []Format{FormatRaw, FormatBase64, FormatURI, FormatUTF16, FormatBytes}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// ParseFormat returns the format with the given name.
// Only the names of Formats are accepted.
func ParseFormat(name string) (Format, error) {
	for f, s := range formatNames {
		if s == name {
			return Format(f), nil
		}
	}
	return 0, errors.Error{Code: errors.Invalid, Pkg: "lzstring", Msg: "unknown format " + name}
}

// Encode compresses s in format f. Textual formats are returned as their
// UTF-8 bytes. Encode panics if f is not one of Formats; values obtained from
// ParseFormat or the Format constants are always valid.
func (f Format) Encode(s string) []byte {
	switch f {
	case FormatRaw:
		return []byte(Compress(s))
	case FormatBase64:
		return []byte(CompressToBase64(s))
	case FormatURI:
		return []byte(CompressToEncodedURIComponent(s))
	case FormatUTF16:
		return []byte(CompressToUTF16(s))
	case FormatBytes:
		return CompressToUint8Array(s)
	default:
		panic("lzstring: unknown format")
	}
}

// Decode decompresses a payload produced by Encode in format f.
// An invalid f is reported as an invalid argument error.
func (f Format) Decode(b []byte) (string, error) {
	switch f {
	case FormatRaw:
		return Decompress(string(b))
	case FormatBase64:
		return DecompressFromBase64(string(b))
	case FormatURI:
		return DecompressFromEncodedURIComponent(string(b))
	case FormatUTF16:
		return DecompressFromUTF16(string(b))
	case FormatBytes:
		return DecompressFromUint8Array(b)
	default:
		return "", errors.Error{Code: errors.Invalid, Pkg: "lzstring", Msg: "unknown format"}
	}
}
