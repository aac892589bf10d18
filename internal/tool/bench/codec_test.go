// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"testing"

	"github.com/dsnet/lzstring/internal/testutil"
)

// TestCodecs tests that the output of each registered encoder is a valid input
// for the decoder registered under the same name.
func TestCodecs(t *testing.T) {
	files := []string{"twain.txt", "unicode.txt"}
	for _, fl := range files {
		dd := testutil.MustLoadFile(filepath.Join("../../../testdata", fl), -1)
		t.Run(fmt.Sprintf("File:%v", fl), func(t *testing.T) { testCodecs(t, dd) })
	}
}

func testCodecs(t *testing.T, dd []byte) {
	t.Parallel()
	const level = 6 // Default compression on all encoders
	for _, name := range Codecs() {
		name := name
		t.Run(fmt.Sprintf("Codec:%v", name), func(t *testing.T) {
			be := new(bytes.Buffer)
			zw := Encoders[name](be, level)
			if _, err := io.Copy(zw, bytes.NewReader(dd)); err != nil {
				t.Fatalf("unexpected Write error: %v", err)
			}
			if err := zw.Close(); err != nil {
				t.Fatalf("unexpected Close error: %v", err)
			}

			bd := new(bytes.Buffer)
			zr := Decoders[name](bytes.NewReader(be.Bytes()))
			if _, err := io.Copy(bd, zr); err != nil {
				t.Fatalf("unexpected Read error: %v", err)
			}
			if err := zr.Close(); err != nil {
				t.Fatalf("unexpected Close error: %v", err)
			}
			if !bytes.Equal(bd.Bytes(), dd) {
				t.Error("data mismatch")
			}
		})
	}
}

func TestCodecNames(t *testing.T) {
	cs := Codecs()
	if len(cs) < 5 {
		t.Fatalf("got %d codecs, want at least 5", len(cs))
	}
	if cs[0] != "lzs:base64" {
		t.Errorf("first codec: got %q, want %q", cs[0], "lzs:base64")
	}
	for i, c := range cs {
		if _, ok := Encoders[c]; !ok {
			t.Errorf("test %d, %s: missing encoder", i, c)
		}
		if _, ok := Decoders[c]; !ok {
			t.Errorf("test %d, %s: missing decoder", i, c)
		}
	}
}

func TestRatioSuite(t *testing.T) {
	Paths = []string{"../../../testdata"}
	codecs := []string{"lzs:bytes", "lzs:base64", "fl:std"}
	results, names := BenchmarkRatioSuite(codecs, []string{"twain.txt"}, []int{6}, []int{1e4}, nil)
	if len(results) != 1 || len(names) != 1 {
		t.Fatalf("got %d results and %d names, want 1 of each", len(results), len(names))
	}
	if names[0] != "twain.txt:6:1e4" {
		t.Errorf("name: got %q, want %q", names[0], "twain.txt:6:1e4")
	}
	row := results[0]
	for i, r := range row {
		if r.R <= 1 {
			t.Errorf("test %d, %s: got ratio %.2f, want > 1", i, codecs[i], r.R)
		}
	}
	if row[0].D != 1 {
		t.Errorf("primary delta: got %.2f, want 1", row[0].D)
	}
	// Base64 carries 6 bits per byte while the byte form carries 8.
	if row[1].R >= row[0].R {
		t.Errorf("base64 ratio %.2f not below bytes ratio %.2f", row[1].R, row[0].R)
	}
}

func TestGetName(t *testing.T) {
	vectors := []struct {
		file  string
		level int
		size  int
		want  string
	}{
		{"twain.txt", 6, 1e4, "twain.txt:6:1e4"},
		{"../testdata/twain.txt", 1, 1e6, "twain.txt:1:1e6"},
	}
	for i, v := range vectors {
		if got := getName(v.file, v.level, v.size); got != v.want {
			t.Errorf("test %d, getName(%q, %d, %d): got %q, want %q", i, v.file, v.level, v.size, got, v.want)
		}
	}
}
