// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseSuite(t *testing.T) {
	const in = `
tests: [encRate, ratio]
codecs: ["lzs:base64", "fl:kp"]
files:
  - twain.txt
levels: ["1", "9"]
sizes: ["1e4", "64Ki"]
`
	got, err := ParseSuite([]byte(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := &Suite{
		Tests:  []string{"encRate", "ratio"},
		Codecs: []string{"lzs:base64", "fl:kp"},
		Files:  []string{"twain.txt"},
		Levels: []string{"1", "9"},
		Sizes:  []string{"1e4", "64Ki"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseSuite mismatch (-want +got):\n%s", diff)
	}

	if _, err := ParseSuite([]byte("formats: [fl]\n")); err == nil {
		t.Errorf("ParseSuite with unknown field: got nil error")
	}
}

func TestSuiteMerge(t *testing.T) {
	s := &Suite{Tests: []string{"ratio"}, Files: []string{"a.txt"}}
	s.Merge(&Suite{Files: []string{"b.txt"}, Sizes: []string{"1e4"}})
	want := &Suite{Tests: []string{"ratio"}, Files: []string{"b.txt"}, Sizes: []string{"1e4"}}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("Merge mismatch (-want +got):\n%s", diff)
	}
}

func TestParseValues(t *testing.T) {
	ts, err := ParseTests([]string{"ratio", "encRate"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]int{TestCompressRatio, TestEncodeRate}, ts); diff != "" {
		t.Errorf("ParseTests mismatch (-want +got):\n%s", diff)
	}
	if _, err := ParseTests([]string{"speed"}); err == nil {
		t.Errorf("ParseTests(\"speed\"): got nil error")
	}

	ns, err := ParseInts([]string{"6", "1e4", "64Ki"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]int{6, 1e4, 64 << 10}, ns); diff != "" {
		t.Errorf("ParseInts mismatch (-want +got):\n%s", diff)
	}
	if _, err := ParseInts([]string{"six"}); err == nil {
		t.Errorf("ParseInts(\"six\"): got nil error")
	}
}

func TestWriteChart(t *testing.T) {
	results := [][]Result{
		{{R: 2.5}, {R: 4.0}, {}},
		{{R: 3.5}, {R: 5.0}, {}},
	}
	codecs := []string{"lzs:base64", "fl:std", "none"}
	var buf bytes.Buffer
	if err := WriteChart(&buf, "ratio", results, codecs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Errorf("output is not an SVG document")
	}
	if err := WriteChart(&buf, "ratio", [][]Result{{{}}}, []string{"none"}); err == nil {
		t.Errorf("WriteChart with no results: got nil error")
	}
}
