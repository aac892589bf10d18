// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"fmt"
	"io/ioutil"

	strconv "github.com/dsnet/golib/unitconv"
	"sigs.k8s.io/yaml"
)

var (
	testToEnum = map[string]int{
		"encRate": TestEncodeRate,
		"decRate": TestDecodeRate,
		"ratio":   TestCompressRatio,
	}
	enumToTest = map[int]string{
		TestEncodeRate:    "encRate",
		TestDecodeRate:    "decRate",
		TestCompressRatio: "ratio",
	}
)

// TestName returns the name of a benchmark test.
func TestName(t int) string { return enumToTest[t] }

// Suite describes a set of benchmarks to run.
// Sizes and levels accept SI and IEC prefixes (e.g., "1e4", "64Ki").
type Suite struct {
	Tests  []string `json:"tests"`
	Codecs []string `json:"codecs"`
	Paths  []string `json:"paths"`
	Files  []string `json:"files"`
	Levels []string `json:"levels"`
	Sizes  []string `json:"sizes"`
}

// LoadSuite reads a Suite from a YAML file.
func LoadSuite(file string) (*Suite, error) {
	b, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return ParseSuite(b)
}

// ParseSuite parses a Suite from YAML. Unknown fields are rejected.
func ParseSuite(b []byte) (*Suite, error) {
	s := new(Suite)
	if err := yaml.UnmarshalStrict(b, s); err != nil {
		return nil, fmt.Errorf("bench: invalid suite: %v", err)
	}
	return s, nil
}

// Merge overrides the fields of s with the non-empty fields of t.
func (s *Suite) Merge(t *Suite) {
	merge := func(dst *[]string, src []string) {
		if len(src) > 0 {
			*dst = src
		}
	}
	merge(&s.Tests, t.Tests)
	merge(&s.Codecs, t.Codecs)
	merge(&s.Paths, t.Paths)
	merge(&s.Files, t.Files)
	merge(&s.Levels, t.Levels)
	merge(&s.Sizes, t.Sizes)
}

// ParseTests converts test names into their enumerated values.
func ParseTests(ss []string) ([]int, error) {
	var ts []int
	for _, s := range ss {
		t, ok := testToEnum[s]
		if !ok {
			return nil, fmt.Errorf("bench: invalid test %q", s)
		}
		ts = append(ts, t)
	}
	return ts, nil
}

// ParseInts parses each string as a number with an optional unit prefix.
func ParseInts(ss []string) ([]int, error) {
	var ns []int
	for _, s := range ss {
		f, err := strconv.ParsePrefix(s, strconv.AutoParse)
		if err != nil {
			return nil, fmt.Errorf("bench: invalid number %q", s)
		}
		ns = append(ns, int(f))
	}
	return ns, nil
}
