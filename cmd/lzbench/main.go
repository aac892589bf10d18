// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command lzbench compares the performance of the lz-string formats against
// other compression implementations. Individual implementations are referred
// to as codecs.
//
// Example usage:
//	$ go build -o lzbench ./cmd/lzbench
//	$ ./lzbench \
//		-tests   ratio                     \
//		-codecs  lzs:base64,lzs:bytes,fl:std \
//		-files   twain.txt                 \
//		-levels  6                         \
//		-sizes   1e4,1e5
//
// Each test prints a table with one row per file, level, and size, and a
// rate (or ratio) column for every codec. The delta column is relative to
// the first codec listed.
//
// The -config flag names a YAML file whose fields provide the defaults for
// the other flags:
//
//	tests: [encRate, decRate]
//	codecs: ["lzs:base64", "zstd:kp"]
//	sizes: ["1e4", "1e5"]
//
// The -chart flag names a directory where an SVG bar chart is written for
// every test.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dsnet/lzstring/internal/tool/bench"
)

const (
	defaultPath   = "testdata"
	defaultLevels = "6"
	defaultSizes  = "1e4,1e5,1e6"
)

func defaultTests() string {
	return strings.Join([]string{
		bench.TestName(bench.TestEncodeRate),
		bench.TestName(bench.TestDecodeRate),
		bench.TestName(bench.TestCompressRatio),
	}, ",")
}

func defaultFiles() string {
	fis, err := ioutil.ReadDir(defaultPath)
	if err != nil {
		return ""
	}
	var s []string
	for _, fi := range fis {
		if !fi.IsDir() && !strings.HasSuffix(fi.Name(), ".go") {
			s = append(s, fi.Name())
		}
	}
	return strings.Join(s, ",")
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("lzbench: ")

	// Setup flag arguments.
	f0 := flag.String("config", "", "YAML file with the default suite")
	f1 := flag.String("tests", defaultTests(), "List of different benchmark tests")
	f2 := flag.String("codecs", strings.Join(bench.Codecs(), ","), "List of codecs to benchmark")
	f3 := flag.String("paths", defaultPath, "List of paths to search for test files")
	f4 := flag.String("files", defaultFiles(), "List of input files to benchmark")
	f5 := flag.String("levels", defaultLevels, "List of compression levels to benchmark")
	f6 := flag.String("sizes", defaultSizes, "List of input sizes to benchmark")
	f7 := flag.String("chart", "", "Directory to write SVG charts to")
	flag.Parse()

	// Flags given on the command line take precedence over the config file,
	// which takes precedence over the flag defaults.
	split := func(s string) []string {
		if s == "" {
			return nil
		}
		return strings.Split(s, ",")
	}
	suite := &bench.Suite{
		Tests:  split(*f1),
		Codecs: split(*f2),
		Paths:  split(*f3),
		Files:  split(*f4),
		Levels: split(*f5),
		Sizes:  split(*f6),
	}
	if *f0 != "" {
		cfg, err := bench.LoadSuite(*f0)
		if err != nil {
			log.Fatal(err)
		}
		suite.Merge(cfg)
		set := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
		suite.Merge(&bench.Suite{
			Tests:  pick(set["tests"], split(*f1)),
			Codecs: pick(set["codecs"], split(*f2)),
			Paths:  pick(set["paths"], split(*f3)),
			Files:  pick(set["files"], split(*f4)),
			Levels: pick(set["levels"], split(*f5)),
			Sizes:  pick(set["sizes"], split(*f6)),
		})
	}

	tests, err := bench.ParseTests(suite.Tests)
	if err != nil {
		log.Fatal(err)
	}
	levels, err := bench.ParseInts(suite.Levels)
	if err != nil {
		log.Fatal(err)
	}
	sizes, err := bench.ParseInts(suite.Sizes)
	if err != nil {
		log.Fatal(err)
	}
	for _, c := range suite.Codecs {
		if bench.Encoders[c] == nil || bench.Decoders[c] == nil {
			log.Fatalf("unknown codec %q", c)
		}
	}
	if *f7 != "" {
		if err := os.MkdirAll(*f7, 0775); err != nil {
			log.Fatal(err)
		}
	}

	ts := time.Now()
	bench.Paths = suite.Paths
	runBenchmarks(suite.Files, suite.Codecs, tests, levels, sizes, *f7)
	te := time.Now()
	fmt.Printf("RUNTIME: %v\n", te.Sub(ts))
}

func pick(ok bool, ss []string) []string {
	if ok {
		return ss
	}
	return nil
}

func runBenchmarks(files, codecs []string, tests, levels, sizes []int, chartDir string) {
	for _, t := range tests {
		var results [][]bench.Result
		var names []string
		var title, suffix string

		fmt.Printf("BENCHMARK: %s\n", bench.TestName(t))
		if len(codecs) == 0 {
			fmt.Print("\tSKIP: There are no codecs available.\n\n")
			continue
		}

		// Progress ticker.
		var cnt int
		tick := func() {
			total := len(codecs) * len(files) * len(levels) * len(sizes)
			pct := 100.0 * float64(cnt) / float64(total)
			fmt.Printf("\t[%6.2f%%] %d of %d\r", pct, cnt, total)
			cnt++
		}

		// Perform the bench. This may take some time.
		switch t {
		case bench.TestEncodeRate:
			title, suffix = "MB/s", ""
			results, names = bench.BenchmarkEncoderSuite(codecs, files, levels, sizes, tick)
		case bench.TestDecodeRate:
			title, suffix = "MB/s", ""
			results, names = bench.BenchmarkDecoderSuite(codecs, files, levels, sizes, tick)
		case bench.TestCompressRatio:
			title, suffix = "ratio", "x"
			results, names = bench.BenchmarkRatioSuite(codecs, files, levels, sizes, tick)
		default:
			panic("unknown test")
		}

		// Print all of the results.
		printResults(results, names, codecs, title, suffix)
		fmt.Println()

		if chartDir != "" {
			writeChart(filepath.Join(chartDir, bench.TestName(t)+".svg"), bench.TestName(t)+" ("+title+")", results, codecs)
		}
	}
}

func writeChart(file, title string, results [][]bench.Result, codecs []string) {
	f, err := os.Create(file)
	if err != nil {
		log.Print(err)
		return
	}
	defer f.Close()
	if err := bench.WriteChart(f, title, results, codecs); err != nil {
		log.Printf("%s: %v", file, err)
	}
}

func printResults(results [][]bench.Result, names, codecs []string, title, suffix string) {
	// Allocate result table.
	cells := make([][]string, 1+len(names))
	for i := range cells {
		cells[i] = make([]string, 1+2*len(codecs))
	}

	// Label the first row.
	cells[0][0] = "benchmark"
	for i, c := range codecs {
		cells[0][1+2*i] = c + " " + title
		cells[0][2+2*i] = "delta"
	}

	// Insert all rows.
	for j, row := range results {
		cells[1+j][0] = names[j]
		for i, r := range row {
			if r.R != 0 && !math.IsNaN(r.R) && !math.IsInf(r.R, 0) {
				cells[1+j][1+2*i] = fmt.Sprintf("%.2f", r.R) + suffix
			}
			if r.D != 0 && !math.IsNaN(r.D) && !math.IsInf(r.D, 0) {
				cells[1+j][2+2*i] = fmt.Sprintf("%.2f", r.D) + "x"
			}
		}
	}

	// Compute the maximum lengths.
	maxLens := make([]int, 1+2*len(codecs))
	for _, row := range cells {
		for i, s := range row {
			if maxLens[i] < len(s) {
				maxLens[i] = len(s)
			}
		}
	}

	// Print padded versions of all cells.
	for _, row := range cells {
		fmt.Print("\t")
		for i, s := range row {
			switch {
			case i == 0: // Column 0
				row[i] = s + strings.Repeat(" ", maxLens[i]-len(s))
			case i%2 == 1: // Column 1, 3, 5, 7, ...
				row[i] = strings.Repeat(" ", 6+maxLens[i]-len(s)) + s
			case i%2 == 0: // Column 2, 4, 6, 8, ...
				row[i] = strings.Repeat(" ", 2+maxLens[i]-len(s)) + s
			}
			fmt.Print(row[i])
		}
		fmt.Println()
	}
}
