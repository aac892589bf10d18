// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command lzstring compresses or decompresses text in one of the lz-string
// formats.
//
// Example usage:
//	$ echo -n "Hello Hello Hello" | lzstring -f base64
//	BIUwNmD2AEoTcpA=
//	$ echo -n "BIUwNmD2AEoTcpA=" | lzstring -d -f base64
//	Hello Hello Hello
//
// The input is read from the named file, or from stdin if none is given.
// Surrounding whitespace is trimmed from base64 and uri payloads before
// decompression.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"github.com/dsnet/lzstring"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("lzstring: ")
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("lzstring", flag.ContinueOnError)
	decomp := fs.Bool("d", false, "Decompress the input")
	format := fs.String("f", lzstring.FormatBase64.String(), "Payload format: "+formatList())
	output := fs.String("o", "", "Write to this file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	f, err := lzstring.ParseFormat(*format)
	if err != nil {
		return err
	}

	var in []byte
	switch fs.NArg() {
	case 0:
		in, err = ioutil.ReadAll(stdin)
	case 1:
		in, err = ioutil.ReadFile(fs.Arg(0))
	default:
		return fmt.Errorf("too many arguments: %v", fs.Args())
	}
	if err != nil {
		return err
	}

	var out []byte
	if *decomp {
		if f == lzstring.FormatBase64 || f == lzstring.FormatURI {
			in = bytes.TrimSpace(in)
		}
		s, err := f.Decode(in)
		if err != nil {
			return err
		}
		out = []byte(s)
	} else {
		out = f.Encode(string(in))
	}

	if *output != "" {
		return ioutil.WriteFile(*output, out, 0664)
	}
	_, err = stdout.Write(out)
	return err
}

func formatList() string {
	var ss []string
	for _, f := range lzstring.Formats {
		ss = append(ss, f.String())
	}
	return strings.Join(ss, ", ")
}
