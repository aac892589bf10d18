// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bytes"
	"io"
	"io/ioutil"
	"strings"

	"github.com/dsnet/lzstring"
)

const lzsPrefix = "lzs:"

// The lz-string formats compress a whole string at once, so the writer
// buffers everything until Close and the reader decodes on the first Read.
// The compression level is ignored.

type lzsWriter struct {
	w   io.Writer
	f   lzstring.Format
	buf bytes.Buffer
}

func (zw *lzsWriter) Write(b []byte) (int, error) { return zw.buf.Write(b) }

func (zw *lzsWriter) Close() error {
	_, err := zw.w.Write(zw.f.Encode(zw.buf.String()))
	return err
}

type lzsReader struct {
	r  io.Reader
	f  lzstring.Format
	rd *strings.Reader
}

func (zr *lzsReader) Read(b []byte) (int, error) {
	if zr.rd == nil {
		in, err := ioutil.ReadAll(zr.r)
		if err != nil {
			return 0, err
		}
		s, err := zr.f.Decode(in)
		if err != nil {
			return 0, err
		}
		zr.rd = strings.NewReader(s)
	}
	return zr.rd.Read(b)
}

func (zr *lzsReader) Close() error { return nil }

func init() {
	for _, f := range lzstring.Formats {
		f := f
		RegisterEncoder(lzsPrefix+f.String(),
			func(w io.Writer, lvl int) io.WriteCloser {
				return &lzsWriter{w: w, f: f}
			})
		RegisterDecoder(lzsPrefix+f.String(),
			func(r io.Reader) io.ReadCloser {
				return &lzsReader{r: r, f: f}
			})
	}
}
