// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzstring

import (
	"github.com/dsnet/lzstring/internal"
	"github.com/dsnet/lzstring/internal/bitstream"
	"github.com/dsnet/lzstring/internal/errors"
)

// trieNode is a string that has been assigned a dictionary code.
// Nodes directly below the root hold a single code unit, and are pending
// until the literal introducing that unit has been written.
type trieNode struct {
	code    uint32
	unit    uint16 // Last code unit of the string
	pending bool
}

// encoder finds the longest known prefix of the remaining input with a trie.
// Nodes are kept in an arena and referenced by index; node 0 is the root.
type encoder struct {
	bw    *bitstream.Writer
	cw    codeWidth
	nodes []trieNode
	edges map[uint64]int32 // Maps parent<<16 | unit to the child index
	next  uint32           // Next code to assign
}

func (e *encoder) child(parent int32, c uint16) (int32, bool) {
	i, ok := e.edges[uint64(parent)<<16|uint64(c)]
	return i, ok
}

func (e *encoder) addChild(parent int32, c uint16, pending bool) {
	e.edges[uint64(parent)<<16|uint64(c)] = int32(len(e.nodes))
	e.nodes = append(e.nodes, trieNode{code: e.next, unit: c, pending: pending})
	e.next++
}

// emit writes the code for node i, introducing it with a literal if it is
// still pending.
func (e *encoder) emit(i int32) {
	n := &e.nodes[i]
	if n.pending {
		if n.unit < 256 {
			e.bw.WriteBits(codeLiteral8, e.cw.numBits)
			e.bw.WriteBits(uint32(n.unit), 8)
		} else {
			e.bw.WriteBits(codeLiteral16, e.cw.numBits)
			e.bw.WriteBits(uint32(n.unit), 16)
		}
		e.cw.advance()
		n.pending = false
	} else {
		e.bw.WriteBits(n.code, e.cw.numBits)
	}
	e.cw.advance()
}

// compress encodes units as a sequence of symbols, each bitsPerChar wide.
// An empty input produces no symbols at all.
func compress(units []uint16, bitsPerChar uint) []uint16 {
	if len(units) == 0 {
		return nil
	}
	e := newEncoder(bitsPerChar)
	syms := e.encode(units)
	if internal.Debug {
		if err := e.checkInvariants(); err != nil {
			panic(err)
		}
	}
	return syms
}

func newEncoder(bitsPerChar uint) *encoder {
	return &encoder{
		bw:    bitstream.NewWriter(bitsPerChar),
		cw:    newCodeWidth(),
		nodes: make([]trieNode, 1, 256),
		edges: make(map[uint64]int32),
		next:  firstCode,
	}
}

func (e *encoder) encode(units []uint16) []uint16 {
	var node int32
	for _, c := range units {
		if _, ok := e.child(0, c); !ok {
			e.addChild(0, c, true)
		}
		if i, ok := e.child(node, c); ok {
			node = i
			continue
		}
		e.emit(node)
		e.addChild(node, c, false)
		node, _ = e.child(0, c)
	}
	e.emit(node)
	e.bw.WriteBits(codeEOS, e.cw.numBits)
	e.bw.Flush()
	return e.bw.Symbols()
}

// checkInvariants verifies that every assigned code is in the trie exactly
// once and that every literal has been written.
func (e *encoder) checkInvariants() error {
	if int(e.next-firstCode) != len(e.nodes)-1 {
		return errors.Error{Code: errors.Internal, Pkg: "lzstring", Msg: "dictionary size does not match the trie"}
	}
	for i, n := range e.nodes[1:] {
		if n.pending {
			return errors.Error{Code: errors.Internal, Pkg: "lzstring", Msg: "literal never written"}
		}
		if n.code != uint32(i)+firstCode {
			return errors.Error{Code: errors.Internal, Pkg: "lzstring", Msg: "codes assigned out of order"}
		}
	}
	return nil
}
