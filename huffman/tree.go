// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"github.com/dsnet/golib/errs"
	"github.com/mrcaps/tscodec/bitstream"
	"github.com/mrcaps/tscodec/bitutil"
)

// bounds returns the smallest and largest leaf symbol in arena.
func bounds(arena []Node) (min, max int) {
	min, max = -1, -1
	for _, n := range arena {
		if !n.isLeaf() {
			continue
		}
		if min == -1 || n.Symbol < min {
			min = n.Symbol
		}
		if max == -1 || n.Symbol > max {
			max = n.Symbol
		}
	}
	return min, max
}

// EncodeTree serialises the tree rooted at root as a 7-bit min_symbol
// header, a 7-bit value_bits header, and a pre-order traversal: each
// internal node writes a 0 bit followed by its left then right subtree;
// each leaf writes a 1 bit followed by value_bits bits of (symbol - min)
// (spec.md §4.6). root must not be -1 — callers encoding an empty block
// must skip tree serialisation entirely (spec.md §4.6, empty blocks).
func EncodeTree(bs *bitstream.Bitstream, arena []Node, root int) {
	errs.Assert(root >= 0, Error("encode against an empty tree"))

	min, max := bounds(arena)
	errs.Assert(min >= 0 && min < 128, Error("min_symbol exceeds 7-bit header"))
	valueBits := bitutil.Nbits(uint64(max - min))

	bs.WriteBits(uint64(min), 7)
	bs.WriteBits(uint64(valueBits), 7)

	var rec func(idx int)
	rec = func(idx int) {
		n := arena[idx]
		if n.isLeaf() {
			bs.WriteBit(true)
			bs.WriteBits(uint64(n.Symbol-min), valueBits)
			return
		}
		bs.WriteBit(false)
		rec(n.Left)
		rec(n.Right)
	}
	rec(root)
}

// DecodeTree reads the headers written by EncodeTree and reconstructs the
// tree, returning its arena and root index.
func DecodeTree(bs *bitstream.Bitstream) ([]Node, int, error) {
	minRaw, err := bs.ReadBits(7)
	if err != nil {
		return nil, -1, err
	}
	valueBitsRaw, err := bs.ReadBits(7)
	if err != nil {
		return nil, -1, err
	}
	var arena []Node
	root, err := decodeTreeBody(bs, &arena, int(minRaw), uint(valueBitsRaw))
	if err != nil {
		return nil, -1, err
	}
	return arena, root, nil
}

// decodeTreeBody recursively reconstructs one subtree, appending new nodes
// to *arena, and returns the index of the subtree's root. Split from
// DecodeTree so the one-time header read and the recursive body each have a
// single, clearly named entry point.
func decodeTreeBody(bs *bitstream.Bitstream, arena *[]Node, min int, valueBits uint) (int, error) {
	isLeaf, err := bs.ReadBit()
	if err != nil {
		return -1, err
	}
	if isLeaf {
		v, err := bs.ReadBits(valueBits)
		if err != nil {
			return -1, err
		}
		*arena = append(*arena, Node{Symbol: min + int(v), Left: -1, Right: -1})
		return len(*arena) - 1, nil
	}

	left, err := decodeTreeBody(bs, arena, min, valueBits)
	if err != nil {
		return -1, err
	}
	right, err := decodeTreeBody(bs, arena, min, valueBits)
	if err != nil {
		return -1, err
	}
	*arena = append(*arena, Node{Symbol: Internal, Left: left, Right: right})
	return len(*arena) - 1, nil
}
