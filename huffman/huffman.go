// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package huffman builds and serialises the small, deterministic Huffman
// trees used by the log-Huffman codec (spec.md §4.6). Symbols are bit-widths
// in [1,65] — the number of bits needed to hold a zig-zagged sample plus one
// — not arbitrary byte values, so the whole tree comfortably fits a few dozen
// nodes and a handful of header bits.
package huffman

import (
	"container/heap"
	"sort"

	"github.com/dsnet/golib/errs"
	"github.com/mrcaps/tscodec/bitutil"
)

// Internal marks a non-leaf Node. Leaves carry a real symbol value, which is
// always >= 1 for this package's use (bit-widths), so Internal == -1 can
// never collide with one.
const Internal = -1

// Node is one entry in a tree's flat arena. Leaves have Left == Right == -1.
type Node struct {
	Symbol int
	Weight uint64
	Left   int
	Right  int
}

func (n Node) isLeaf() bool { return n.Left == -1 && n.Right == -1 }

// Histogram maps a symbol (bit-width) to its observed frequency.
type Histogram map[int]uint64

// pqueue is a container/heap over arena indices, ordered by (weight,
// insertion order). Leaves are pushed in ascending-symbol order before any
// internal node is created, and internal nodes are pushed in creation order,
// so arena index doubles as a stable tie-break: building the same histogram
// twice always yields the same tree (spec.md §8, property 7).
type pqueue struct {
	arena *[]Node
	idx   []int
}

func (q pqueue) Len() int { return len(q.idx) }
func (q pqueue) Less(i, j int) bool {
	a, b := (*q.arena)[q.idx[i]], (*q.arena)[q.idx[j]]
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	return q.idx[i] < q.idx[j]
}
func (q pqueue) Swap(i, j int) { q.idx[i], q.idx[j] = q.idx[j], q.idx[i] }
func (q *pqueue) Push(x interface{}) { q.idx = append(q.idx, x.(int)) }
func (q *pqueue) Pop() interface{} {
	old := q.idx
	n := len(old)
	x := old[n-1]
	q.idx = old[:n-1]
	return x
}

// BuildTree constructs a Huffman tree over hist. It returns the node arena
// and the index of the root, or root == -1 if hist is empty (no symbols
// observed — the caller must not attempt to encode a tree in that case).
//
// A histogram with a single distinct symbol yields a degenerate tree: the
// root is itself a leaf, with no internal nodes at all (spec.md §4.6, edge
// cases). Callers that need a code for that symbol must treat it as a 1-bit
// code, since a bare root has tree depth zero.
func BuildTree(hist Histogram) ([]Node, int) {
	symbols := make([]int, 0, len(hist))
	for s := range hist {
		symbols = append(symbols, s)
	}
	sort.Ints(symbols)

	var arena []Node
	q := &pqueue{arena: &arena}
	for _, s := range symbols {
		arena = append(arena, Node{Symbol: s, Weight: hist[s], Left: -1, Right: -1})
		heap.Push(q, len(arena)-1)
	}
	heap.Init(q)

	for q.Len() > 1 {
		a := heap.Pop(q).(int)
		b := heap.Pop(q).(int)
		arena = append(arena, Node{
			Symbol: Internal,
			Weight: arena[a].Weight + arena[b].Weight,
			Left:   a,
			Right:  b,
		})
		heap.Push(q, len(arena)-1)
	}

	if len(arena) == 0 {
		return arena, -1
	}
	return arena, q.idx[0]
}

// LookupEntry is one symbol's code: the low Length bits of Bits, ready to
// pass directly to (*bitstream.Bitstream).WriteBits.
type LookupEntry struct {
	Bits   uint64
	Length uint
}

// BuildLookup walks the tree rooted at root and returns a code for every
// leaf symbol, indexed by symbol value. The returned slice is sized to the
// largest symbol present plus one; callers index it directly.
func BuildLookup(arena []Node, root int) []LookupEntry {
	maxSymbol := 0
	for _, n := range arena {
		if n.isLeaf() && n.Symbol > maxSymbol {
			maxSymbol = n.Symbol
		}
	}
	lut := make([]LookupEntry, maxSymbol+1)

	var walk func(idx int, bitsSoFar uint64, depth uint)
	walk = func(idx int, bitsSoFar uint64, depth uint) {
		n := arena[idx]
		if n.isLeaf() {
			if depth == 0 {
				// Degenerate single-symbol tree: force a 1-bit code.
				lut[n.Symbol] = LookupEntry{Bits: 0, Length: 1}
				return
			}
			lut[n.Symbol] = LookupEntry{Bits: bitutil.Reverse64(bitsSoFar, depth), Length: depth}
			return
		}
		walk(n.Left, bitsSoFar, depth+1)
		walk(n.Right, bitsSoFar|(1<<depth), depth+1)
	}
	walk(root, 0, 0)
	return lut
}

// DecodeSymbol walks the tree from root, consuming one bit per internal node
// visited, and returns the leaf symbol reached. For a degenerate single-leaf
// tree (root has no children) it consumes exactly one bit — matching the
// forced 1-bit code BuildLookup assigns that symbol — and discards its
// value, since there is only one possible symbol to decode to.
func DecodeSymbol(arena []Node, root int, readBit func() (bool, error)) (int, error) {
	errs.Assert(root >= 0, Error("decode against an empty tree"))
	if arena[root].isLeaf() {
		if _, err := readBit(); err != nil {
			return 0, err
		}
		return arena[root].Symbol, nil
	}
	idx := root
	for !arena[idx].isLeaf() {
		bit, err := readBit()
		if err != nil {
			return 0, err
		}
		if bit {
			idx = arena[idx].Right
		} else {
			idx = arena[idx].Left
		}
	}
	return arena[idx].Symbol, nil
}

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "huffman: " + string(e) }
