// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bitutil provides the small set of bit-twiddling primitives shared
// by the codec and huffman packages: counting the highest set bit and
// reversing bit order within a byte or a 64-bit word.
package bitutil

import "math/bits"

var reverseLUT [256]byte

func init() {
	for i := range reverseLUT {
		b := byte(i)
		b = (b&0xaa)>>1 | (b&0x55)<<1
		b = (b&0xcc)>>2 | (b&0x33)<<2
		b = (b&0xf0)>>4 | (b&0x0f)<<4
		reverseLUT[i] = b
	}
}

// Nbits returns one plus the position of the highest set bit of x, so that
// Nbits(0) == 0, Nbits(1) == 1, and Nbits(2) == 2. This is ⌊log2 x⌋ + 1 for
// x > 0.
func Nbits(x uint64) uint {
	return uint(bits.Len64(x))
}

// Reverse8 reverses the bits of b.
func Reverse8(b byte) byte {
	return reverseLUT[b]
}

// Reverse64 reverses the low n bits of v, discarding the rest. It is used by
// the huffman package to turn a code accumulated LSB-first during the tree
// walk (first edge in bit 0) into the MSB-first form bitstream.WriteBits
// expects.
func Reverse64(v uint64, n uint) uint64 {
	var r uint64
	for i := byte(0); i < 8; i++ {
		r |= uint64(reverseLUT[byte(v>>(8*i))]) << (8 * (7 - i))
	}
	if n >= 64 {
		return r
	}
	return r >> (64 - n)
}
