// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package testsupport collects deterministic fixture generators shared by
// this module's package tests: a seeded PRNG, fixture-file loading, and a
// compact bit-literal notation for constructing exact bitstream payloads.
// Adapted from the teacher's internal/testutil, generalized from a single
// compressed-stream test corpus to the sample-array fixtures spec.md's
// codecs need (widths 1/2/4/8, delta-friendly walks, run-heavy blocks).
package testsupport

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
)

// Rand is a deterministic pseudo-random generator backed by AES in CTR-ish
// feedback mode, so fixture data stays identical across Go versions and
// platforms (unlike math/rand's output, which the standard library does
// not promise to keep stable forever).
type Rand struct {
	cipher.Block
	blk [aes.BlockSize]byte
}

// NewRand returns a Rand seeded from seed. The same seed always produces
// the same output sequence.
func NewRand(seed int) *Rand {
	var key [aes.BlockSize]byte
	binary.LittleEndian.PutUint64(key[:], uint64(seed))
	r, _ := aes.NewCipher(key[:])
	return &Rand{Block: r}
}

// Int returns the next pseudo-random non-negative int in the sequence.
func (r *Rand) Int() (x int) {
	r.Encrypt(r.blk[:], r.blk[:])
	x |= int(r.blk[0]) << 0
	x |= int(r.blk[1]) << 8
	x |= int(r.blk[2]) << 16
	x |= int(r.blk[3]) << 24
	x |= int(r.blk[4]) << 32
	x |= int(r.blk[5]) << 40
	x |= int(r.blk[6]) << 48
	x |= int(r.blk[7]&0x3f) << 56
	return x
}

// Intn returns a pseudo-random int in [0, n).
func (r *Rand) Intn(n int) int {
	return r.Int() % n
}

// Int63Range returns a pseudo-random int64 in [lo, hi].
func (r *Rand) Int63Range(lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	span := hi - lo + 1
	return lo + int64(r.Intn(int(span)))
}

// Bytes returns n pseudo-random bytes.
func (r *Rand) Bytes(n int) []byte {
	b := make([]byte, n)
	bb := b
	for len(bb) > 0 {
		r.Encrypt(r.blk[:], r.blk[:])
		cnt := copy(bb, r.blk[:])
		bb = bb[cnt:]
	}
	return b
}

// Walk generates a length-n bounded random walk clamped to [lo, hi], one
// int64 per sample, stepping by a jitter in [-maxStep, maxStep] each tick.
// The codec package's TestRoundTripSyntheticWalk uses it for delta-friendly
// synthetic sample blocks; cmd/tscodec-bench's -file-less mode generates a
// similar walk with math/rand instead.
func (r *Rand) Walk(n int, lo, hi, maxStep int64) []int64 {
	out := make([]int64, n)
	var cur int64
	for i := range out {
		cur += r.Int63Range(-maxStep, maxStep)
		if cur < lo {
			cur = lo
		}
		if cur > hi {
			cur = hi
		}
		out[i] = cur
	}
	return out
}
