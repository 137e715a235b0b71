// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testsupport

import (
	"encoding/hex"
	"io"
	"os"

	"github.com/mrcaps/tscodec/codec"
	"github.com/mrcaps/tscodec/zigzag"
)

// LoadSamples reads file as a little-endian sample array of width w
// (store.FileSource's own on-disk format) and, when it holds fewer than n
// samples, grows it to exactly n by tiling the sequence with an
// increasing per-tile offset folded into each value. A negative n
// returns the file's samples unmodified.
//
// Plain byte-for-byte tiling — the teacher's LoadFile masked each repeat
// of a text/binary corpus with an incrementing XOR byte, so replication
// didn't artificially favor codecs with a large LZ77 match window — is
// the wrong adaptation for this module: none of its codecs have a match
// window, but LogHuffmanRLE does collapse runs of equal values, and an
// unbroken byte-for-byte tile boundary would hand it a run no real
// sensor trace produces. The per-tile value offset keeps a tiled fixture
// honest against run-length coding the same way the teacher's masking
// kept its fixtures honest against match-window coding.
func LoadSamples(file string, w codec.Width, n int) (codec.Samples, error) {
	raw, err := os.ReadFile(file)
	if err != nil {
		return codec.Samples{}, err
	}
	s, err := codec.SamplesFromLE(w, raw)
	if err != nil {
		return codec.Samples{}, err
	}
	if n < 0 || s.Len() >= n {
		return s, nil
	}
	if s.Len() == 0 {
		return codec.Samples{}, io.ErrNoProgress
	}

	switch w {
	case codec.Width1:
		return codec.Samples{Width: w, I8: tile(s.I8, n)}, nil
	case codec.Width2:
		return codec.Samples{Width: w, I16: tile(s.I16, n)}, nil
	case codec.Width4:
		return codec.Samples{Width: w, I32: tile(s.I32, n)}, nil
	case codec.Width8:
		return codec.Samples{Width: w, I64: tile(s.I64, n)}, nil
	default:
		return codec.Samples{}, codec.ErrUnsupportedWidth
	}
}

// tile repeats base until it reaches length n, adding an increasing
// per-tile offset to each repeated value so consecutive tiles never
// produce an unbroken run at the seam.
func tile[T zigzag.Signed](base []T, n int) []T {
	out := make([]T, n)
	var offset T
	for i := range out {
		idx := i % len(base)
		out[i] = base[idx] + offset
		if idx == len(base)-1 {
			offset++
		}
	}
	return out
}

// MustLoadSamples calls LoadSamples and panics on error.
func MustLoadSamples(file string, w codec.Width, n int) codec.Samples {
	s, err := LoadSamples(file, w, n)
	if err != nil {
		panic(err)
	}
	return s
}

// MustDecodeHex decodes a hexadecimal string and panics on error.
func MustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// MustDecodeBitGen must decode a BitGen formatted string or else panics.
func MustDecodeBitGen(s string) []byte {
	b, err := DecodeBitGen(s)
	if err != nil {
		panic(err)
	}
	return b
}
