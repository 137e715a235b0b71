// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package codec

import (
	"github.com/mrcaps/tscodec/bitstream"
	"github.com/mrcaps/tscodec/bitutil"
)

// writeGamma writes v (v >= 1) as (nbits(v)-1) zero bits, then the
// nbits(v) low bits of v, whose leading 1 bit ends the zero prefix — the
// raw Elias-gamma primitive, shared by
// eliasGammaCoder and the run-length variant of log-Huffman, which both
// need to code a positive integer with no prior knowledge of its
// magnitude.
func writeGamma(bs *bitstream.Bitstream, v uint64) {
	nb := bitutil.Nbits(v)
	bs.WriteBits(0, nb-1)
	bs.WriteBits(v, nb)
}

// readGamma is the inverse of writeGamma.
func readGamma(bs *bitstream.Bitstream) (uint64, error) {
	var nb uint
	for {
		bit, err := bs.ReadBit()
		if err != nil {
			return 0, err
		}
		if bit {
			break
		}
		nb++
	}
	b, err := bs.ReadBits(nb)
	if err != nil {
		return 0, err
	}
	return b | (uint64(1) << nb), nil
}
