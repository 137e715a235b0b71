// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package codec

import (
	"github.com/dsnet/golib/errs"

	"github.com/mrcaps/tscodec/bitstream"
	"github.com/mrcaps/tscodec/bitutil"
	"github.com/mrcaps/tscodec/zigzag"
)

// eliasDeltaCoder implements Elias-delta coding of zig-zagged samples
// (spec.md §4.5): the bit-width of v = zigzag(x)+1 is itself Elias-gamma
// coded, then the nb-1 low bits of v follow verbatim (the implicit leading
// 1 bit of v is never written). Grounded on original_source's
// eliasdelta.hpp.
type eliasDeltaCoder[T zigzag.Signed] struct{}

func (eliasDeltaCoder[T]) Encode(in []T) []byte {
	bs := bitstream.NewOwned(len(in)/4 + 1)
	for _, x := range in {
		v := zigzag.Encode(x) + 1
		nb := bitutil.Nbits(v)
		nbnb := bitutil.Nbits(uint64(nb))
		bs.WriteBits(0, nbnb-1)
		bs.WriteBits(uint64(nb), nbnb)
		bs.WriteBits(v&^(uint64(1)<<nb), nb-1)
	}
	return bs.Bytes()
}

func (eliasDeltaCoder[T]) Decode(data []byte, n int) (out []T, err error) {
	defer recoverCodecFailure(&err)
	defer errs.Recover(&err)

	bs := bitstream.Wrap(data, bitstream.Read)
	out = make([]T, n)
	for i := 0; i < n; i++ {
		var nbnb uint
		for {
			bit, rerr := bs.ReadBit()
			errs.Panic(rerr)
			if bit {
				break
			}
			nbnb++
		}
		nbBits, rerr := bs.ReadBits(nbnb)
		errs.Panic(rerr)
		nb := uint(nbBits | (uint64(1) << nbnb))

		vBits, rerr := bs.ReadBits(nb - 1)
		errs.Panic(rerr)
		v := vBits | (uint64(1) << (nb - 1))
		out[i] = zigzag.Decode[T](v - 1)
	}
	return out, nil
}
