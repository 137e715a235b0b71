// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package codec

import (
	"github.com/dsnet/golib/errs"

	"github.com/mrcaps/tscodec/bitstream"
	"github.com/mrcaps/tscodec/zigzag"
)

// eliasGammaCoder implements Elias-gamma coding of zig-zagged samples
// (spec.md §4.4). Grounded on original_source's eliasgamma.hpp.
type eliasGammaCoder[T zigzag.Signed] struct{}

func (eliasGammaCoder[T]) Encode(in []T) []byte {
	bs := bitstream.NewOwned(len(in)/4 + 1)
	for _, x := range in {
		// v overflows uint64 only for x == math.MinInt64 at width 8; see
		// DESIGN.md, Open Questions #5 — an inherited limitation of the
		// original, not introduced here.
		v := zigzag.Encode(x) + 1
		writeGamma(bs, v)
	}
	return bs.Bytes()
}

func (eliasGammaCoder[T]) Decode(data []byte, n int) (out []T, err error) {
	defer recoverCodecFailure(&err)
	defer errs.Recover(&err)

	bs := bitstream.Wrap(data, bitstream.Read)
	out = make([]T, n)
	for i := 0; i < n; i++ {
		v, rerr := readGamma(bs)
		errs.Panic(rerr)
		out[i] = zigzag.Decode[T](v - 1)
	}
	return out, nil
}
