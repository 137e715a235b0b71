// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package codec

import (
	"testing"

	"github.com/mrcaps/tscodec/internal/testsupport"
)

// TestRoundTripSyntheticWalk exercises every codec against a deterministic
// bounded random walk, the sensor-like shape cmd/tscodec-bench generates
// when no input file is given, rather than only hand-picked sample lists.
func TestRoundTripSyntheticWalk(t *testing.T) {
	r := testsupport.NewRand(42)
	walk := r.Walk(500, -1<<20, 1<<20, 5000)
	in := make([]int32, len(walk))
	for i, v := range walk {
		in[i] = int32(v)
	}

	for _, name := range Names() {
		c := Get[int32](name)
		enc := c.Encode(in)
		out, err := c.Decode(enc, len(in))
		if err != nil {
			t.Fatalf("%s: Decode: %v", name, err)
		}
		for i := range in {
			if out[i] != in[i] {
				t.Fatalf("%s: sample %d: got %d, want %d", name, i, out[i], in[i])
			}
		}
	}
}
