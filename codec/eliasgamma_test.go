// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package codec

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestEliasGammaTiny is scenario S4: W=4, a round-trip over a small signed
// array.
func TestEliasGammaTiny(t *testing.T) {
	in := []int32{0, -1, 1, -2, 2, -3, 3}
	c := Get[int32](EliasGamma)
	enc := c.Encode(in)
	out, err := c.Decode(enc, len(in))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEliasGammaBasic(t *testing.T) {
	c32 := Get[int32](EliasGamma)
	din := []int32{1, 2, 4, 5, 6, -3, 8}
	enc := c32.Encode(din)
	out, err := c32.Decode(enc, len(din))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(din, out); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}

	c64 := Get[int64](EliasGamma)
	din3 := []int64{31014740000, 31000620000, 30985390000, 30968450000, 30950330000}
	enc3 := c64.Encode(din3)
	out3, err := c64.Decode(enc3, len(din3))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(din3, out3); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEliasGammaEmpty(t *testing.T) {
	c := Get[int16](EliasGamma)
	enc := c.Encode(nil)
	out, err := c.Decode(enc, 0)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty output, got %v", out)
	}
}
