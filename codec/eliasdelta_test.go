// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package codec

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestEliasDeltaMid is scenario S5: W=8, a round-trip over a mid-magnitude
// signed array.
func TestEliasDeltaMid(t *testing.T) {
	in := []int64{31014740000, 31000620000, 30985390000, 30968450000, 30950330000}
	c := Get[int64](EliasDelta)
	enc := c.Encode(in)
	out, err := c.Decode(enc, len(in))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEliasDeltaBasic(t *testing.T) {
	c32 := Get[int32](EliasDelta)
	din := []int32{1, 2, 4, 5, 6, -3, 8}
	enc := c32.Encode(din)
	out, err := c32.Decode(enc, len(din))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(din, out); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}

	din2 := []int32{0, 181817, 363636, 545454, 363636, 363636, 545454, 1, 2, 3, 4, 5}
	enc2 := c32.Encode(din2)
	out2, err := c32.Decode(enc2, len(din2))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(din2, out2); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}
}
