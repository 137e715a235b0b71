// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package codec

import (
	"testing"
)

func TestNames(t *testing.T) {
	want := []Name{EliasGamma, EliasDelta, LogHuffman, LogHuffmanRLE, Deflate}
	got := Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

// TestHarnessAllCodecs is scenario S7: for every registered codec, a block
// of 32 equal int32 samples round-trips, and every codec but the ones with
// fixed framing overhead shrinks below the 128-byte raw size.
func TestHarnessAllCodecs(t *testing.T) {
	in := make([]int32, 32)
	for i := range in {
		in[i] = 7
	}
	rawSize := len(in) * 4

	for _, name := range Names() {
		name := name
		t.Run(string(name), func(t *testing.T) {
			c := Get[int32](name)
			enc := c.Encode(in)
			out, err := c.Decode(enc, len(in))
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			for i := range in {
				if out[i] != in[i] {
					t.Fatalf("sample %d: got %d, want %d", i, out[i], in[i])
				}
			}
			if name != Deflate && len(enc) >= rawSize {
				t.Errorf("%s: encoded size %d not below raw size %d", name, len(enc), rawSize)
			}
		})
	}
}

func TestDispatchRoundTrip(t *testing.T) {
	cases := []struct {
		name  Name
		width Width
		s     Samples
	}{
		{EliasGamma, Width1, Samples{Width: Width1, I8: []int8{1, -1, 2, -2, 42}}},
		{EliasDelta, Width2, Samples{Width: Width2, I16: []int16{100, 200, -300, 400}}},
		{LogHuffman, Width4, Samples{Width: Width4, I32: []int32{1, 2, 4, 5, 6, -3, 8}}},
		{LogHuffmanRLE, Width4, Samples{Width: Width4, I32: []int32{5, 5, 5, 1, 1, 9}}},
		{Deflate, Width8, Samples{Width: Width8, I64: []int64{1, 2, 3, 4, 5}}},
	}
	for _, c := range cases {
		t.Run(string(c.name), func(t *testing.T) {
			enc, err := Dispatch(c.name, c.s)
			if err != nil {
				t.Fatalf("Dispatch: %v", err)
			}
			out, err := DispatchDecode(c.name, c.width, enc, c.s.Len())
			if err != nil {
				t.Fatalf("DispatchDecode: %v", err)
			}
			if out.Width != c.width {
				t.Fatalf("width mismatch: got %v, want %v", out.Width, c.width)
			}
		})
	}
}

func TestDispatchUnsupportedWidth(t *testing.T) {
	_, err := Dispatch(EliasGamma, Samples{Width: 3})
	if err != ErrUnsupportedWidth {
		t.Fatalf("got %v, want ErrUnsupportedWidth", err)
	}
	_, err = DispatchDecode(EliasGamma, 3, nil, 0)
	if err != ErrUnsupportedWidth {
		t.Fatalf("got %v, want ErrUnsupportedWidth", err)
	}
}

// TestRoundTripProperty is spec.md §8 property 5: every codec, at every
// width, recovers exactly the encoded input.
func TestRoundTripProperty(t *testing.T) {
	in32 := []int32{0, 1, -1, 1000, -1000, 181817, -181817, 2147483647, -2147483647}
	for _, name := range Names() {
		c := Get[int32](name)
		enc := c.Encode(in32)
		out, err := c.Decode(enc, len(in32))
		if err != nil {
			t.Fatalf("%s: Decode: %v", name, err)
		}
		for i := range in32 {
			if out[i] != in32[i] {
				t.Fatalf("%s: sample %d: got %d, want %d", name, i, out[i], in32[i])
			}
		}
	}
}
