// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package zigzag implements the zig-zag bijection between signed integers
// and unsigned integers, mapping values of small magnitude to small unsigned
// values regardless of sign.
package zigzag

// Signed is the set of integer widths the codec layer operates on.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Encode maps a signed integer x to an unsigned integer, such that small
// magnitudes (positive or negative) map to small unsigned values. Go's
// int64 conversion sign-extends x to full width before the shift, which
// makes the classic 64-bit zig-zag identity (x<<1)^(x>>63) produce exactly
// the same low-order bits as the narrower, width-specific formula in
// spec.md §4.2 would — the upper bits introduced by the sign extension
// cancel in the XOR.
func Encode[T Signed](x T) uint64 {
	xi := int64(x)
	return uint64((xi << 1) ^ (xi >> 63))
}

// Decode is the inverse of Encode. The caller must supply the same width T
// that produced u, or the final truncation will silently drop high bits.
func Decode[T Signed](u uint64) T {
	v := int64(u>>1) ^ -int64(u&1)
	return T(v)
}
