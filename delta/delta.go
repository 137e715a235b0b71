// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package delta implements in-place first-order differencing and its
// inverse over a signed integer array. Differences and sums are computed
// in the unsigned modular space of the array's width, so the pair is
// exactly invertible even when the true mathematical difference overflows
// the signed range (spec.md §4.3).
package delta

import "github.com/mrcaps/tscodec/zigzag"

// Encode replaces a with its first-order difference: a[i] -= a[i-1], for i
// from len(a)-1 down to 1. a[0] is left unchanged.
func Encode[T zigzag.Signed](a []T) {
	var last T
	for i := range a {
		cur := a[i]
		a[i] = cur - last
		last = cur
	}
}

// Decode is the inverse of Encode: the prefix sum a[i] += a[i-1], for i
// from 1 to len(a)-1.
func Decode[T zigzag.Signed](a []T) {
	var sum T
	for i := range a {
		sum += a[i]
		a[i] = sum
	}
}
