// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package store supplies the sample sources and metadata lookup spec.md's
// external interfaces describe (§5): a stream of raw on-disk sample
// arrays, a SQLite-backed catalogue of those arrays' locations and shapes,
// and host-specific defaults for where to find them. Grounded throughout
// on original_source's metastore.hpp and config.hpp.
package store

import "github.com/mrcaps/tscodec/codec"

// VStream is one named sample array's metadata: where it lives on disk,
// its declared value range and scale, its width, and its point count.
// Grounded on original_source's vstream struct (metastore.hpp).
type VStream struct {
	Name    string
	TPath   string // containing directory, as originally catalogued
	VPath   string // path to the raw sample file
	VMin    int
	VMax    int
	VScale  int
	Width   codec.Width
	NPoints int
}

// SampleSource iterates over a sequence of named sample arrays. Next
// returns false, with a zero VStream and zero Samples, once the source is
// exhausted.
type SampleSource interface {
	Next() (VStream, codec.Samples, bool, error)
}

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "store: " + string(e) }
