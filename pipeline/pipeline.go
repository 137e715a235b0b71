// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package pipeline runs the encode/decode/verify harness spec.md §4.8
// describes: optionally delta-prepass a sample block, encode it with a
// named codec, decode it back, and report size and timing. Grounded on the
// teacher's internal/tool/bench package (Result{R,D float64} shape,
// RegisterEncoder-style suite running) and original_source's
// compressor.hpp#test_roundtrip_inner, which this mirrors field-for-field:
// delta pre-pass, timed encode, timed decode, byte-for-byte comparison.
package pipeline

import (
	"fmt"
	"time"

	"github.com/mrcaps/tscodec/codec"
	"github.com/mrcaps/tscodec/delta"
	"github.com/mrcaps/tscodec/zigzag"
)

// Timer supplies wall-clock time to RoundTrip. The default, used when nil
// is passed, wraps time.Now; tests can substitute a deterministic one.
type Timer interface {
	Now() time.Time
}

type realTimer struct{}

func (realTimer) Now() time.Time { return time.Now() }

// Result reports one codec's performance and correctness over a single
// sample block, in the same R/D-style shape as the teacher's
// internal/tool/bench.Result, extended with the fields spec.md §4.8's
// harness needs: sizes, sample count, and round-trip status.
type Result struct {
	Name     codec.Name
	Width    codec.Width
	N        int // sample count
	RawBytes int
	EncBytes int
	Ratio    float64 // RawBytes / EncBytes; 0 if EncBytes is 0
	EncRate  float64 // MB/s
	DecRate  float64 // MB/s
	OK       bool
}

// RoundTripMismatch reports the first sample at which a decoded value
// diverged from its original.
type RoundTripMismatch struct {
	Index int
	Want  int64
	Got   int64
}

func (e *RoundTripMismatch) Error() string {
	return fmt.Sprintf("pipeline: round-trip mismatch at sample %d: want %d, got %d", e.Index, e.Want, e.Got)
}

// RoundTrip encodes in with the named codec (optionally delta-prepassing
// it first), decodes the result, and compares it against the original. It
// never mutates in: a private copy absorbs the delta pre-pass, since that
// transform is in-place.
func RoundTrip(name codec.Name, deltaPrepass bool, in codec.Samples, timer Timer) (Result, error) {
	if timer == nil {
		timer = realTimer{}
	}
	switch in.Width {
	case codec.Width1:
		return roundTrip(name, deltaPrepass, in.I8, in.Width, timer)
	case codec.Width2:
		return roundTrip(name, deltaPrepass, in.I16, in.Width, timer)
	case codec.Width4:
		return roundTrip(name, deltaPrepass, in.I32, in.Width, timer)
	case codec.Width8:
		return roundTrip(name, deltaPrepass, in.I64, in.Width, timer)
	default:
		return Result{}, codec.ErrUnsupportedWidth
	}
}

func roundTrip[T zigzag.Signed](name codec.Name, deltaPrepass bool, orig []T, width codec.Width, timer Timer) (Result, error) {
	res := Result{Name: name, Width: width, N: len(orig), RawBytes: len(orig) * int(width)}

	work := append([]T(nil), orig...)
	if deltaPrepass {
		delta.Encode(work)
	}

	c := codec.Get[T](name)

	t0 := timer.Now()
	enc := c.Encode(work)
	tEnc := timer.Now().Sub(t0)

	t1 := timer.Now()
	dec, err := c.Decode(enc, len(work))
	tDec := timer.Now().Sub(t1)
	if err != nil {
		return res, err
	}

	if deltaPrepass {
		delta.Decode(dec)
	}

	res.EncBytes = len(enc)
	if res.EncBytes > 0 {
		res.Ratio = float64(res.RawBytes) / float64(res.EncBytes)
	}
	res.EncRate = megabytesPerSec(res.RawBytes, tEnc)
	res.DecRate = megabytesPerSec(res.RawBytes, tDec)

	for i := range orig {
		if dec[i] != orig[i] {
			return res, &RoundTripMismatch{Index: i, Want: int64(orig[i]), Got: int64(dec[i])}
		}
	}
	res.OK = true
	return res, nil
}

func megabytesPerSec(nbytes int, d time.Duration) float64 {
	secs := d.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(nbytes) / secs / 1e6
}

// RunSuite runs RoundTrip for every registered codec over the same sample
// block, mirroring original_source's test_roundtrips loop over CoderName
// values.
func RunSuite(deltaPrepass bool, in codec.Samples, timer Timer) ([]Result, []error) {
	results := make([]Result, 0, len(codec.Names()))
	errs := make([]error, 0, len(codec.Names()))
	for _, name := range codec.Names() {
		res, err := RoundTrip(name, deltaPrepass, in, timer)
		results = append(results, res)
		errs = append(errs, err)
	}
	return results, errs
}
