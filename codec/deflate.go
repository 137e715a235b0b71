// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"unsafe"

	"github.com/klauspost/compress/zlib"
	"github.com/mrcaps/tscodec/zigzag"
)

// deflateCoder is the general-purpose baseline codec (spec.md §4.7): it
// packs samples into their little-endian byte representation and deflates
// that, exploiting no structure specific to time-series samples. Grounded
// on original_source's zlib.hpp, which likewise compresses the raw sample
// memory rather than a zig-zagged or delta-coded form; the byte packing
// here is explicit (encoding/binary) rather than a reinterpreted memory
// buffer, so the wire format does not depend on host endianness.
type deflateCoder[T zigzag.Signed] struct{}

func (deflateCoder[T]) Encode(in []T) []byte {
	raw := ToLEBytes(in)

	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(raw); err != nil {
		panic(Error("zlib write: " + err.Error()))
	}
	if err := w.Close(); err != nil {
		panic(Error("zlib close: " + err.Error()))
	}
	return buf.Bytes()
}

func (deflateCoder[T]) Decode(data []byte, n int) ([]T, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: zlib: %v", ErrCodecFailure, err)
	}
	defer r.Close()

	var zero T
	width := int(unsafe.Sizeof(zero))
	raw := make([]byte, n*width)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, fmt.Errorf("%w: zlib: %v", ErrCodecFailure, err)
	}
	return FromLEBytes[T](raw), nil
}

// ToLEBytes packs in into its little-endian byte representation, one
// T-width chunk per sample. Used by the deflate shim and by
// cmd/tscodec-bench when generating synthetic sample data; the store
// package goes the other way, through SamplesFromLE and FromLEBytes.
func ToLEBytes[T zigzag.Signed](in []T) []byte {
	var zero T
	width := int(unsafe.Sizeof(zero))
	buf := make([]byte, len(in)*width)
	for i, x := range in {
		u := uint64(x)
		switch width {
		case 1:
			buf[i] = byte(u)
		case 2:
			binary.LittleEndian.PutUint16(buf[i*2:], uint16(u))
		case 4:
			binary.LittleEndian.PutUint32(buf[i*4:], uint32(u))
		case 8:
			binary.LittleEndian.PutUint64(buf[i*8:], u)
		}
	}
	return buf
}

// FromLEBytes is the inverse of ToLEBytes.
func FromLEBytes[T zigzag.Signed](buf []byte) []T {
	var zero T
	width := int(unsafe.Sizeof(zero))
	out := make([]T, len(buf)/width)
	for i := range out {
		switch width {
		case 1:
			out[i] = T(int8(buf[i]))
		case 2:
			out[i] = T(int16(binary.LittleEndian.Uint16(buf[i*2:])))
		case 4:
			out[i] = T(int32(binary.LittleEndian.Uint32(buf[i*4:])))
		case 8:
			out[i] = T(int64(binary.LittleEndian.Uint64(buf[i*8:])))
		}
	}
	return out
}
