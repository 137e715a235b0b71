// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mrcaps/tscodec/codec"
)

func writeRawInt32(t *testing.T, dir, name string, values []int32) string {
	t.Helper()
	path := filepath.Join(dir, name)
	raw := codec.ToLEBytes(values)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("writing fixture file: %v", err)
	}
	return path
}

func TestFileSourceRoundTrip(t *testing.T) {
	dir := t.TempDir()
	values := []int32{0, 181817, 363636, 545454, 363636, 363636, 545454, 1, 2, 3, 4, 5}
	path := writeRawInt32(t, dir, "stream2.raw", values)

	vs := VStream{
		Name: "stream2", TPath: dir, VPath: path,
		Width: codec.Width4, NPoints: len(values),
	}
	src := NewFileSource([]VStream{vs})

	gotVS, samples, ok, err := src.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if !ok {
		t.Fatal("expected ok=true for first stream")
	}
	if gotVS.Name != "stream2" {
		t.Fatalf("Name = %q, want %q", gotVS.Name, "stream2")
	}
	if diff := cmp.Diff(values, samples.I32); diff != "" {
		t.Errorf("sample mismatch (-want +got):\n%s", diff)
	}

	_, _, ok, err = src.Next()
	if err != nil {
		t.Fatalf("Next (exhausted): %v", err)
	}
	if ok {
		t.Fatal("expected ok=false after exhausting the source")
	}
}

func TestFileSourceShortFile(t *testing.T) {
	dir := t.TempDir()
	path := writeRawInt32(t, dir, "short.raw", []int32{1, 2, 3})

	vs := VStream{Name: "short", VPath: path, Width: codec.Width4, NPoints: 10}
	src := NewFileSource([]VStream{vs})

	if _, _, _, err := src.Next(); err == nil {
		t.Fatal("expected an error reading fewer bytes than NPoints*Width declares")
	}
}
