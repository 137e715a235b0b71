// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testsupport

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/mrcaps/tscodec/codec"
)

// TestDecodeBitGenGammaToken checks the "G:<v>" token against the literal
// Elias-gamma encoding of v=5 (nbits(5)=3, so 2 zero bits, then the 3-bit
// value 101, whose leading 1 ends the zero prefix), hand-derived rather
// than cross-checked against
// codec.writeGamma so this test stays meaningful on its own.
func TestDecodeBitGenGammaToken(t *testing.T) {
	got, err := DecodeBitGen(">>>\n> G:5")
	if err != nil {
		t.Fatalf("DecodeBitGen: %v", err)
	}
	want := []byte{0b00101000}
	if !bytes.Equal(got, want) {
		t.Fatalf("DecodeBitGen(G:5) = %08b, want %08b", got, want)
	}
}

func TestDecodeBitGenGammaTokenRejectsZero(t *testing.T) {
	if _, err := DecodeBitGen(">>>\nG:0"); err == nil {
		t.Fatal("expected an error for a gamma token of zero (Elias-gamma has no code for 0)")
	}
}

// TestLoadSamplesTiling exercises the per-tile offset LoadSamples applies
// when growing a short fixture file to n samples: the second tile must
// not reproduce the first tile's values verbatim, since an unbroken
// repeat would hand LogHuffmanRLE a run no real sensor trace has.
func TestLoadSamplesTiling(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.raw")
	base := []int32{10, 20, 30}
	if err := os.WriteFile(path, codec.ToLEBytes(base), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	s, err := LoadSamples(path, codec.Width4, 7)
	if err != nil {
		t.Fatalf("LoadSamples: %v", err)
	}
	if s.Len() != 7 {
		t.Fatalf("Len() = %d, want 7", s.Len())
	}
	for i, want := range base {
		if s.I32[i] != want {
			t.Fatalf("sample %d = %d, want %d (first tile should be untouched)", i, s.I32[i], want)
		}
	}
	// Second tile starts at index 3; its values must be offset by +1 from
	// the first tile's, not an exact repeat.
	for i, want := range base {
		got := s.I32[i+len(base)]
		if got != want+1 {
			t.Fatalf("sample %d = %d, want %d (second tile offset by one)", i+len(base), got, want+1)
		}
	}
}

func TestLoadSamplesShorterThanFileIsUntouched(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.raw")
	base := []int32{1, 2, 3, 4, 5}
	if err := os.WriteFile(path, codec.ToLEBytes(base), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	s, err := LoadSamples(path, codec.Width4, 3)
	if err != nil {
		t.Fatalf("LoadSamples: %v", err)
	}
	if s.Len() != len(base) {
		t.Fatalf("Len() = %d, want %d (n below the file's own sample count must not truncate)", s.Len(), len(base))
	}
}

func TestLoadSamplesEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.raw")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := LoadSamples(path, codec.Width4, 10); err == nil {
		t.Fatal("expected an error growing an empty file")
	}
}
