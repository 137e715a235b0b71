// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package codec

import (
	"github.com/dsnet/golib/errs"

	"github.com/mrcaps/tscodec/bitstream"
	"github.com/mrcaps/tscodec/bitutil"
	"github.com/mrcaps/tscodec/huffman"
	"github.com/mrcaps/tscodec/zigzag"
)

// logHuffmanCoder implements log-Huffman coding (spec.md §4.6): a Huffman
// tree over the bit-widths of zig-zagged samples is built and embedded in
// the stream, then each sample is written as its bit-width's Huffman code
// followed by the low bits of the zig-zagged value. Grounded on
// original_source's loghuffman.hpp.
//
// When rle is true, this instead implements the run-length variant
// (spec.md §9, LogHuffmanRLE): consecutive equal input values collapse
// into one token before the histogram/tree/code pass runs, and each token
// carries a flag bit marking whether a run length follows.
type logHuffmanCoder[T zigzag.Signed] struct {
	rle bool
}

func (c logHuffmanCoder[T]) Encode(in []T) []byte {
	if len(in) == 0 {
		return nil
	}
	if c.rle {
		return c.encodeRLE(in)
	}

	widths := make([]uint, len(in))
	vals := make([]uint64, len(in))
	hist := huffman.Histogram{}
	for i, x := range in {
		v := zigzag.Encode(x) + 1
		nb := bitutil.Nbits(v)
		vals[i], widths[i] = v, nb
		hist[int(nb)]++
	}

	arena, root := huffman.BuildTree(hist)
	lut := huffman.BuildLookup(arena, root)

	bs := bitstream.NewOwned(len(in)/2 + 4)
	huffman.EncodeTree(bs, arena, root)
	for i := range in {
		nb := widths[i]
		e := lut[nb]
		bs.WriteBits(e.Bits, e.Length)
		bs.WriteBits(vals[i]&^(uint64(1)<<nb), nb-1)
	}
	return bs.Bytes()
}

func (c logHuffmanCoder[T]) Decode(data []byte, n int) (out []T, err error) {
	out = make([]T, n)
	if n == 0 {
		return out, nil
	}
	defer recoverCodecFailure(&err)
	defer errs.Recover(&err)

	bs := bitstream.Wrap(data, bitstream.Read)
	if c.rle {
		return c.decodeRLE(bs, n)
	}

	arena, root, terr := huffman.DecodeTree(bs)
	errs.Panic(terr)
	for i := 0; i < n; i++ {
		nbSym, serr := huffman.DecodeSymbol(arena, root, bs.ReadBit)
		errs.Panic(serr)
		nb := uint(nbSym)
		vBits, verr := bs.ReadBits(nb - 1)
		errs.Panic(verr)
		v := vBits | (uint64(1) << (nb - 1))
		out[i] = zigzag.Decode[T](v - 1)
	}
	return out, nil
}

// token is one run of identical input values, as collapsed by the
// run-length variant's first pass.
type token[T zigzag.Signed] struct {
	value T
	run   int
}

func tokenize[T zigzag.Signed](in []T) []token[T] {
	if len(in) == 0 {
		return nil
	}
	toks := []token[T]{{value: in[0], run: 1}}
	for _, x := range in[1:] {
		last := &toks[len(toks)-1]
		if x == last.value {
			last.run++
			continue
		}
		toks = append(toks, token[T]{value: x, run: 1})
	}
	return toks
}

func (c logHuffmanCoder[T]) encodeRLE(in []T) []byte {
	toks := tokenize(in)

	widths := make([]uint, len(toks))
	vals := make([]uint64, len(toks))
	hist := huffman.Histogram{}
	for i, tok := range toks {
		v := zigzag.Encode(tok.value) + 1
		nb := bitutil.Nbits(v)
		vals[i], widths[i] = v, nb
		hist[int(nb)]++
	}

	arena, root := huffman.BuildTree(hist)
	lut := huffman.BuildLookup(arena, root)

	bs := bitstream.NewOwned(len(toks)/2 + 4)
	huffman.EncodeTree(bs, arena, root)
	for i, tok := range toks {
		nb := widths[i]
		e := lut[nb]
		bs.WriteBits(e.Bits, e.Length)
		if tok.run > 1 {
			bs.WriteBit(true)
			writeGamma(bs, uint64(tok.run))
		} else {
			bs.WriteBit(false)
		}
		bs.WriteBits(vals[i]&^(uint64(1)<<nb), nb-1)
	}
	return bs.Bytes()
}

// decodeRLE panics (via errs.Panic) on a malformed read rather than
// returning an error directly; its caller, Decode, is the one that defers
// errs.Recover and recoverCodecFailure, since both decode paths funnel
// through that single codec boundary.
func (c logHuffmanCoder[T]) decodeRLE(bs *bitstream.Bitstream, n int) ([]T, error) {
	arena, root, err := huffman.DecodeTree(bs)
	errs.Panic(err)

	out := make([]T, n)
	for i := 0; i < n; {
		nbSym, err := huffman.DecodeSymbol(arena, root, bs.ReadBit)
		errs.Panic(err)
		nb := uint(nbSym)

		isRun, err := bs.ReadBit()
		errs.Panic(err)
		run := uint64(1)
		if isRun {
			run, err = readGamma(bs)
			errs.Panic(err)
		}

		vBits, err := bs.ReadBits(nb - 1)
		errs.Panic(err)
		v := vBits | (uint64(1) << (nb - 1))
		val := zigzag.Decode[T](v - 1)

		for k := uint64(0); k < run && i < n; k++ {
			out[i] = val
			i++
		}
	}
	return out, nil
}
