// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command tscodec-bench runs the round-trip harness (package pipeline)
// over either a raw sample file or a synthetic generated block, and
// prints a benchmark table. Grounded on the teacher's
// internal/tool/bench/main.go: same flag-based shape and the same
// printResults column-padding algorithm, adapted from a per-format/
// per-codec/per-size matrix down to this library's single dimension
// (codec name) since spec.md has no notion of compression "levels".
//
// Example usage:
//	$ tscodec-bench -width 4 -n 1e5 -delta
//	$ tscodec-bench -file stream.raw -width 4
package main

import (
	"bytes"
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	dsnetstrconv "github.com/dsnet/golib/strconv"
	"github.com/ulikunitz/xz"

	"github.com/mrcaps/tscodec/codec"
	"github.com/mrcaps/tscodec/pipeline"
)

func main() {
	file := flag.String("file", "", "raw little-endian sample file to benchmark (synthetic data is generated when empty)")
	width := flag.Int("width", 4, "sample width in bytes: 1, 2, 4, or 8")
	n := flag.String("n", "1e5", "sample count for synthetic data (ignored when -file is set)")
	seed := flag.Int64("seed", 1, "PRNG seed for synthetic data")
	deltaPrepass := flag.Bool("delta", false, "delta-encode samples before handing them to each codec")
	refs := flag.String("refs", "", "comma-separated reference compressors to add as extra columns (supported: xz)")
	flag.Parse()

	w := codec.Width(*width)
	var raw []byte
	var err error
	if *file != "" {
		raw, err = os.ReadFile(*file)
	} else {
		count, perr := strconv.ParseFloat(*n, 64)
		if perr != nil {
			fmt.Fprintf(os.Stderr, "tscodec-bench: invalid -n %q: %v\n", *n, perr)
			os.Exit(1)
		}
		raw, err = genSynthetic(w, int(count), *seed)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "tscodec-bench: %v\n", err)
		os.Exit(1)
	}

	samples, err := codec.SamplesFromLE(w, raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tscodec-bench: %v\n", err)
		os.Exit(1)
	}

	results, errs := pipeline.RunSuite(*deltaPrepass, samples, nil)

	var refCols []refColumn
	for _, r := range strings.Split(*refs, ",") {
		switch strings.TrimSpace(r) {
		case "":
		case "xz":
			refCols = append(refCols, xzReference(raw))
		default:
			fmt.Fprintf(os.Stderr, "tscodec-bench: unknown -refs entry %q (ignored)\n", r)
		}
	}

	label := *file
	if label == "" {
		label = fmt.Sprintf("synthetic:%s", dsnetstrconv.FormatPrefix(float64(samples.Len()), dsnetstrconv.Base1024, 2))
	}
	printResults(label, results, errs, refCols)
}

// genSynthetic produces a bounded random-walk sample block, the same
// shape original_source's test generators use for sensor-like data: each
// sample is the previous one plus a small signed jitter, clamped to the
// width's range.
func genSynthetic(w codec.Width, count int, seed int64) ([]byte, error) {
	if count < 0 {
		return nil, fmt.Errorf("negative sample count %d", count)
	}
	rng := rand.New(rand.NewSource(seed))
	vals := make([]int64, count)
	var cur int64
	lo, hi := rangeFor(w)
	for i := range vals {
		cur += int64(rng.Intn(21) - 10) // jitter in [-10, 10]
		if cur < lo {
			cur = lo
		}
		if cur > hi {
			cur = hi
		}
		vals[i] = cur
	}

	switch w {
	case codec.Width1:
		out := make([]int8, count)
		for i, v := range vals {
			out[i] = int8(v)
		}
		return codec.ToLEBytes(out), nil
	case codec.Width2:
		out := make([]int16, count)
		for i, v := range vals {
			out[i] = int16(v)
		}
		return codec.ToLEBytes(out), nil
	case codec.Width4:
		out := make([]int32, count)
		for i, v := range vals {
			out[i] = int32(v)
		}
		return codec.ToLEBytes(out), nil
	case codec.Width8:
		return codec.ToLEBytes(vals), nil
	default:
		return nil, codec.ErrUnsupportedWidth
	}
}

func rangeFor(w codec.Width) (lo, hi int64) {
	bits := uint(w) * 8
	hi = 1<<(bits-1) - 1
	lo = -hi - 1
	return lo, hi
}

type refColumn struct {
	name  string
	ratio float64
}

func xzReference(raw []byte) refColumn {
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		return refColumn{name: "xz"}
	}
	if _, err := w.Write(raw); err != nil {
		return refColumn{name: "xz"}
	}
	if err := w.Close(); err != nil {
		return refColumn{name: "xz"}
	}
	if buf.Len() == 0 {
		return refColumn{name: "xz"}
	}
	return refColumn{name: "xz", ratio: float64(len(raw)) / float64(buf.Len())}
}

// printResults renders one row per codec plus any reference columns,
// padding every column to its widest cell. Column-padding algorithm
// ported from the teacher's internal/tool/bench/main.go#printResults.
func printResults(label string, results []pipeline.Result, errs []error, refCols []refColumn) {
	headers := []string{"codec", "ratio", "enc MB/s", "dec MB/s", "ok"}
	for _, rc := range refCols {
		headers = append(headers, rc.name+" ratio")
	}

	rows := make([][]string, 0, len(results)+1)
	rows = append(rows, headers)
	for i, r := range results {
		row := []string{
			string(r.Name),
			formatFloat(r.Ratio),
			formatFloat(r.EncRate),
			formatFloat(r.DecRate),
			formatOK(r.OK, errs[i]),
		}
		for _, rc := range refCols {
			row = append(row, formatFloat(rc.ratio))
		}
		rows = append(rows, row)
	}

	ncols := len(headers)
	maxLens := make([]int, ncols)
	for _, row := range rows {
		for i, s := range row {
			if len(s) > maxLens[i] {
				maxLens[i] = len(s)
			}
		}
	}

	fmt.Printf("BENCHMARK: %s\n", label)
	for _, row := range rows {
		var b strings.Builder
		for i, s := range row {
			if i == 0 {
				b.WriteString(s)
				b.WriteString(strings.Repeat(" ", maxLens[i]-len(s)))
			} else {
				b.WriteString(strings.Repeat(" ", 2+maxLens[i]-len(s)))
				b.WriteString(s)
			}
		}
		fmt.Println(b.String())
	}
	fmt.Printf("RUNTIME: %s\n", time.Now().Format(time.RFC3339))
}

func formatFloat(f float64) string {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return "-"
	}
	return fmt.Sprintf("%.2f", f)
}

func formatOK(ok bool, err error) string {
	if ok {
		return "yes"
	}
	if err != nil {
		return "FAIL: " + err.Error()
	}
	return "FAIL"
}
