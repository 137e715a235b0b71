// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func openTestMeta(t *testing.T) (*SQLiteMetaStore, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "meta.db")

	setup, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	defer setup.Close()

	const schema = `
CREATE TABLE meta (
	vname TEXT, tpath TEXT, vpath TEXT,
	vmin INTEGER, vmax INTEGER, vscale INTEGER,
	vsize INTEGER, npoints INTEGER
);`
	if _, err := setup.Exec(schema); err != nil {
		t.Fatalf("creating schema: %v", err)
	}
	_, err = setup.Exec(
		`INSERT INTO meta VALUES (?,?,?,?,?,?,?,?)`,
		"stream1", "/orig/t", "/orig/v/stream1.raw", 0, 100, 1, 4, 30282,
	)
	if err != nil {
		t.Fatalf("inserting fixture row: %v", err)
	}

	ms, err := OpenSQLiteMetaStore(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLiteMetaStore: %v", err)
	}
	return ms, dbPath
}

func TestSQLiteMetaStoreStreams(t *testing.T) {
	ms, _ := openTestMeta(t)
	defer ms.Close()

	streams, err := ms.Streams(context.Background(), "")
	if err != nil {
		t.Fatalf("Streams: %v", err)
	}
	if len(streams) != 1 {
		t.Fatalf("got %d streams, want 1", len(streams))
	}
	vs := streams[0]
	if vs.Name != "stream1" || vs.NPoints != 30282 || int(vs.Width) != 4 {
		t.Fatalf("unexpected VStream: %+v", vs)
	}
}

func TestSQLiteMetaStoreDataLocRelocation(t *testing.T) {
	ms, _ := openTestMeta(t)
	defer ms.Close()

	streams, err := ms.Streams(context.Background(), "/new/d/")
	if err != nil {
		t.Fatalf("Streams: %v", err)
	}
	vs := streams[0]
	want := filepath.Join("/new/d/", "stream1.raw")
	if vs.VPath != want {
		t.Fatalf("VPath = %q, want %q", vs.VPath, want)
	}
}
