// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package store

import (
	"context"
	"database/sql"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/mrcaps/tscodec/codec"
)

// SQLiteMetaStore is a catalogue of VStream entries backed by a SQLite
// database, one row per sample array. Grounded on original_source's
// metastore.hpp#MetaStore (same "meta" table, same column order); uses
// modernc.org/sqlite rather than cgo sqlite3 bindings so the whole module
// stays cgo-free, matching every other package here.
type SQLiteMetaStore struct {
	db *sql.DB
}

// OpenSQLiteMetaStore opens the database at path.
func OpenSQLiteMetaStore(path string) (*SQLiteMetaStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, Error("open: " + err.Error())
	}
	return &SQLiteMetaStore{db: db}, nil
}

// Close releases the underlying database handle.
func (m *SQLiteMetaStore) Close() error {
	return m.db.Close()
}

// Streams lists every catalogued VStream. dataLoc, when non-empty,
// replaces each entry's stored directory with dataLoc — the host-specific
// relocation original_source's MetaStore did via prefix_replace, done here
// with filepath.Join against the file's base name rather than the
// original's fixed-length memcpy over the stored path (which silently
// corrupts vpath/tpath whenever the replacement and original prefixes
// differ in length).
func (m *SQLiteMetaStore) Streams(ctx context.Context, dataLoc string) ([]VStream, error) {
	rows, err := m.db.QueryContext(ctx,
		`SELECT vname, tpath, vpath, vmin, vmax, vscale, vsize, npoints FROM meta`)
	if err != nil {
		return nil, Error("query: " + err.Error())
	}
	defer rows.Close()

	var out []VStream
	for rows.Next() {
		var vs VStream
		var width int
		if err := rows.Scan(&vs.Name, &vs.TPath, &vs.VPath, &vs.VMin, &vs.VMax, &vs.VScale, &width, &vs.NPoints); err != nil {
			return nil, Error("scan: " + err.Error())
		}
		vs.Width = codec.Width(width)
		if dataLoc != "" {
			vs.TPath = filepath.Join(dataLoc, filepath.Base(vs.TPath))
			vs.VPath = filepath.Join(dataLoc, filepath.Base(vs.VPath))
		}
		out = append(out, vs)
	}
	return out, rows.Err()
}
