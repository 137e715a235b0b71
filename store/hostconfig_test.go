// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package store

import "testing"

func TestLoadHostConfigFallback(t *testing.T) {
	cfg := LoadHostConfig()
	if cfg.Hostname == "" {
		t.Fatal("Hostname is empty")
	}
	if _, known := knownHosts[cfg.Hostname]; !known && cfg.DataLoc != "/d/" {
		t.Fatalf("unknown host %q got DataLoc %q, want the default /d/", cfg.Hostname, cfg.DataLoc)
	}
}

func TestKnownHostMappings(t *testing.T) {
	want := map[string]string{"mrbox": "D:/", "GS10227": "G:/"}
	for host, loc := range want {
		if got := knownHosts[host]; got != loc {
			t.Errorf("knownHosts[%q] = %q, want %q", host, got, loc)
		}
	}
}
