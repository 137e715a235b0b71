// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package store

import "os"

// HostConfig resolves the per-host defaults original_source's config.hpp
// hardcoded (Config::init_host_specific_opts): which directory a given
// machine keeps its sample data under.
type HostConfig struct {
	Hostname string
	DataLoc  string
}

// known host -> data directory mappings, straight out of config.hpp.
var knownHosts = map[string]string{
	"mrbox":   "D:/",
	"GS10227": "G:/",
}

// LoadHostConfig resolves HostConfig for the current machine. Unknown
// hosts fall back to "/d/", matching config.hpp's default branch.
func LoadHostConfig() HostConfig {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	dataLoc, ok := knownHosts[hostname]
	if !ok {
		dataLoc = "/d/"
	}
	return HostConfig{Hostname: hostname, DataLoc: dataLoc}
}
