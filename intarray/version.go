////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package intarray

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// SEMVER is the release version. Change this value to set the version for a
// release.
const SEMVER = "1.0.0"

// unknownVersion is reported when the binary carries no build information.
const unknownVersion = "unknown"

// GitVersion returns the VCS revision the running binary was built from, with
// " (modified)" appended for a dirty tree, or "unknown" when the binary was
// not stamped (e.g., test binaries and builds outside a checkout).
func GitVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return unknownVersion
	}

	var revision, modified string
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			if s.Value == "true" {
				modified = " (modified)"
			}
		}
	}

	if revision == "" {
		return unknownVersion
	}
	return revision + modified
}

// Dependencies returns the modules compiled into the running binary, one
// "path version" pair per line. Replaced modules are reported as their
// replacement.
func Dependencies() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return unknownVersion
	}

	var sb strings.Builder
	for _, dep := range bi.Deps {
		if dep.Replace != nil {
			dep = dep.Replace
		}
		fmt.Fprintf(&sb, "%s %s\n", dep.Path, dep.Version)
	}
	return sb.String()
}
