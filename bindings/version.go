////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// version.go contains functions to report the library version.

package bindings

import "gitlab.com/elixxir/integerarray/intarray"

// GetVersion returns the intarray.SEMVER.
func GetVersion() string {
	return intarray.SEMVER
}

// GetGitVersion returns the VCS revision the library was built from.
func GetGitVersion() string {
	return intarray.GitVersion()
}

// GetDependencies returns the modules the library was built with.
func GetDependencies() string {
	return intarray.Dependencies()
}
