////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package cmd

// This is a comprehensive list of CLI flag name constants. Pulling flags using
// Viper should use the constants defined here.
const (
	//////////////// Root flags ///////////////////////////////////////////////

	// Array flags
	valuesFlag = "values"
	countFlag  = "count"
	reportFlag = "report"

	// Log flags
	logLevelFlag = "logLevel"
	logFlag      = "log"

	///////////////// Version subcommand flags ////////////////////////////////
	shortFlag = "short"
)
