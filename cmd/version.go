////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// Handles command-line version functionality

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gitlab.com/elixxir/integerarray/bindings"
)

// Version returns the version line of the binary followed by the module
// dependencies it was built with.
func Version() string {
	return versionLine() +
		fmt.Sprintf("Dependencies:\n\n%s\n", bindings.GetDependencies())
}

func versionLine() string {
	return fmt.Sprintf("IntegerArray v%s -- %s\n\n", bindings.GetVersion(),
		bindings.GetGitVersion())
}

func init() {
	versionCmd.Flags().BoolP(shortFlag, "", false,
		"Only print the version line, without dependencies")
	bindFlagHelper(shortFlag, versionCmd)

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and dependency information for the IntegerArray binary",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if viper.GetBool(shortFlag) {
			fmt.Fprint(cmd.OutOrStdout(), versionLine())
			return
		}
		fmt.Fprint(cmd.OutOrStdout(), Version())
	},
}
