////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// Package cmd initializes the CLI and config parsers as well as the logger.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/spf13/viper"

	"gitlab.com/elixxir/integerarray/bindings"
)

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main(). It only needs to
// happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "intarray",
	Short: "Builds an integer array through the bindings and prints its state",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initLog(viper.GetUint(logLevelFlag), viper.GetString(logFlag))

		err := run(cmd.OutOrStdout(), viper.GetIntSlice(valuesFlag),
			viper.GetUint(countFlag), viper.GetBool(reportFlag))
		if err != nil {
			jww.FATAL.Panicf("%+v", err)
		}
	},
}

// run creates an IntegerArray, appends values in order followed by 0 to
// count-1, and writes the state (or the JSON report) to out. The array is
// deleted before returning.
func run(out io.Writer, values []int, count uint, report bool) error {
	ia := bindings.NewIntegerArray()
	jww.INFO.Printf("Created IntegerArray %d", ia.GetID())

	defer func() {
		if err := bindings.DeleteIntegerArray(ia.GetID()); err != nil {
			jww.ERROR.Printf("Failed to delete IntegerArray %d: %+v",
				ia.GetID(), err)
		}
	}()

	for _, v := range values {
		if err := ia.Add(v); err != nil {
			return errors.WithMessagef(err, "failed to add value %d", v)
		}
	}

	for i := uint(0); i < count; i++ {
		if err := ia.Add(int(i)); err != nil {
			return errors.WithMessagef(err, "failed to add count value %d", i)
		}
	}

	jww.INFO.Printf("Added %d values to IntegerArray %d",
		len(values)+int(count), ia.GetID())

	var output []byte
	if report {
		r, err := ia.GetReport()
		if err != nil {
			return errors.WithMessage(err, "failed to get report")
		}
		output = r
	} else {
		state, err := ia.GetState()
		if err != nil {
			return errors.WithMessage(err, "failed to get state")
		}
		output = []byte(state)
	}

	// NOTE: DO NOT REMOVE THIS LINE. YOU WILL BREAK INTEGRATION
	_, err := fmt.Fprintf(out, "%s\n", output)
	return err
}

func init() {
	// NOTE: The point of init() is to be declarative.
	// There is one init in each sub command. Do not put variable declarations
	// here, and ensure all the Flags are of the *P variety, unless there's a
	// very good reason not to have them as local params to sub command."
	rootCmd.PersistentFlags().UintP(logLevelFlag, "v", 0,
		"Verbose mode for debugging")
	bindPersistentFlagHelper(logLevelFlag, rootCmd)

	rootCmd.PersistentFlags().StringP(logFlag, "l", "-",
		"Path to the log output path (- is stdout)")
	bindPersistentFlagHelper(logFlag, rootCmd)

	rootCmd.Flags().IntSliceP(valuesFlag, "a", nil,
		"Comma separated values to append, in order (e.g. --values=5,3,-7)")
	bindFlagHelper(valuesFlag, rootCmd)

	rootCmd.Flags().UintP(countFlag, "c", 0,
		"Append the values 0 to count-1 after --values")
	bindFlagHelper(countFlag, rootCmd)

	rootCmd.Flags().BoolP(reportFlag, "r", false,
		"Print the JSON report of the array instead of its state")
	bindFlagHelper(reportFlag, rootCmd)
}
