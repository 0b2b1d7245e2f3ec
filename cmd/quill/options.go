package main

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// getExpression determines the expression to evaluate. There are three
// possibilities:
//  1. --code <expr>
//  2. --stdin (read the expression from stdin)
//  3. a file path as args[0], or the expression itself if no such
//     file exists
//
// The returned filename is non-empty only when the expression was read
// from a file, for use in error locations.
func getExpression(cmd *cobra.Command, args []string) (expr string, filename string, err error) {
	var codeFlagSet bool
	if f := cmd.Flags().Lookup("code"); f != nil && f.Changed {
		codeFlagSet = true
	}
	stdinFlagSet := viper.GetBool("stdin")
	argSupplied := len(args) > 0

	count := 0
	for _, set := range []bool{codeFlagSet, stdinFlagSet, argSupplied} {
		if set {
			count++
		}
	}
	if count > 1 {
		return "", "", errors.New("multiple input sources specified")
	}
	if count == 0 {
		return "", "", errors.New("no expression provided (pass an argument, -c, or --stdin)")
	}

	if codeFlagSet {
		return cmd.Flags().Lookup("code").Value.String(), "", nil
	}
	if stdinFlagSet {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", err
		}
		return string(data), "", nil
	}

	// A positional argument naming a readable file is a script path;
	// anything else is treated as the expression itself.
	if data, err := os.ReadFile(args[0]); err == nil {
		return string(data), args[0], nil
	}
	return args[0], "", nil
}
