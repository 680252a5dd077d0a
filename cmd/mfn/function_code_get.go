// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/spf13/cobra"
)

var functionCodeGetArgs struct {
	outputFile string
}

var functionCodeGetCmd = &cobra.Command{
	Use:   "get <function>",
	Short: "Fetch function source code",
	Long: `Fetch a function's current source and print it to stdout.

Examples:
  # Print the source
  mfn function code get alice/greeter

  # Save it to a file
  mfn function code get alice/greeter --output greeter.ts`,
	Args: cobra.ExactArgs(1),
	RunE: functionCodeGetCmdRun,
}

func init() {
	functionCodeGetCmd.Flags().StringVar(&functionCodeGetArgs.outputFile, "output", "", "Write the source to a file instead of stdout")
	enableJsonFlag(functionCodeGetCmd)
	functionCodeCmd.AddCommand(functionCodeGetCmd)
}

func functionCodeGetCmdRun(cmd *cobra.Command, args []string) error {
	username, name, err := parseFunctionRef(args[0])
	if err != nil {
		return err
	}

	code, err := client.GetFunctionCode(ctx, username, name)
	if err != nil {
		return err
	}

	if functionCodeGetArgs.outputFile != "" {
		return os.WriteFile(functionCodeGetArgs.outputFile, []byte(code.Code), 0644)
	}
	if jsonOutput {
		displayJSON(code)
		return nil
	}
	tprintRaw(code.Code)
	return nil
}
