// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var functionGenerateArgs struct {
	outputFile string
}

var functionGenerateCmd = &cobra.Command{
	Use:   "generate <prompt>",
	Short: "Generate a function from a prompt",
	Long: `Ask the platform to draft a function from a natural language
prompt. The generated source is printed to stdout; create it with
'mfn function create --code'.

Example:
  mfn function generate "an HTTP handler that returns the current time" --output now.ts`,
	Args: cobra.MinimumNArgs(1),
	RunE: functionGenerateCmdRun,
}

func init() {
	functionGenerateCmd.Flags().StringVar(&functionGenerateArgs.outputFile, "output", "", "Write the generated source to a file instead of stdout")
	enableJsonFlag(functionGenerateCmd)
	functionCmd.AddCommand(functionGenerateCmd)
}

func functionGenerateCmdRun(cmd *cobra.Command, args []string) error {
	prompt := strings.Join(args, " ")

	generated, err := client.GenerateFunction(ctx, prompt)
	if err != nil {
		return err
	}

	if jsonOutput {
		displayJSON(generated)
		return nil
	}
	if functionGenerateArgs.outputFile != "" {
		if err := os.WriteFile(functionGenerateArgs.outputFile, []byte(generated.Code), 0644); err != nil {
			return err
		}
		tprint("Wrote generated function %s to %s", generated.Name, functionGenerateArgs.outputFile)
		return nil
	}
	tprintRaw(generated.Code)
	return nil
}
