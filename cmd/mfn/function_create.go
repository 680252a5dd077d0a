// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/gosimple/slug"
	"github.com/spf13/cobra"

	"github.com/manifoldhq/mfn-cli/internal/api"
)

var functionCreateArgs struct {
	description string
	private     bool
	codeFile    string
}

var functionCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a function",
	Long: `Create a new hosted function. The name is slugified into a
URL-safe identifier.

Examples:
  # Create an empty private function
  mfn function create my-function --private

  # Create a function from a local source file
  mfn function create greeter --code greeter.ts`,
	Args: cobra.ExactArgs(1),
	RunE: functionCreateCmdRun,
}

func init() {
	functionCreateCmd.Flags().StringVar(&functionCreateArgs.description, "description", "", "Function description")
	functionCreateCmd.Flags().BoolVar(&functionCreateArgs.private, "private", false, "Make the function private")
	functionCreateCmd.Flags().StringVar(&functionCreateArgs.codeFile, "code", "", "Path to the initial source file")
	enableQuietFlag(functionCreateCmd)
	enableJsonFlag(functionCreateCmd)
	enableJqFlag(functionCreateCmd)
	functionCmd.AddCommand(functionCreateCmd)
}

func functionCreateCmdRun(cmd *cobra.Command, args []string) error {
	req := api.CreateFunctionRequest{
		Name:        slug.Make(args[0]),
		Description: functionCreateArgs.description,
		Private:     functionCreateArgs.private,
	}
	if functionCreateArgs.codeFile != "" {
		code, err := os.ReadFile(functionCreateArgs.codeFile)
		if err != nil {
			return err
		}
		req.Code = string(code)
	}

	ws, err := client.CreateFunction(ctx, req)
	if err != nil {
		return err
	}

	hasAlternativeOutput := jsonOutput || jq != ""
	if !quiet && !hasAlternativeOutput {
		tprint("Successfully created function %s/%s", ws.Username, ws.Name)
	}
	if jsonOutput {
		displayJSON(ws)
	}
	if jq != "" {
		displayJQ(ws)
	}
	return nil
}
