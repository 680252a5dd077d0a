// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/gosimple/slug"
	"github.com/spf13/cobra"
)

var functionRenameCmd = &cobra.Command{
	Use:   "rename <function> <new-name>",
	Short: "Rename a function",
	Long: `Rename a function in place. Deployments and secrets move with it.

Example:
  mfn function rename alice/old-name new-name`,
	Args: cobra.ExactArgs(2),
	RunE: functionRenameCmdRun,
}

func init() {
	enableQuietFlag(functionRenameCmd)
	enableJsonFlag(functionRenameCmd)
	functionCmd.AddCommand(functionRenameCmd)
}

func functionRenameCmdRun(cmd *cobra.Command, args []string) error {
	username, name, err := parseFunctionRef(args[0])
	if err != nil {
		return err
	}

	ws, err := client.RenameFunction(ctx, username, name, slug.Make(args[1]))
	if err != nil {
		return err
	}

	if !quiet && !jsonOutput {
		tprint("Successfully renamed function to %s/%s", ws.Username, ws.Name)
	}
	if jsonOutput {
		displayJSON(ws)
	}
	return nil
}
