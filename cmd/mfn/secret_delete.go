// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
)

var secretDeleteCmd = &cobra.Command{
	Use:   "delete <function> <key>",
	Short: "Delete a secret",
	Long: `Delete a function's secret by key.

Example:
  mfn secret delete alice/greeter API_KEY`,
	Args: cobra.ExactArgs(2),
	RunE: secretDeleteCmdRun,
}

func init() {
	enableQuietFlag(secretDeleteCmd)
	secretCmd.AddCommand(secretDeleteCmd)
}

func secretDeleteCmdRun(cmd *cobra.Command, args []string) error {
	username, name, err := parseFunctionRef(args[0])
	if err != nil {
		return err
	}

	if err := client.DeleteSecret(ctx, username, name, args[1]); err != nil {
		return err
	}

	if !quiet {
		tprint("Successfully deleted secret %s from %s/%s", args[1], username, name)
	}
	return nil
}
