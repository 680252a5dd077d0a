// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
)

var secretUpdateCmd = &cobra.Command{
	Use:   "update <function> <key> <value>",
	Short: "Update a secret",
	Long: `Update a stored secret's value. Secrets are immutable on the
platform; delete and re-create the secret instead.`,
	Args: cobra.ExactArgs(3),
	RunE: secretUpdateCmdRun,
}

func init() {
	secretCmd.AddCommand(secretUpdateCmd)
}

func secretUpdateCmdRun(cmd *cobra.Command, args []string) error {
	username, name, err := parseFunctionRef(args[0])
	if err != nil {
		return err
	}
	return client.UpdateSecret(ctx, username, name, args[1], args[2])
}
