// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"time"

	"github.com/spf13/cobra"
)

var secretListCmd = &cobra.Command{
	Use:   "list <function>",
	Short: "List secrets",
	Long: `List the keys of a function's stored secrets. Values are never
returned by the platform.

Example:
  mfn secret list alice/greeter`,
	Args: cobra.ExactArgs(1),
	RunE: secretListCmdRun,
}

func init() {
	addStandardListFlags(secretListCmd)
	secretCmd.AddCommand(secretListCmd)
}

func secretListCmdRun(cmd *cobra.Command, args []string) error {
	username, name, err := parseFunctionRef(args[0])
	if err != nil {
		return err
	}

	secrets, err := client.ListSecrets(ctx, username, name)
	if err != nil {
		return err
	}

	hasAlternativeOutput := names || jsonOutput || jq != ""
	if !quiet && !hasAlternativeOutput {
		table := tableView()
		if !noheader {
			table.SetHeader([]string{"Key", "Created"})
		}
		for _, secret := range secrets {
			table.Append([]string{secret.Key, secret.InsertedAt.Format(time.RFC3339)})
		}
		table.Render()
	}
	if names {
		table := tableView()
		for _, secret := range secrets {
			table.Append([]string{secret.Key})
		}
		table.Render()
	}
	if jsonOutput {
		displayJSON(secrets)
	}
	if jq != "" {
		displayJQ(secrets)
	}
	return nil
}
