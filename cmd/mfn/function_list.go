// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/manifoldhq/mfn-cli/internal/api"
)

var functionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List functions",
	Long: `List the functions you own or can see.

Examples:
  # List functions in a table
  mfn function list

  # Only function names, for scripting
  mfn function list --names

  # JSON output filtered with jq
  mfn function list --jq '.[].name'`,
	Args: cobra.ExactArgs(0),
	RunE: functionListCmdRun,
}

func init() {
	addStandardListFlags(functionListCmd)
	functionCmd.AddCommand(functionListCmd)
}

func functionListCmdRun(cmd *cobra.Command, args []string) error {
	workspaces, err := client.ListFunctions(ctx)
	if err != nil {
		return err
	}

	hasAlternativeOutput := names || jsonOutput || jq != ""

	if !quiet && !hasAlternativeOutput {
		displayFunctionList(workspaces)
	}
	if names {
		table := tableView()
		for _, ws := range workspaces {
			table.Append([]string{ws.Username + "/" + ws.Name})
		}
		table.Render()
	}
	if jsonOutput {
		displayJSON(workspaces)
	}
	if jq != "" {
		displayJQ(workspaces)
	}
	return nil
}

func displayFunctionList(workspaces []api.Workspace) {
	table := tableView()
	if !noheader {
		table.SetHeader([]string{"Function", "Visibility", "MCP-Tool", "Deployment", "Updated"})
	}
	for _, ws := range workspaces {
		mcp := ""
		if ws.MCPToolEnabled {
			mcp = "enabled"
		}
		updated := ""
		if !ws.UpdatedAt.IsZero() {
			updated = ws.UpdatedAt.Format(time.RFC3339)
		}
		table.Append([]string{
			ws.Username + "/" + ws.Name,
			ws.Visibility,
			mcp,
			ws.DeploymentStatus,
			updated,
		})
	}
	table.Render()
}
