// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/manifoldhq/mfn-cli/internal/api"
)

var functionGetCmd = &cobra.Command{
	Use:   "get <function>",
	Short: "Get function details",
	Long: `Get the metadata of one function, referenced as username/name
(or a bare name with a default username configured).

Examples:
  # Show function details
  mfn function get alice/greeter

  # Full record as JSON
  mfn function get alice/greeter --json`,
	Args: cobra.ExactArgs(1),
	RunE: functionGetCmdRun,
}

func init() {
	addStandardGetFlags(functionGetCmd)
	functionCmd.AddCommand(functionGetCmd)
}

func functionGetCmdRun(cmd *cobra.Command, args []string) error {
	username, name, err := parseFunctionRef(args[0])
	if err != nil {
		return err
	}

	details, err := client.GetFunction(ctx, username, name)
	if err != nil {
		return err
	}

	hasAlternativeOutput := jsonOutput || jq != ""
	if !quiet && !hasAlternativeOutput {
		displayFunctionDetails(details)
	}
	if jsonOutput {
		displayJSON(details)
	}
	if jq != "" {
		displayJQ(details)
	}
	return nil
}

func displayFunctionDetails(details *api.FunctionDetails) {
	table := detailView()
	table.SetHeader([]string{"Field", "Value"})
	table.Append([]string{"Function", details.Username + "/" + details.Name})
	if details.Description != "" {
		table.Append([]string{"Description", details.Description})
	}
	table.Append([]string{"Visibility", details.Visibility})
	mcp := "disabled"
	if details.MCPToolEnabled {
		mcp = "enabled"
	}
	table.Append([]string{"MCP-Tool", mcp})
	if details.DeploymentStatus != "" {
		table.Append([]string{"Deployment", details.DeploymentStatus})
	}
	if d := details.LatestDeployment; d != nil {
		table.Append([]string{"Latest-Deployment", d.ID + " (" + d.Status + ")"})
		if !d.Timestamp.IsZero() {
			table.Append([]string{"Deployed-At", d.Timestamp.Format(time.RFC3339)})
		}
	}
	for _, secret := range details.Secrets {
		table.Append([]string{"Secret", secret.Key})
	}
	for _, pkg := range details.Packages {
		table.Append([]string{"Package", pkg.Name + "@" + pkg.Version})
	}
	table.Append([]string{"Created-At", details.InsertedAt.Format(time.RFC3339)})
	table.Append([]string{"Updated-At", details.UpdatedAt.Format(time.RFC3339)})
	table.Render()
}
