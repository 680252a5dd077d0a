// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/manifoldhq/mfn-cli/internal/api"
)

var deploymentGetCmd = &cobra.Command{
	Use:   "get <function>",
	Short: "Get the latest deployment",
	Long: `Show a function's latest deployment. A function that has never
been deployed reports "no deployment yet" rather than an error.

Example:
  mfn deployment get alice/greeter`,
	Args: cobra.ExactArgs(1),
	RunE: deploymentGetCmdRun,
}

func init() {
	addStandardGetFlags(deploymentGetCmd)
	deploymentCmd.AddCommand(deploymentGetCmd)
}

func deploymentGetCmdRun(cmd *cobra.Command, args []string) error {
	username, name, err := parseFunctionRef(args[0])
	if err != nil {
		return err
	}

	deployment, err := client.GetLatestDeployment(ctx, username, name)
	if err != nil {
		return err
	}
	if deployment == nil {
		if !quiet {
			tprint("No deployment yet for %s/%s", username, name)
		}
		return nil
	}

	hasAlternativeOutput := jsonOutput || jq != ""
	if !quiet && !hasAlternativeOutput {
		displayDeployment(deployment)
	}
	if jsonOutput {
		displayJSON(deployment)
	}
	if jq != "" {
		displayJQ(deployment)
	}
	return nil
}

func displayDeployment(deployment *api.Deployment) {
	table := detailView()
	table.SetHeader([]string{"Field", "Value"})
	table.Append([]string{"ID", deployment.ID})
	table.Append([]string{"Status", deployment.Status})
	if deployment.Hash != "" {
		table.Append([]string{"Hash", deployment.Hash})
	}
	if !deployment.Timestamp.IsZero() {
		table.Append([]string{"Timestamp", deployment.Timestamp.Format(time.RFC3339)})
	}
	if deployment.Signature != "" {
		table.Append([]string{"Signature", deployment.Signature})
	}
	table.Render()
}
