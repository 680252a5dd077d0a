// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/manifoldhq/mfn-cli/internal/api"
)

var deploymentWaitArgs struct {
	timeout string
}

var deploymentWaitCmd = &cobra.Command{
	Use:   "wait <function>",
	Short: "Wait for the latest deployment to settle",
	Long: `Block until a function's latest deployment reaches a terminal
state. The server may also report its own timeout, which is distinct
from this client giving up on the call.

Example:
  mfn deployment wait alice/greeter --timeout 2m`,
	Args: cobra.ExactArgs(1),
	RunE: deploymentWaitCmdRun,
}

func init() {
	deploymentWaitCmd.Flags().StringVar(&deploymentWaitArgs.timeout, "timeout", "2m", "completion timeout as a duration with units, such as 10s or 2m")
	enableQuietFlag(deploymentWaitCmd)
	enableJsonFlag(deploymentWaitCmd)
	deploymentCmd.AddCommand(deploymentWaitCmd)
}

func deploymentWaitCmdRun(cmd *cobra.Command, args []string) error {
	username, name, err := parseFunctionRef(args[0])
	if err != nil {
		return err
	}
	timeout, err := time.ParseDuration(deploymentWaitArgs.timeout)
	if err != nil {
		return fmt.Errorf("invalid --timeout: %w", err)
	}

	result, err := client.WaitForDeployment(ctx, username, name, timeout)
	if err != nil {
		return err
	}

	switch result.Outcome {
	case api.WaitSuccess:
		if !quiet && !jsonOutput {
			tprint("Deployment completed for %s/%s", username, name)
			if result.Deployment != nil {
				displayDeployment(result.Deployment)
			}
		}
		if jsonOutput && result.Deployment != nil {
			displayJSON(result.Deployment)
		}
		return nil
	case api.WaitTimeout:
		return fmt.Errorf("server timed out waiting for the deployment; it may still complete")
	default:
		if result.Err != "" {
			return fmt.Errorf("deployment failed: %s", result.Err)
		}
		return fmt.Errorf("deployment failed")
	}
}
