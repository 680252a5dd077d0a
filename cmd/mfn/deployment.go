// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
)

var deploymentCmd = &cobra.Command{
	Use:   "deployment",
	Short: "Deployment commands",
	Long:  `The deployment subcommands inspect a function's deployments`,
}

func init() {
	rootCmd.AddCommand(deploymentCmd)
}
