// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  `The auth subcommands inspect authentication state`,
}

func init() {
	rootCmd.AddCommand(authCmd)
}
