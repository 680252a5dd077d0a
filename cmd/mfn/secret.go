// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
)

var secretCmd = &cobra.Command{
	Use:   "secret",
	Short: "Secret commands",
	Long:  `The secret subcommands manage a function's stored secrets`,
}

func init() {
	rootCmd.AddCommand(secretCmd)
}
