// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
)

var functionCodeCmd = &cobra.Command{
	Use:   "code",
	Short: "Function source code commands",
	Long:  `The code subcommands fetch and update a function's source`,
}

func init() {
	functionCmd.AddCommand(functionCodeCmd)
}
