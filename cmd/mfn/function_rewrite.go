// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var functionRewriteCmd = &cobra.Command{
	Use:   "rewrite <function> <prompt>",
	Short: "Rewrite a function from a prompt",
	Long: `Rewrite an existing function's code from a natural language
prompt. Not currently supported by the platform.`,
	Args: cobra.MinimumNArgs(2),
	RunE: functionRewriteCmdRun,
}

func init() {
	functionCmd.AddCommand(functionRewriteCmd)
}

func functionRewriteCmdRun(cmd *cobra.Command, args []string) error {
	username, name, err := parseFunctionRef(args[0])
	if err != nil {
		return err
	}
	return client.RewriteFunction(ctx, username, name, strings.Join(args[1:], " "))
}
