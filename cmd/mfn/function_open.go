// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/cobra"
)

const defaultWebURL = "https://manifold.run"

var functionOpenCmd = &cobra.Command{
	Use:   "open <function>",
	Short: "Open a function in the browser",
	Long: `Open the function's page on the platform website.

Example:
  mfn function open alice/greeter`,
	Args: cobra.ExactArgs(1),
	RunE: functionOpenCmdRun,
}

func init() {
	functionCmd.AddCommand(functionOpenCmd)
}

func functionOpenCmdRun(cmd *cobra.Command, args []string) error {
	username, name, err := parseFunctionRef(args[0])
	if err != nil {
		return err
	}

	webURL := cliConfig.WebURL
	if webURL == "" {
		webURL = defaultWebURL
	}
	return open.Run(fmt.Sprintf("%s/%s/%s", webURL, username, name))
}
