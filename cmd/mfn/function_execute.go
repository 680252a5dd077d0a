// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/manifoldhq/mfn-cli/internal/api"
)

var functionExecuteArgs struct {
	args        string
	includeLogs bool
	timeout     string
}

var functionExecuteCmd = &cobra.Command{
	Use:   "execute <function>",
	Short: "Execute a function",
	Long: `Execute a deployed function and print its result.

Examples:
  # Run with no arguments
  mfn function execute alice/greeter

  # Pass a JSON argument array and show execution logs
  mfn function execute alice/greeter --args '["world"]' --logs

  # Bound the call to five seconds
  mfn function execute alice/greeter --timeout 5s`,
	Args: cobra.ExactArgs(1),
	RunE: functionExecuteCmdRun,
}

func init() {
	functionExecuteCmd.Flags().StringVar(&functionExecuteArgs.args, "args", "", "Arguments as a JSON value")
	functionExecuteCmd.Flags().BoolVar(&functionExecuteArgs.includeLogs, "logs", false, "Include execution logs in the output")
	functionExecuteCmd.Flags().StringVar(&functionExecuteArgs.timeout, "timeout", "", "Per-call timeout as a duration with units, such as 10s or 2m")
	enableQuietFlag(functionExecuteCmd)
	functionCmd.AddCommand(functionExecuteCmd)
}

func functionExecuteCmdRun(cmd *cobra.Command, args []string) error {
	username, name, err := parseFunctionRef(args[0])
	if err != nil {
		return err
	}

	req := api.ExecuteRequest{}
	if functionExecuteArgs.args != "" {
		if !json.Valid([]byte(functionExecuteArgs.args)) {
			return fmt.Errorf("--args must be valid JSON")
		}
		req.Args = json.RawMessage(functionExecuteArgs.args)
	}
	if functionExecuteArgs.timeout != "" {
		timeout, err := time.ParseDuration(functionExecuteArgs.timeout)
		if err != nil {
			return fmt.Errorf("invalid --timeout: %w", err)
		}
		req.Timeout = timeout
	}

	result, err := client.ExecuteFunction(ctx, username, name, req)
	if err != nil {
		return err
	}

	output := result.Format(functionExecuteArgs.includeLogs)
	if result.OK {
		if !quiet && output != "" {
			tprintRaw(output)
		}
		return nil
	}
	tprintRaw(output)
	return fmt.Errorf("execution failed")
}
