// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var functionCodeUpdateCmd = &cobra.Command{
	Use:   "update <function> [file]",
	Short: "Update function source code",
	Long: `Replace a function's source, which triggers a new deployment.
Reads the source from the given file, or from stdin when the file is "-"
or omitted.

Examples:
  # Update from a file
  mfn function code update alice/greeter greeter.ts

  # Update from stdin
  cat greeter.ts | mfn function code update alice/greeter`,
	Args: cobra.RangeArgs(1, 2),
	RunE: functionCodeUpdateCmdRun,
}

func init() {
	enableQuietFlag(functionCodeUpdateCmd)
	functionCodeCmd.AddCommand(functionCodeUpdateCmd)
}

func functionCodeUpdateCmdRun(cmd *cobra.Command, args []string) error {
	username, name, err := parseFunctionRef(args[0])
	if err != nil {
		return err
	}

	var source []byte
	if len(args) == 2 && args[1] != "-" {
		source, err = os.ReadFile(args[1])
	} else {
		source, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return err
	}
	if len(source) == 0 {
		return fmt.Errorf("refusing to upload empty source")
	}

	updated, err := client.UpdateFunctionCode(ctx, username, name, string(source))
	if err != nil {
		return err
	}

	if !quiet {
		tprint("Successfully updated code for %s/%s (%d bytes)", username, name, len(updated.Code))
	}
	return nil
}
