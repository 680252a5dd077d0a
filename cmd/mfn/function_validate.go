// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var functionValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate function code",
	Long: `Validate source code server-side without deploying it. Reads
from the given file, or from stdin when the file is "-" or omitted.

Examples:
  mfn function validate greeter.ts
  cat greeter.ts | mfn function validate`,
	Args: cobra.MaximumNArgs(1),
	RunE: functionValidateCmdRun,
}

func init() {
	enableJsonFlag(functionValidateCmd)
	functionCmd.AddCommand(functionValidateCmd)
}

func functionValidateCmdRun(cmd *cobra.Command, args []string) error {
	var source []byte
	var err error
	if len(args) == 1 && args[0] != "-" {
		source, err = os.ReadFile(args[0])
	} else {
		source, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return err
	}

	result, err := client.ValidateCode(ctx, string(source))
	if err != nil {
		return err
	}

	if jsonOutput {
		displayJSON(result)
	} else if result.Valid {
		tprint("Code is valid")
	} else {
		for _, validationErr := range result.Errors {
			tprint("%d:%d %s", validationErr.Line, validationErr.Column, validationErr.Message)
		}
	}
	if !result.Valid {
		return fmt.Errorf("code has %d validation error(s)", len(result.Errors))
	}
	return nil
}
