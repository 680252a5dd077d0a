// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var secretCreateArgs struct {
	fromStdin bool
}

var secretCreateCmd = &cobra.Command{
	Use:   "create <function> <key> [value]",
	Short: "Create a secret",
	Long: `Store a new secret for a function. The value can be given as an
argument or read from stdin with --from-stdin to keep it out of shell
history.

Examples:
  mfn secret create alice/greeter API_KEY s3cret
  printf 's3cret' | mfn secret create alice/greeter API_KEY --from-stdin`,
	Args: cobra.RangeArgs(2, 3),
	RunE: secretCreateCmdRun,
}

func init() {
	secretCreateCmd.Flags().BoolVar(&secretCreateArgs.fromStdin, "from-stdin", false, "Read the secret value from stdin")
	enableQuietFlag(secretCreateCmd)
	secretCmd.AddCommand(secretCreateCmd)
}

func secretCreateCmdRun(cmd *cobra.Command, args []string) error {
	username, name, err := parseFunctionRef(args[0])
	if err != nil {
		return err
	}
	key := args[1]

	var value string
	switch {
	case secretCreateArgs.fromStdin:
		if len(args) == 3 {
			return fmt.Errorf("cannot pass both a value argument and --from-stdin")
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		value = strings.TrimRight(string(data), "\n")
	case len(args) == 3:
		value = args[2]
	default:
		return fmt.Errorf("missing secret value; pass it as an argument or use --from-stdin")
	}

	secret, err := client.CreateSecret(ctx, username, name, key, value)
	if err != nil {
		return err
	}

	if !quiet {
		tprint("Successfully created secret %s for %s/%s", secret.Key, username, name)
	}
	return nil
}
