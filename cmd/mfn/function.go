// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var functionCmd = &cobra.Command{
	Use:   "function",
	Short: "Function commands",
	Long:  `The function subcommands manage hosted functions`,
}

func init() {
	rootCmd.AddCommand(functionCmd)
}

// parseFunctionRef resolves a "username/name" or bare "name" reference.
// A bare name uses the default username from the config file.
func parseFunctionRef(ref string) (username, name string, err error) {
	parts := strings.Split(ref, "/")
	switch len(parts) {
	case 1:
		if cliConfig.Username == "" {
			return "", "", fmt.Errorf("no username in %q; use username/name or set username in ~/.mfn/config.yaml", ref)
		}
		return cliConfig.Username, parts[0], nil
	case 2:
		if parts[0] == "" || parts[1] == "" {
			return "", "", fmt.Errorf("invalid function reference %q", ref)
		}
		return parts[0], parts[1], nil
	}
	return "", "", fmt.Errorf("invalid function reference %q; expected username/name", ref)
}
