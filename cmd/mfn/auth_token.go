// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/manifoldhq/mfn-cli/internal/api"
)

var authTokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Show the resolved token",
	Long: `Show which token the CLI would use, its detected shape, and the
result of the local pre-flight check. No request is sent.`,
	Args: cobra.ExactArgs(0),
	RunE: authTokenCmdRun,
}

func init() {
	authCmd.AddCommand(authTokenCmd)
}

func authTokenCmdRun(cmd *cobra.Command, args []string) error {
	creds, err := api.ResolveCredentials(flagToken, flagBaseURL, cliConfig.BaseURL)
	if err != nil {
		return err
	}

	kind := api.ClassifyToken(creds.Token)
	table := detailView()
	table.SetHeader([]string{"Field", "Value"})
	table.Append([]string{"Token", redactToken(creds.Token)})
	table.Append([]string{"Kind", string(kind)})
	table.Append([]string{"Base-URL", creds.BaseURL})
	if err := api.ValidateToken(creds.Token, time.Now()); err != nil {
		table.Append([]string{"Pre-Flight", err.Error()})
	} else {
		table.Append([]string{"Pre-Flight", "ok"})
	}
	table.Render()
	return nil
}

func redactToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:8] + "..." + token[len(token)-4:]
}
