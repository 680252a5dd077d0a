// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manifoldhq/mfn-cli/internal/api"
)

var functionSettingsArgs struct {
	description string
	private     bool
	mcpTool     bool
}

var functionSettingsCmd = &cobra.Command{
	Use:   "settings <function>",
	Short: "Update function settings",
	Long: `Update a function's settings. Only the flags you pass are changed.

Examples:
  # Make a function private
  mfn function settings alice/greeter --private=true

  # Expose it as an MCP tool
  mfn function settings alice/greeter --mcp-tool=true

  # Change the description
  mfn function settings alice/greeter --description "Greets people"`,
	Args: cobra.ExactArgs(1),
	RunE: functionSettingsCmdRun,
}

func init() {
	functionSettingsCmd.Flags().StringVar(&functionSettingsArgs.description, "description", "", "Function description")
	functionSettingsCmd.Flags().BoolVar(&functionSettingsArgs.private, "private", false, "Make the function private")
	functionSettingsCmd.Flags().BoolVar(&functionSettingsArgs.mcpTool, "mcp-tool", false, "Expose the function as an MCP tool")
	enableQuietFlag(functionSettingsCmd)
	enableJsonFlag(functionSettingsCmd)
	functionCmd.AddCommand(functionSettingsCmd)
}

func functionSettingsCmdRun(cmd *cobra.Command, args []string) error {
	username, name, err := parseFunctionRef(args[0])
	if err != nil {
		return err
	}

	// Only flags the user actually set are sent; the rest stay nil so
	// the server leaves them untouched.
	var req api.UpdateSettingsRequest
	if cmd.Flags().Changed("description") {
		req.Description = &functionSettingsArgs.description
	}
	if cmd.Flags().Changed("private") {
		req.Private = &functionSettingsArgs.private
	}
	if cmd.Flags().Changed("mcp-tool") {
		req.MCPToolEnabled = &functionSettingsArgs.mcpTool
	}
	if req.Description == nil && req.Private == nil && req.MCPToolEnabled == nil {
		return fmt.Errorf("nothing to update; pass at least one of --description, --private, --mcp-tool")
	}

	details, err := client.UpdateFunctionSettings(ctx, username, name, req)
	if err != nil {
		return err
	}

	if !quiet && !jsonOutput {
		tprint("Successfully updated settings for %s/%s", details.Username, details.Name)
	}
	if jsonOutput {
		displayJSON(details)
	}
	return nil
}
