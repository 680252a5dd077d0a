// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"os"
	"slices"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/manifoldhq/mfn-cli/internal/api"
)

//go:embed mfn-overview.md
var overviewFS embed.FS

var ctx = context.Background()
var client *api.Client
var cliConfig Config

var (
	flagToken   string
	flagBaseURL string
	debug       bool
)

type mfnTransport struct {
	RoundTripper http.RoundTripper
	Agent        string
	Debug        bool
}

func (mt *mfnTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	r.Header.Set("User-Agent", mt.Agent)

	if mt.Debug {
		dump, err := httputil.DumpRequestOut(r, true)
		if err != nil {
			return nil, err
		}
		fmt.Println(string(dump))
	}
	res, err := mt.RoundTripper.RoundTrip(r)
	if err != nil {
		return nil, err
	}
	if mt.Debug {
		dump, err := httputil.DumpResponse(res, true)
		if err != nil {
			return res, err
		}
		fmt.Println(string(dump))
	}
	return res, nil
}

var rootCmd = &cobra.Command{
	Use:   "mfn",
	Short: "Manifold Functions CLI",
	Long: `Command line tool for the Manifold function-hosting platform.
To change the default platform host, set the MANIFOLD_API_URL environment variable.`,
}

func getFormattedOverview() string {
	content, err := overviewFS.ReadFile("mfn-overview.md")
	if err != nil {
		return rootCmd.Long
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return string(content)
	}
	formatted, err := renderer.Render(string(content))
	if err != nil {
		return string(content)
	}
	return formatted
}

// Commands that work without resolved credentials.
var unauthenticatedCommands = []string{"version", "token", "help", "completion"}

func globalPreRun(cmd *cobra.Command, args []string) error {
	if debug {
		if err := os.Setenv("MANIFOLD_DEBUG", "1"); err != nil {
			return err
		}
	} else if os.Getenv("MANIFOLD_DEBUG") == "1" {
		debug = true
	}

	cliConfig = LoadConfig()

	if slices.Contains(unauthenticatedCommands, cmd.Name()) {
		return nil
	}

	creds, err := api.ResolveCredentials(flagToken, flagBaseURL, cliConfig.BaseURL)
	if err != nil {
		return err
	}
	// Local pre-flight only; the server remains the authority.
	if err := api.ValidateToken(creds.Token, time.Now()); err != nil {
		return err
	}

	client = api.NewClient(creds,
		api.WithHTTPClient(&http.Client{Transport: &mfnTransport{
			RoundTripper: http.DefaultTransport,
			Agent:        "mfn",
			Debug:        debug,
		}}),
		api.WithLogger(newLogger(debug)),
	)
	return nil
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func main() {
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "Access token; falls back to MANIFOLD_API_TOKEN, MANIFOLD_PAT, MFN_TOKEN")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "Platform API URL; falls back to MANIFOLD_API_URL")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Debug output")

	var helpOverview bool
	rootCmd.Flags().BoolVar(&helpOverview, "help-overview", false, "Show detailed overview instead of standard help")

	originalHelpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if helpOverview {
			fmt.Print(getFormattedOverview())
			return
		}
		originalHelpFunc(cmd, args)
	})

	// This turns off printing Usage after an error
	rootCmd.SilenceUsage = true
	// We don't want root command to print errors. We'll do it ourselves.
	rootCmd.SilenceErrors = true

	rootCmd.PersistentPreRunE = globalPreRun

	err := rootCmd.Execute()
	failOnError(err)
}

// failOnError is the process-level boundary: an APIError becomes the
// two-line sanitized form (status plus message, details when present);
// anything else prints as its plain message. Raw server bodies only
// appear under explicit debug mode.
func failOnError(err error) {
	if err == nil {
		return
	}
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		tprintErr("HTTP %d: %s", apiErr.StatusCode, apiErr.UserMessage)
		if len(apiErr.Details) > 0 {
			if out, jsonErr := json.MarshalIndent(apiErr.Details, "", "  "); jsonErr == nil {
				tprintErr("%s", string(out))
			}
		}
		if debug && len(apiErr.RawBody) > 0 {
			tprintErr("raw response: %s", string(apiErr.RawBody))
		}
		os.Exit(1)
	}
	tprintErr("Failed: %s", err.Error())
	os.Exit(1)
}
