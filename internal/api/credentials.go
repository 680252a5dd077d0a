// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package api

import (
	"os"
	"strings"
)

// DefaultBaseURL is used when neither a flag, an environment variable,
// nor a config file supplies a platform URL.
const DefaultBaseURL = "https://api.manifold.run"

// Environment fallbacks for the access token, in precedence order.
var tokenEnvVars = []string{"MANIFOLD_API_TOKEN", "MANIFOLD_PAT", "MFN_TOKEN"}

const baseURLEnvVar = "MANIFOLD_API_URL"

// Credentials is the immutable per-process client configuration.
// Resolved once at startup and passed into NewClient; the gateway never
// consults the environment itself.
type Credentials struct {
	Token   string
	BaseURL string
}

// ResolveCredentials picks a token and base URL from explicit input or
// environment fallbacks. Token precedence: explicit flag, then
// MANIFOLD_API_TOKEN, MANIFOLD_PAT, MFN_TOKEN. Base URL precedence:
// explicit flag, then MANIFOLD_API_URL, then fallbackBaseURL (typically
// from the config file), then DefaultBaseURL. Fails with a ConfigError
// when no source yields a token.
func ResolveCredentials(explicitToken, explicitBaseURL, fallbackBaseURL string) (Credentials, error) {
	token := strings.TrimSpace(explicitToken)
	if token == "" {
		for _, name := range tokenEnvVars {
			if v := strings.TrimSpace(os.Getenv(name)); v != "" {
				token = v
				break
			}
		}
	}
	if token == "" {
		return Credentials{}, &ConfigError{Reason: "no token"}
	}

	baseURL := strings.TrimSpace(explicitBaseURL)
	if baseURL == "" {
		baseURL = strings.TrimSpace(os.Getenv(baseURLEnvVar))
	}
	if baseURL == "" {
		baseURL = strings.TrimSpace(fallbackBaseURL)
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return Credentials{
		Token:   token,
		BaseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}
