// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearTokenEnv(t *testing.T) {
	t.Helper()
	for _, name := range tokenEnvVars {
		t.Setenv(name, "")
	}
	t.Setenv(baseURLEnvVar, "")
}

func TestResolveCredentialsTokenPrecedence(t *testing.T) {
	clearTokenEnv(t)
	t.Setenv("MANIFOLD_API_TOKEN", "mfn_from_env_a")
	t.Setenv("MANIFOLD_PAT", "mfp_from_env_b")
	t.Setenv("MFN_TOKEN", "mfn_from_env_c")

	creds, err := ResolveCredentials("mfn_explicit", "", "")
	require.NoError(t, err)
	assert.Equal(t, "mfn_explicit", creds.Token)

	creds, err = ResolveCredentials("", "", "")
	require.NoError(t, err)
	assert.Equal(t, "mfn_from_env_a", creds.Token)

	t.Setenv("MANIFOLD_API_TOKEN", "")
	creds, err = ResolveCredentials("", "", "")
	require.NoError(t, err)
	assert.Equal(t, "mfp_from_env_b", creds.Token)

	t.Setenv("MANIFOLD_PAT", "")
	creds, err = ResolveCredentials("", "", "")
	require.NoError(t, err)
	assert.Equal(t, "mfn_from_env_c", creds.Token)
}

func TestResolveCredentialsNoToken(t *testing.T) {
	clearTokenEnv(t)

	_, err := ResolveCredentials("", "", "")
	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "no token", configErr.Reason)
}

func TestResolveCredentialsBaseURL(t *testing.T) {
	clearTokenEnv(t)
	t.Setenv("MFN_TOKEN", "mfn_t")

	creds, err := ResolveCredentials("", "", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, creds.BaseURL)

	creds, err = ResolveCredentials("", "", "https://config.example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://config.example.com", creds.BaseURL)

	t.Setenv("MANIFOLD_API_URL", "https://env.example.com")
	creds, err = ResolveCredentials("", "", "https://config.example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", creds.BaseURL)

	creds, err = ResolveCredentials("", "https://flag.example.com/", "")
	require.NoError(t, err)
	assert.Equal(t, "https://flag.example.com", creds.BaseURL, "trailing slash trimmed")
}
