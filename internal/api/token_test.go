// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package api

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedIDToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func TestClassifyToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  TokenKind
	}{
		{"pat mfn prefix", "mfn_abc123", TokenPAT},
		{"pat mfp prefix", "mfp_xyz", TokenPAT},
		{"pat prefix only", "mfn_", TokenPAT},
		{"mcp token", "mcp_12345", TokenMCP},
		{"three segments", "aaa.bbb.ccc", TokenID},
		{"five segments", "a.b.c.d.e", TokenJWE},
		{"two segments", "a.b", TokenOpaque},
		{"four segments", "a.b.c.d", TokenOpaque},
		{"plain string", "whatever", TokenOpaque},
		{"empty", "", TokenOpaque},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyToken(tt.token))
		})
	}
}

func TestValidateTokenPrefixedAlwaysPass(t *testing.T) {
	now := time.Now()
	// Prefixed tokens always pass locally regardless of content; the
	// server is the sole authority for them.
	for _, token := range []string{
		"mfn_valid",
		"mfn_" + strings.Repeat("x", 500),
		"mfp_definitely.not.a.jwt",
		"mcp_short",
		"mcp_a.b.c",
	} {
		assert.NoError(t, ValidateToken(token, now), token)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	expiredAt := now.Add(-2 * time.Hour)
	token := signedIDToken(t, jwt.MapClaims{"exp": expiredAt.Unix(), "sub": "user-1"})

	err := ValidateToken(token, now)
	require.Error(t, err)
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, AuthExpired, authErr.Kind)
	assert.True(t, authErr.ExpiredAt.Equal(expiredAt), "want %v got %v", expiredAt, authErr.ExpiredAt)
	assert.Contains(t, err.Error(), expiredAt.UTC().Format(time.RFC3339))
}

func TestValidateTokenExpiryBoundary(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	token := signedIDToken(t, jwt.MapClaims{"exp": now.Unix()})

	// current time >= expiry is expired
	err := ValidateToken(token, now)
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, AuthExpired, authErr.Kind)
}

func TestValidateTokenFutureExpiry(t *testing.T) {
	now := time.Now()
	token := signedIDToken(t, jwt.MapClaims{"exp": now.Add(time.Hour).Unix()})
	assert.NoError(t, ValidateToken(token, now))
}

func TestValidateTokenNoExpiryClaim(t *testing.T) {
	token := signedIDToken(t, jwt.MapClaims{"sub": "user-1"})
	assert.NoError(t, ValidateToken(token, time.Now()))
}

func TestValidateTokenMalformed(t *testing.T) {
	err := ValidateToken("not-base64.also-not.nope", time.Now())
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, AuthMalformed, authErr.Kind)
}

func TestValidateTokenUnknownShapesDeferToServer(t *testing.T) {
	// Shapes the client does not understand get no local validation.
	for _, token := range []string{"a.b.c.d.e", "a.b", "opaque-token", ""} {
		assert.NoError(t, ValidateToken(token, time.Now()), token)
	}
}
