// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package api

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenKind is the shape of an access token, derived purely from the
// token string. Classification never requires network access.
type TokenKind string

const (
	// TokenPAT is a personal access token (mfn_ or mfp_ prefix).
	TokenPAT TokenKind = "pat"
	// TokenMCP is a short opaque MCP integration token (mcp_ prefix).
	TokenMCP TokenKind = "mcp"
	// TokenID is a signed three-segment ID token with claims.
	TokenID TokenKind = "id-token"
	// TokenJWE is a five-segment JWE-class token, treated as opaque.
	TokenJWE TokenKind = "jwe"
	// TokenOpaque is anything the client does not recognize.
	TokenOpaque TokenKind = "opaque"
)

// ClassifyToken derives a token's kind from its prefix and structure.
// It is a pure, total function over the token string.
func ClassifyToken(token string) TokenKind {
	if strings.HasPrefix(token, "mfn_") || strings.HasPrefix(token, "mfp_") {
		return TokenPAT
	}
	if strings.HasPrefix(token, "mcp_") {
		return TokenMCP
	}
	switch len(strings.Split(token, ".")) {
	case 3:
		return TokenID
	case 5:
		return TokenJWE
	}
	return TokenOpaque
}

// ValidateToken runs the local pre-flight check for a token. PATs and
// MCP tokens always pass; the server is the sole authority for them.
// ID tokens have their claims decoded without signature verification
// (this is not a security boundary) so an obviously expired credential
// fails fast without a network round trip. Unrecognized shapes pass
// unchecked so new token formats keep working against the server.
func ValidateToken(token string, now time.Time) error {
	if ClassifyToken(token) != TokenID {
		return nil
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return &AuthError{Kind: AuthMalformed}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return &AuthError{Kind: AuthMalformed}
	}
	if exp != nil && !now.Before(exp.Time) {
		return &AuthError{Kind: AuthExpired, ExpiredAt: exp.Time}
	}
	return nil
}
