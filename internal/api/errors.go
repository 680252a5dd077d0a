// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package api

import (
	"fmt"
	"time"
)

// ConfigError reports missing or unusable client configuration. It is
// always raised before any network activity.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "configuration error: " + e.Reason
}

// AuthErrorKind distinguishes locally detected credential problems.
type AuthErrorKind string

const (
	AuthExpired   AuthErrorKind = "expired"
	AuthMalformed AuthErrorKind = "malformed"
)

// AuthError reports a token that failed the local pre-flight check. It
// is raised before any network activity; the server remains the final
// authority for token shapes the client does not validate locally.
type AuthError struct {
	Kind AuthErrorKind
	// ExpiredAt is set only when Kind is AuthExpired.
	ExpiredAt time.Time
}

func (e *AuthError) Error() string {
	if e.Kind == AuthExpired {
		return fmt.Sprintf("token expired at %s", e.ExpiredAt.UTC().Format(time.RFC3339))
	}
	return "malformed token"
}

// TransportError reports a request that never produced an HTTP status:
// network failure, timeout, or cancellation. Reason carries the
// cancellation cause ("deadline" or "transport-timeout") when one
// applies. Requests are never retried; a single failure surfaces as-is.
type TransportError struct {
	Op     string
	Reason string
	Err    error
}

func (e *TransportError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: request aborted (%s): %v", e.Op, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: request failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError reports a request the server rejected with a non-success
// status. UserMessage and Details are sanitized and safe to display.
// RawBody is the unmodified server response, kept for diagnostics only;
// it must never cross the display boundary unless debug mode is on.
type APIError struct {
	UserMessage string
	StatusCode  int
	Details     map[string]any
	RawBody     []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.UserMessage)
}

// UnsupportedOperationError reports an operation with no server-side
// equivalent. It is raised immediately, without a network call.
type UnsupportedOperationError struct {
	Op string
}

func (e *UnsupportedOperationError) Error() string {
	return e.Op + " is not supported by the platform"
}
