// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package api

import (
	"encoding/json"
	"time"
)

// Workspace is the canonical client-side projection of a hosted
// function record. The server has shipped at least two field-naming
// conventions for the same concepts; every inbound record is normalized
// into this shape before it leaves the gateway.
type Workspace struct {
	Username         string      `json:"username"`
	Name             string      `json:"name"`
	Visibility       string      `json:"visibility"`
	MCPToolEnabled   bool        `json:"mcp_tool_enabled"`
	DeploymentStatus string      `json:"deployment_status"`
	LatestDeployment *Deployment `json:"latest_deployment,omitempty"`
	InsertedAt       time.Time   `json:"inserted_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// Deployment is the client projection of a server-tracked build/publish
// event. A missing deployment (HTTP 404) is a valid state, represented
// as a nil *Deployment, never as an error.
type Deployment struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Hash      string    `json:"hash"`
	Timestamp time.Time `json:"timestamp"`
	Signature string    `json:"signature,omitempty"`
}

// Secret identifies a stored secret. Values are write-only; the server
// never returns them.
type Secret struct {
	Key        string    `json:"key"`
	InsertedAt time.Time `json:"inserted_at"`
}

// Package is a dependency pinned for a function.
type Package struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// FunctionDetails is the full metadata projection for one function.
type FunctionDetails struct {
	Workspace
	Description string    `json:"description,omitempty"`
	Secrets     []Secret  `json:"secrets,omitempty"`
	Packages    []Package `json:"packages,omitempty"`
}

// FunctionCode is a function's current source.
type FunctionCode struct {
	Code      string    `json:"code"`
	Language  string    `json:"language,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ExecuteFunctionResult is the outcome of one function execution. The
// server reports success and failure payloads in the same envelope
// regardless of HTTP status, so both live here: OK selects between
// Result and ErrorMessage/Details.
type ExecuteFunctionResult struct {
	OK           bool
	Result       json.RawMessage
	ErrorMessage string
	Details      json.RawMessage
	Logs         []string
	ExecutionID  string
}

// ValidationResult is the outcome of server-side code validation.
type ValidationResult struct {
	Valid  bool                  `json:"valid"`
	Errors []CodeValidationError `json:"errors,omitempty"`
}

// CodeValidationError locates one problem in submitted code.
type CodeValidationError struct {
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Message string `json:"message"`
}

// GeneratedFunction is the result of prompt-based function generation.
type GeneratedFunction struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Code        string `json:"code"`
}
