// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

func functionPath(username, name string, suffix ...string) string {
	path := fmt.Sprintf("/v1/functions/%s/%s", url.PathEscape(username), url.PathEscape(name))
	for _, s := range suffix {
		path += "/" + s
	}
	return path
}

// ListFunctions fetches every function the caller can see. The server
// returns a bare array (not wrapped in an envelope); records in either
// legacy naming convention come back as canonical Workspaces.
func (c *Client) ListFunctions(ctx context.Context) ([]Workspace, error) {
	var wire []workspaceWire
	err := c.doJSON(ctx, requestSpec{
		op:     "list functions",
		method: http.MethodGet,
		path:   "/v1/functions",
	}, &wire)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	workspaces := make([]Workspace, 0, len(wire))
	for i := range wire {
		workspaces = append(workspaces, wire[i].normalize(now))
	}
	return workspaces, nil
}

// CreateFunctionRequest describes a new function.
type CreateFunctionRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Private     bool   `json:"private,omitempty"`
	Code        string `json:"code,omitempty"`
}

// CreateFunction registers a new function. The create endpoint answers
// with a flat record and may omit timestamps; missing ones are
// synthesized from the current time.
func (c *Client) CreateFunction(ctx context.Context, req CreateFunctionRequest) (*Workspace, error) {
	var wire workspaceWire
	err := c.doJSON(ctx, requestSpec{
		op:     "create function",
		method: http.MethodPost,
		path:   "/v1/functions",
		body:   req,
	}, &wire)
	if err != nil {
		return nil, err
	}
	ws := wire.normalize(time.Now())
	return &ws, nil
}

// RenameFunction renames a function in place.
func (c *Client) RenameFunction(ctx context.Context, username, name, newName string) (*Workspace, error) {
	var wire workspaceWire
	err := c.doJSON(ctx, requestSpec{
		op:     "rename function",
		method: http.MethodPost,
		path:   functionPath(username, name, "rename"),
		body:   map[string]string{"name": newName},
	}, &wire)
	if err != nil {
		return nil, err
	}
	ws := wire.normalize(time.Now())
	return &ws, nil
}

// functionDetailsWire wraps workspaceWire with the detail-only fields.
type functionDetailsWire struct {
	workspaceWire
	Description string    `json:"description"`
	Secrets     []Secret  `json:"secrets"`
	Packages    []Package `json:"packages"`
}

// GetFunction fetches full metadata for one function.
func (c *Client) GetFunction(ctx context.Context, username, name string) (*FunctionDetails, error) {
	var wire functionDetailsWire
	err := c.doJSON(ctx, requestSpec{
		op:     "get function",
		method: http.MethodGet,
		path:   functionPath(username, name),
	}, &wire)
	if err != nil {
		return nil, err
	}
	return &FunctionDetails{
		Workspace:   wire.workspaceWire.normalize(time.Now()),
		Description: wire.Description,
		Secrets:     wire.Secrets,
		Packages:    wire.Packages,
	}, nil
}

// GetFunctionCode fetches a function's current source.
func (c *Client) GetFunctionCode(ctx context.Context, username, name string) (*FunctionCode, error) {
	var code FunctionCode
	err := c.doJSON(ctx, requestSpec{
		op:     "get function code",
		method: http.MethodGet,
		path:   functionPath(username, name, "code"),
	}, &code)
	if err != nil {
		return nil, err
	}
	return &code, nil
}

// UpdateFunctionCode replaces a function's source, which triggers a new
// deployment server-side.
func (c *Client) UpdateFunctionCode(ctx context.Context, username, name, code string) (*FunctionCode, error) {
	var updated FunctionCode
	err := c.doJSON(ctx, requestSpec{
		op:     "update function code",
		method: http.MethodPut,
		path:   functionPath(username, name, "code"),
		body:   map[string]string{"code": code},
	}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// UpdateSettingsRequest carries partial settings updates; nil fields
// are left untouched.
type UpdateSettingsRequest struct {
	Description    *string `json:"description,omitempty"`
	Private        *bool   `json:"private,omitempty"`
	MCPToolEnabled *bool   `json:"mcp_tool_enabled,omitempty"`
}

// UpdateFunctionSettings applies a partial settings update.
func (c *Client) UpdateFunctionSettings(ctx context.Context, username, name string, req UpdateSettingsRequest) (*FunctionDetails, error) {
	var wire functionDetailsWire
	err := c.doJSON(ctx, requestSpec{
		op:     "update function settings",
		method: http.MethodPatch,
		path:   functionPath(username, name, "settings"),
		body:   req,
	}, &wire)
	if err != nil {
		return nil, err
	}
	return &FunctionDetails{
		Workspace:   wire.workspaceWire.normalize(time.Now()),
		Description: wire.Description,
		Secrets:     wire.Secrets,
		Packages:    wire.Packages,
	}, nil
}

// ValidateCode submits code for server-side validation without
// deploying it.
func (c *Client) ValidateCode(ctx context.Context, code string) (*ValidationResult, error) {
	var result ValidationResult
	err := c.doJSON(ctx, requestSpec{
		op:     "validate code",
		method: http.MethodPost,
		path:   "/v1/functions/validate",
		body:   map[string]string{"code": code},
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GenerateFunction asks the platform to draft a function from a natural
// language prompt.
func (c *Client) GenerateFunction(ctx context.Context, prompt string) (*GeneratedFunction, error) {
	var generated GeneratedFunction
	err := c.doJSON(ctx, requestSpec{
		op:      "generate function",
		method:  http.MethodPost,
		path:    "/v1/functions/generate",
		body:    map[string]string{"prompt": prompt},
		timeout: 60 * time.Second,
	}, &generated)
	if err != nil {
		return nil, err
	}
	return &generated, nil
}

// RewriteFunction has no server-side equivalent. It fails immediately
// and locally, without issuing a request.
func (c *Client) RewriteFunction(ctx context.Context, username, name, prompt string) error {
	return &UnsupportedOperationError{Op: "rewrite function"}
}

// executeWire is the execution envelope. The server embeds it in the
// response body on both success and failure statuses.
type executeWire struct {
	Result      json.RawMessage `json:"result"`
	Error       string          `json:"error"`
	Details     json.RawMessage `json:"details"`
	Logs        []string        `json:"logs"`
	ExecutionID string          `json:"execution_id"`
}

// ExecuteRequest carries execution input. Timeout, when positive,
// overrides the executor's derived timeout for this call only.
type ExecuteRequest struct {
	Args    json.RawMessage
	Timeout time.Duration
}

// ExecuteFunction runs a function remotely. The body is parsed as JSON
// first regardless of status, since the server reports execution
// failures in the same envelope with non-2xx codes. Only when the body
// is not JSON does the call fall back to plain text; in that fallback a
// non-2xx status routes the already-consumed body through the error
// classifier rather than re-fetching.
func (c *Client) ExecuteFunction(ctx context.Context, username, name string, req ExecuteRequest) (*ExecuteFunctionResult, error) {
	var body map[string]json.RawMessage
	if req.Args != nil {
		body = map[string]json.RawMessage{"args": req.Args}
	}
	status, raw, err := c.do(ctx, requestSpec{
		op:      "execute function",
		method:  http.MethodPost,
		path:    functionPath(username, name, "execute"),
		body:    body,
		timeout: req.Timeout,
	})
	if err != nil {
		return nil, err
	}

	var wire executeWire
	if jsonErr := json.Unmarshal(raw, &wire); jsonErr == nil {
		return &ExecuteFunctionResult{
			OK:           isSuccess(status) && wire.Error == "",
			Result:       wire.Result,
			ErrorMessage: wire.Error,
			Details:      wire.Details,
			Logs:         wire.Logs,
			ExecutionID:  wire.ExecutionID,
		}, nil
	}

	if !isSuccess(status) {
		return nil, c.classifyError("execute function", status, raw)
	}

	// Plain text success: carry the body as a JSON string result.
	quoted, err := json.Marshal(string(raw))
	if err != nil {
		return nil, err
	}
	return &ExecuteFunctionResult{OK: true, Result: quoted}, nil
}
