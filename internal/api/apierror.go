// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package api

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// Fixed user-facing messages. Server detail for these statuses is
// suppressed entirely so internals never leak to a terminal.
const (
	msgValidationFailed = "Validation failed"
	msgInvalidRequest   = "Invalid request"
	msgAuthRequired     = "Authentication required"
	msgPermissionDenied = "Permission denied"
	msgNotFound         = "Resource not found"
	msgRateLimited      = "Rate limit exceeded, try again later"
	msgServerError      = "Server error, try again later"
)

// classifyError turns a non-success response into an APIError with a
// sanitized user message. The full body and status are always logged at
// the operation label for diagnostics, independent of what is shown to
// the user.
func (c *Client) classifyError(op string, status int, body []byte) *APIError {
	parsed := parseErrorBody(status, body)

	c.logger.Debug(op, "status", status, "body", parsed)

	apiErr := &APIError{
		StatusCode: status,
		RawBody:    body,
	}

	switch status {
	case http.StatusBadRequest:
		apiErr.UserMessage, apiErr.Details = sanitizeBadRequest(parsed)
	case http.StatusUnauthorized:
		apiErr.UserMessage = msgAuthRequired
	case http.StatusForbidden:
		apiErr.UserMessage = msgPermissionDenied
	case http.StatusNotFound:
		if msg, ok := parsed["error"].(string); ok && msg != "" {
			apiErr.UserMessage = msg
		} else {
			apiErr.UserMessage = msgNotFound
		}
	case http.StatusTooManyRequests:
		apiErr.UserMessage = msgRateLimited
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable:
		apiErr.UserMessage = msgServerError
	default:
		apiErr.UserMessage = "Request failed: " + http.StatusText(status)
	}

	return apiErr
}

// parseErrorBody reads an error body defensively. An empty body becomes
// a synthesized message from the status text; a body that is not a JSON
// object is wrapped verbatim as a message.
func parseErrorBody(status int, body []byte) map[string]any {
	if len(bytes.TrimSpace(body)) == 0 {
		return map[string]any{"message": http.StatusText(status)}
	}
	parsed := map[string]any{}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return map[string]any{"message": string(body)}
	}
	return parsed
}

// sanitizeBadRequest extracts a safe message from a 400 body. The
// precedence is load-bearing across server versions: a validation-errors
// collection first, then code validation errors with the server's own
// safe message, then plain error and message strings.
func sanitizeBadRequest(parsed map[string]any) (string, map[string]any) {
	if errs, ok := parsed["errors"]; ok && errs != nil {
		return msgValidationFailed, map[string]any{"validation_errors": errs}
	}
	if errs, ok := parsed["code_validation_errors"]; ok && errs != nil {
		msg, _ := parsed["message"].(string)
		if msg == "" {
			msg = msgValidationFailed
		}
		return msg, map[string]any{"code_validation_errors": errs}
	}
	if msg, ok := parsed["error"].(string); ok && msg != "" {
		return msg, nil
	}
	if msg, ok := parsed["message"].(string); ok && msg != "" {
		return msg, nil
	}
	return msgInvalidRequest, nil
}
