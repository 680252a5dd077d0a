// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

// Package api is the typed gateway to the Manifold function-hosting
// platform. Each operation turns into exactly one bounded, cancellable
// HTTP call; non-success statuses are classified into sanitized
// APIError values and success payloads are normalized into canonical
// result types. The package owns no persistent state: every operation
// re-fetches from the server.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// Client issues authenticated requests against one platform host. It is
// safe for concurrent use: each call owns its own cancellation
// controller and timer, and the only shared state is the immutable
// Credentials.
type Client struct {
	creds      Credentials
	httpClient *http.Client
	logger     *slog.Logger
	userAgent  string
}

// Option customizes a Client at construction time.
type Option func(*Client)

// WithHTTPClient replaces the underlying transport, e.g. to install a
// debug round-tripper. The executor still owns per-call timeouts, so
// the supplied client should not set its own Timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger routes diagnostic logging. Full server error bodies are
// logged at debug level only.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(agent string) Option {
	return func(c *Client) { c.userAgent = agent }
}

// NewClient builds a gateway over the given credentials.
func NewClient(creds Credentials, opts ...Option) *Client {
	c := &Client{
		creds:      creds,
		httpClient: &http.Client{},
		logger:     slog.Default(),
		userAgent:  "mfn",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL reports the resolved platform URL.
func (c *Client) BaseURL() string {
	return c.creds.BaseURL
}

// requestSpec describes one outbound call.
type requestSpec struct {
	op     string
	method string
	path   string
	query  url.Values
	body   any
	// timeout is the explicit per-call override; zero means derive
	// from the caller's context or fall back to DefaultTimeout.
	timeout time.Duration
}

// do runs one bounded call end to end and returns the HTTP status and
// fully read body. A nil error only means the server answered; the
// caller decides whether the status is acceptable.
func (c *Client) do(ctx context.Context, spec requestSpec) (int, []byte, error) {
	var payload io.Reader
	if spec.body != nil {
		marshaled, err := json.Marshal(spec.body)
		if err != nil {
			return 0, nil, errors.WithStack(err)
		}
		payload = bytes.NewReader(marshaled)
	}

	reqCtx, release := boundRequest(ctx, spec.timeout)
	defer release()

	target := c.creds.BaseURL + spec.path
	if len(spec.query) > 0 {
		target += "?" + spec.query.Encode()
	}
	req, err := http.NewRequestWithContext(reqCtx, spec.method, target, payload)
	if err != nil {
		return 0, nil, errors.WithStack(err)
	}
	req.Header.Set("Authorization", "Bearer "+c.creds.Token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, &TransportError{Op: spec.op, Reason: cancelReason(reqCtx), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &TransportError{Op: spec.op, Reason: cancelReason(reqCtx), Err: err}
	}

	c.logger.Debug("api call",
		"op", spec.op,
		"method", spec.method,
		"path", spec.path,
		"status", resp.StatusCode,
		"request_id", requestID)

	return resp.StatusCode, body, nil
}

// doJSON runs one call, routes any non-2xx status through the error
// classifier, and unmarshals the success body into out (skipped when
// out is nil).
func (c *Client) doJSON(ctx context.Context, spec requestSpec, out any) error {
	status, body, err := c.do(ctx, spec)
	if err != nil {
		return err
	}
	if !isSuccess(status) {
		return c.classifyError(spec.op, status, body)
	}
	if out == nil {
		return nil
	}
	return unmarshalBody(spec.op, body, out)
}

func unmarshalBody(op string, body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "%s: unexpected response body", op)
	}
	return nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
