// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package api

import (
	"context"
	"net/http"
	"net/url"
)

// ListSecrets fetches the keys of a function's stored secrets. Values
// are never returned by the server.
func (c *Client) ListSecrets(ctx context.Context, username, name string) ([]Secret, error) {
	var wire struct {
		Secrets []Secret `json:"secrets"`
	}
	err := c.doJSON(ctx, requestSpec{
		op:     "list secrets",
		method: http.MethodGet,
		path:   functionPath(username, name, "secrets"),
	}, &wire)
	if err != nil {
		return nil, err
	}
	return wire.Secrets, nil
}

// CreateSecret stores a new secret for a function.
func (c *Client) CreateSecret(ctx context.Context, username, name, key, value string) (*Secret, error) {
	var secret Secret
	err := c.doJSON(ctx, requestSpec{
		op:     "create secret",
		method: http.MethodPost,
		path:   functionPath(username, name, "secrets"),
		body:   map[string]string{"key": key, "value": value},
	}, &secret)
	if err != nil {
		return nil, err
	}
	return &secret, nil
}

// DeleteSecret removes a secret by key.
func (c *Client) DeleteSecret(ctx context.Context, username, name, key string) error {
	return c.doJSON(ctx, requestSpec{
		op:     "delete secret",
		method: http.MethodDelete,
		path:   functionPath(username, name, "secrets", url.PathEscape(key)),
	}, nil)
}

// UpdateSecret has no server-side equivalent: secrets are immutable
// once stored. It fails immediately and locally, without issuing a
// request. Delete and re-create the secret instead.
func (c *Client) UpdateSecret(ctx context.Context, username, name, key, value string) error {
	return &UnsupportedOperationError{Op: "update secret"}
}
