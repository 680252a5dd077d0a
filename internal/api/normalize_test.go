// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package api

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLegacyShapesConverge(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	snake := []byte(`{
		"username": "alice",
		"name": "hello",
		"visibility": "private",
		"mcp_tool_enabled": true,
		"deployment_status": "deployed",
		"inserted_at": "2025-03-01T10:00:00Z",
		"updated_at": "2025-03-02T10:00:00Z"
	}`)
	camel := []byte(`{
		"username": "alice",
		"name": "hello",
		"private": true,
		"mcpToolEnabled": true,
		"deploymentStatus": "deployed",
		"insertedAt": "2025-03-01T10:00:00Z",
		"updatedAt": "2025-03-02T10:00:00Z"
	}`)

	var snakeWire, camelWire workspaceWire
	require.NoError(t, json.Unmarshal(snake, &snakeWire))
	require.NoError(t, json.Unmarshal(camel, &camelWire))

	// Both historical conventions normalize to the same canonical shape.
	assert.Equal(t, snakeWire.normalize(now), camelWire.normalize(now))

	ws := snakeWire.normalize(now)
	assert.Equal(t, "alice", ws.Username)
	assert.Equal(t, "hello", ws.Name)
	assert.Equal(t, "private", ws.Visibility)
	assert.True(t, ws.MCPToolEnabled)
	assert.Equal(t, "deployed", ws.DeploymentStatus)
	assert.Equal(t, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), ws.InsertedAt)
}

func TestNormalizePrivateFlagToVisibility(t *testing.T) {
	now := time.Now()
	public := false
	private := true

	ws := (&workspaceWire{Name: "fn", Private: &public}).normalize(now)
	assert.Equal(t, "public", ws.Visibility)

	ws = (&workspaceWire{Name: "fn", Private: &private}).normalize(now)
	assert.Equal(t, "private", ws.Visibility)

	// Explicit visibility string wins over the legacy flag.
	ws = (&workspaceWire{Name: "fn", Visibility: "unlisted", Private: &private}).normalize(now)
	assert.Equal(t, "unlisted", ws.Visibility)
}

func TestNormalizeSynthesizesTimestamps(t *testing.T) {
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	ws := (&workspaceWire{Username: "bob", Name: "fresh"}).normalize(now)
	assert.Equal(t, now, ws.InsertedAt)
	assert.Equal(t, now, ws.UpdatedAt)
}

func TestNormalizeOwnerFallback(t *testing.T) {
	ws := (&workspaceWire{Owner: "carol", Name: "fn"}).normalize(time.Now())
	assert.Equal(t, "carol", ws.Username)
}

func TestNormalizeDeploymentWire(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"snake", `{"id": "d1", "status": "ok", "commit_hash": "abc", "created_at": "2025-01-01T00:00:00Z", "signature": "sig"}`},
		{"camel", `{"id": "d1", "status": "ok", "commitHash": "abc", "createdAt": "2025-01-01T00:00:00Z", "signature": "sig"}`},
		{"plain", `{"id": "d1", "status": "ok", "hash": "abc", "timestamp": "2025-01-01T00:00:00Z", "signature": "sig"}`},
	}
	want := &Deployment{
		ID:        "d1",
		Status:    "ok",
		Hash:      "abc",
		Timestamp: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Signature: "sig",
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var wire deploymentWire
			require.NoError(t, json.Unmarshal([]byte(tt.body), &wire))
			assert.Equal(t, want, wire.normalize())
		})
	}
}
