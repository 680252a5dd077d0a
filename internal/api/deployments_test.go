// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLatestDeployment(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/functions/alice/hello/deployments/latest", r.URL.Path)
		w.Write([]byte(`{"id": "d1", "status": "deployed", "commitHash": "abc123", "createdAt": "2025-05-01T00:00:00Z"}`))
	}))

	deployment, err := client.GetLatestDeployment(context.Background(), "alice", "hello")
	require.NoError(t, err)
	require.NotNil(t, deployment)
	assert.Equal(t, "d1", deployment.ID)
	assert.Equal(t, "abc123", deployment.Hash)
}

func TestGetLatestDeploymentAbsentIsNotAnError(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "no deployment"}`))
	}))

	// 404 is the valid "no deployment yet" state.
	deployment, err := client.GetLatestDeployment(context.Background(), "alice", "hello")
	require.NoError(t, err)
	assert.Nil(t, deployment)
}

func TestGetLatestDeploymentServerError(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.GetLatestDeployment(context.Background(), "alice", "hello")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestWaitForDeploymentOutcomes(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantOutcome WaitOutcome
		wantErr     string
		wantID      string
	}{
		{
			name:        "success with deployment",
			body:        `{"status": "success", "deployment": {"id": "d2", "status": "deployed"}}`,
			wantOutcome: WaitSuccess,
			wantID:      "d2",
		},
		{
			name:        "server reported timeout",
			body:        `{"status": "timeout"}`,
			wantOutcome: WaitTimeout,
		},
		{
			name:        "explicit error status",
			body:        `{"status": "error", "error": "build failed"}`,
			wantOutcome: WaitError,
			wantErr:     "build failed",
		},
		{
			name:        "error field without status",
			body:        `{"error": "build failed"}`,
			wantOutcome: WaitError,
			wantErr:     "build failed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/functions/alice/hello/deployments/wait", r.URL.Path)
				w.Write([]byte(tt.body))
			}))

			result, err := client.WaitForDeployment(context.Background(), "alice", "hello", 0)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOutcome, result.Outcome)
			assert.Equal(t, tt.wantErr, result.Err)
			if tt.wantID != "" {
				require.NotNil(t, result.Deployment)
				assert.Equal(t, tt.wantID, result.Deployment.ID)
			}
		})
	}
}

func TestWaitForDeploymentNonSuccessStatus(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))

	result, err := client.WaitForDeployment(context.Background(), "alice", "hello", 0)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Permission denied", apiErr.UserMessage)
	// HTTP failures never come back as a wait outcome.
	assert.Nil(t, result)
}
