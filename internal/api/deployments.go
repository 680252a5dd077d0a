// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package api

import (
	"context"
	"net/http"
	"time"
)

// GetLatestDeployment fetches the most recent deployment for a
// function. A 404 means "no deployment yet", which is a valid state:
// it returns (nil, nil), not an error.
func (c *Client) GetLatestDeployment(ctx context.Context, username, name string) (*Deployment, error) {
	status, body, err := c.do(ctx, requestSpec{
		op:     "get latest deployment",
		method: http.MethodGet,
		path:   functionPath(username, name, "deployments", "latest"),
	})
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, nil
	}
	if !isSuccess(status) {
		return nil, c.classifyError("get latest deployment", status, body)
	}
	var wire deploymentWire
	if err := unmarshalBody("get latest deployment", body, &wire); err != nil {
		return nil, err
	}
	return wire.normalize(), nil
}

// WaitOutcome is the terminal state of a deployment wait.
type WaitOutcome string

const (
	// WaitSuccess means the deployment reached a terminal state.
	WaitSuccess WaitOutcome = "success"
	// WaitTimeout means the server's blocking endpoint gave up. It is
	// an explicit server status, distinct from a TransportError on the
	// call itself.
	WaitTimeout WaitOutcome = "timeout"
	// WaitError means the deployment failed.
	WaitError WaitOutcome = "error"
)

// DeploymentWaitResult is one of three distinct wait outcomes. Err is
// populated only for WaitError; Deployment only for WaitSuccess.
// WaitError covers only deployments the server reports as failed:
// transport failures and non-2xx HTTP responses never produce a
// result, they come back on the error return instead.
type DeploymentWaitResult struct {
	Outcome    WaitOutcome
	Deployment *Deployment
	Err        string
}

type deploymentWaitWire struct {
	Status     string          `json:"status"`
	Deployment *deploymentWire `json:"deployment"`
	Error      string          `json:"error"`
}

// WaitForDeployment polls the server's blocking wait endpoint until the
// latest deployment settles. The per-call timeout should exceed the
// server's own blocking window; transport failures surface as errors
// while a server-reported timeout comes back as WaitTimeout.
func (c *Client) WaitForDeployment(ctx context.Context, username, name string, timeout time.Duration) (*DeploymentWaitResult, error) {
	var wire deploymentWaitWire
	err := c.doJSON(ctx, requestSpec{
		op:      "wait for deployment",
		method:  http.MethodGet,
		path:    functionPath(username, name, "deployments", "wait"),
		timeout: timeout,
	}, &wire)
	if err != nil {
		return nil, err
	}

	switch {
	case wire.Error != "" || wire.Status == "error":
		return &DeploymentWaitResult{Outcome: WaitError, Err: wire.Error}, nil
	case wire.Status == "timeout":
		return &DeploymentWaitResult{Outcome: WaitTimeout}, nil
	}
	result := &DeploymentWaitResult{Outcome: WaitSuccess}
	if wire.Deployment != nil {
		result.Deployment = wire.Deployment.normalize()
	}
	return result, nil
}
