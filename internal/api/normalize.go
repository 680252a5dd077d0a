// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package api

import (
	"time"
)

// workspaceWire accepts every known historical field-naming convention
// for a function record. Older servers emit camelCase fields and a
// boolean private flag; newer ones emit snake_case and a visibility
// string. Both decode into this struct and normalize() folds them into
// the canonical Workspace. The ambiguity never leaks past the gateway.
type workspaceWire struct {
	Username string `json:"username"`
	Owner    string `json:"owner"`
	Name     string `json:"name"`

	Visibility string `json:"visibility"`
	Private    *bool  `json:"private"`

	MCPToolEnabledSnake *bool `json:"mcp_tool_enabled"`
	MCPToolEnabledCamel *bool `json:"mcpToolEnabled"`

	DeploymentStatusSnake string `json:"deployment_status"`
	DeploymentStatusCamel string `json:"deploymentStatus"`

	LatestDeploymentSnake *deploymentWire `json:"latest_deployment"`
	LatestDeploymentCamel *deploymentWire `json:"latestDeployment"`

	InsertedAtSnake string `json:"inserted_at"`
	InsertedAtCamel string `json:"insertedAt"`
	UpdatedAtSnake  string `json:"updated_at"`
	UpdatedAtCamel  string `json:"updatedAt"`
}

// normalize folds a wire record into the canonical shape. now supplies
// timestamps when the server omits them (the create endpoint does).
func (w *workspaceWire) normalize(now time.Time) Workspace {
	ws := Workspace{
		Username: firstNonEmpty(w.Username, w.Owner),
		Name:     w.Name,
	}

	ws.Visibility = w.Visibility
	if ws.Visibility == "" && w.Private != nil {
		if *w.Private {
			ws.Visibility = "private"
		} else {
			ws.Visibility = "public"
		}
	}

	if w.MCPToolEnabledSnake != nil {
		ws.MCPToolEnabled = *w.MCPToolEnabledSnake
	} else if w.MCPToolEnabledCamel != nil {
		ws.MCPToolEnabled = *w.MCPToolEnabledCamel
	}

	ws.DeploymentStatus = firstNonEmpty(w.DeploymentStatusSnake, w.DeploymentStatusCamel)

	if w.LatestDeploymentSnake != nil {
		ws.LatestDeployment = w.LatestDeploymentSnake.normalize()
	} else if w.LatestDeploymentCamel != nil {
		ws.LatestDeployment = w.LatestDeploymentCamel.normalize()
	}

	ws.InsertedAt = parseTimeOr(firstNonEmpty(w.InsertedAtSnake, w.InsertedAtCamel), now)
	ws.UpdatedAt = parseTimeOr(firstNonEmpty(w.UpdatedAtSnake, w.UpdatedAtCamel), now)
	return ws
}

// deploymentWire accepts both deployment field conventions.
type deploymentWire struct {
	ID     string `json:"id"`
	Status string `json:"status"`

	HashSnake string `json:"commit_hash"`
	HashCamel string `json:"commitHash"`
	Hash      string `json:"hash"`

	TimestampSnake string `json:"created_at"`
	TimestampCamel string `json:"createdAt"`
	Timestamp      string `json:"timestamp"`

	Signature string `json:"signature"`
}

func (d *deploymentWire) normalize() *Deployment {
	return &Deployment{
		ID:        d.ID,
		Status:    d.Status,
		Hash:      firstNonEmpty(d.Hash, d.HashSnake, d.HashCamel),
		Timestamp: parseTimeOr(firstNonEmpty(d.Timestamp, d.TimestampSnake, d.TimestampCamel), time.Time{}),
		Signature: d.Signature,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func parseTimeOr(value string, fallback time.Time) time.Time {
	if value == "" {
		return fallback
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return fallback
	}
	return t
}
