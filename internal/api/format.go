// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package api

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Format renders an execution result for terminal display: the result
// (or error) as indented JSON, plus a Logs section when requested and
// logs are present.
func (r *ExecuteFunctionResult) Format(includeLogs bool) string {
	var b strings.Builder

	if r.OK {
		if len(r.Result) > 0 {
			b.WriteString(indentJSON(r.Result))
		}
	} else {
		b.WriteString("Error: " + r.ErrorMessage)
		if len(r.Details) > 0 {
			b.WriteString("\n" + indentJSON(r.Details))
		}
	}

	if includeLogs && len(r.Logs) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("Logs:")
		for _, line := range r.Logs {
			b.WriteString("\n- " + line)
		}
	}

	return b.String()
}

func indentJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
