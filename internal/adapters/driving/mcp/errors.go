// Package mcp provides an MCP (Model Context Protocol) server adapter for testgen.
// It lets AI assistants drive the rule, control point and test case
// pipeline over stdio.
package mcp

import "errors"

// ErrMissingWorkbenchService is returned when the workbench service is not provided.
var ErrMissingWorkbenchService = errors.New("mcp: workbench service is required")
