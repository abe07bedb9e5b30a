// Package mcp provides an MCP (Model Context Protocol) server adapter for kokua.
// It lets an assistant review imported cases and run document assembly.
package mcp

import "errors"

var (
	// ErrMissingRecordService is returned when the record service is not provided.
	ErrMissingRecordService = errors.New("mcp: record service is required")

	// ErrGenerateUnavailable is returned by generation tools when no generate service is wired.
	ErrGenerateUnavailable = errors.New("mcp: generate service not configured")

	// ErrTemplatesUnavailable is returned by template tools when no template service is wired.
	ErrTemplatesUnavailable = errors.New("mcp: template service not configured")
)
