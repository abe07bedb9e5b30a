// Package driving holds the interfaces the CLI, TUI, MCP server and inbox
// watcher call into. internal/core/services implements them.
package driving
