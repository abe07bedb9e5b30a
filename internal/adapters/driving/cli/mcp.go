package cli

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/kokua-cli/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so an assistant can list cases,
set overrides, run generation and read past run reports.

By default, the server communicates over stdio using JSON-RPC.

Use --http to serve streamable HTTP instead. A bare port binds to
127.0.0.1 so case records are not exposed on other interfaces.

Examples:
  # Stdio mode (default)
  kokua mcp serve

  # HTTP mode (for MCP Inspector)
  kokua mcp serve --http :8080
  kokua mcp serve --http 0.0.0.0:8080

Client configuration:
  {
    "mcpServers": {
      "kokua": {
        "command": "/path/to/kokua",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().String("http", "", "serve streamable HTTP on host:port instead of stdio")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	httpAddr, err := cmd.Flags().GetString("http")
	if err != nil {
		return fmt.Errorf("getting http flag: %w", err)
	}

	ports := &mcp.Ports{
		Records:   recordService,
		Generate:  generateService,
		Templates: templateService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if httpAddr != "" {
		addr, err := listenAddr(httpAddr)
		if err != nil {
			return err
		}
		cmd.Printf("MCP server listening on http://%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}

// listenAddr normalises a --http value, binding bare ports to loopback.
func listenAddr(value string) (string, error) {
	if !strings.Contains(value, ":") {
		value = ":" + value
	}
	host, port, err := net.SplitHostPort(value)
	if err != nil {
		return "", fmt.Errorf("invalid --http address %q: %w", value, err)
	}
	if _, err := strconv.ParseUint(port, 10, 16); err != nil {
		return "", fmt.Errorf("invalid --http port %q", port)
	}
	if host == "" {
		host = "127.0.0.1"
	}
	return net.JoinHostPort(host, port), nil
}
