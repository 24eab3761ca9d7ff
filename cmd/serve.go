package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing the personnel queries as tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes every query of
this tool (identity, gender, address, emails, event, health, dental,
disability) as a callable tool. Queries against the single SAP session
are serialized; concurrent tool calls queue.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  sap-hr-cli serve
  sap-hr-cli serve --transport streamable-http --port 8080
  sap-hr-cli --synthetic serve`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")

	srv, err := newMCPServer()
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}
	return srv.serve(transport, port)
}
