// ABOUTME: CLI command starting the MCP server over stdio.
// ABOUTME: Runs the background sync loop alongside the server.
package main

import (
	"github.com/spf13/cobra"

	"github.com/harperreed/habits/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server (stdio)",
	Long: `Start the Model Context Protocol server on stdio for use with
MCP-compatible AI assistants. While the server runs, the background sync
loop pushes local state every five minutes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(appState)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if appState.Sync != nil {
			go appState.Sync.Run(ctx)
		}

		return server.Serve(ctx)
	},
}
