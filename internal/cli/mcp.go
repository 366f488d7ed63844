package cli

import (
	"github.com/spf13/cobra"

	"ocimeta/internal/config"
	"ocimeta/internal/logging"
	"ocimeta/internal/mcp"
)

// newMCPCmd creates the mcp command, which serves metadata resolution over
// the Model Context Protocol on stdio.
func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run an MCP server exposing project metadata resolution",
		Long: `Run a Model Context Protocol server on stdin/stdout. The server exposes a
project_metadata tool that resolves the OCI label set for a given project
directory, so MCP clients can request image metadata without shelling out.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				logging.Warn("Failed to load config, using defaults", "error", err)
				defaults := config.DefaultConfig()
				cfg = &defaults
			}
			server := mcp.NewServer(cfg, logging.GetDefault(), version)
			return server.Start()
		},
	}
}
