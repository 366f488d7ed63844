// Package mcp implements a Model Context Protocol (MCP) server for ocimeta
// using the mcp-go library.
//
// The server exposes project metadata resolution as a tool, so AI
// assistants can ask for a project's OCI label set through a standardized
// protocol. Communication runs over stdin/stdout using JSON-RPC 2.0 as
// specified by the MCP standard.
package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"ocimeta/internal/config"
	"ocimeta/internal/labels"
	"ocimeta/internal/logging"
	"ocimeta/internal/manifest"
	"ocimeta/internal/project"
)

// Server represents an MCP server instance using mcp-go
type Server struct {
	config    *config.Config
	logger    *logging.AppLogger
	version   string
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, logger *logging.AppLogger, version string) *Server {
	return &Server{
		config:  cfg,
		logger:  logger,
		version: version,
	}
}

// Start initializes the MCP server and serves on stdio until the client
// disconnects.
func (s *Server) Start() error {
	s.logger.Info("Initializing MCP server")

	s.mcpServer = server.NewMCPServer("ocimeta", s.version)
	s.mcpServer.AddTool(s.projectMetadataTool(), s.handleProjectMetadata)

	s.logger.Info("MCP server created, starting stdio communication")
	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	return nil
}

func (s *Server) projectMetadataTool() mcp.Tool {
	return mcp.NewTool("project_metadata",
		mcp.WithDescription("Resolve OCI image-label metadata (title, description, version, authors, vendor, licenses, url, documentation, source, created, revision) for a project directory from its package manifest."),
		mcp.WithString("path",
			mcp.Description("Project root directory to inspect. Defaults to the server's working directory."),
		),
		mcp.WithString("ecosystem",
			mcp.Description("Explicit ecosystem override (node, python, rust, php, go). When omitted the ecosystem is detected from manifest marker files."),
		),
	)
}

func (s *Server) handleProjectMetadata(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root := request.GetString("path", ".")
	override := request.GetString("ecosystem", "")
	if override == "" {
		override = s.config.DefaultEcosystem
	}

	s.logger.Debug("project_metadata requested", "path", root, "ecosystem", override)

	res, err := project.Load(root, override, manifest.DefaultRegistry())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	assembler := labels.NewAssembler(res)
	assembler.VendorFallback = s.config.VendorFallback
	lines, err := assembler.Assemble()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(labels.Render(lines)), nil
}
