// ABOUTME: MCP server setup for the wellness journal.
// ABOUTME: Wraps the MCP server with the record store and insight client.
package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/harperreed/velamind/internal/insight"
	"github.com/harperreed/velamind/internal/models"
	"github.com/harperreed/velamind/internal/storage"
)

// Version is reported to MCP clients.
const Version = "1.0.0"

// Server wraps the MCP server with storage access.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
	insights  *insight.Client
	logger    *zap.Logger
}

// NewServer creates an MCP server over repo. A nil insights client behaves
// as one without an API key.
func NewServer(repo storage.Repository, insights *insight.Client, logger *zap.Logger) (*Server, error) {
	if insights == nil {
		insights = insight.NewClient("", nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "velamind",
			Version: Version,
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
		insights:  insights,
		logger:    logger,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("mcp server starting", zap.String("transport", "stdio"))
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// today resolves the store's current date as a local midnight.
func (s *Server) today() time.Time {
	t, err := models.ParseDate(s.repo.Today())
	if err != nil {
		return time.Now()
	}
	return t
}
