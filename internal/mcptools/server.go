// Package mcptools exposes the deterministic scorers as Model Context Protocol tools.
package mcptools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonathan/placement-prep/internal/analysis"
)

// ServerName identifies this server to MCP clients.
const ServerName = "placement_prep"

// NewServer creates an MCP server with every tool registered.
func NewServer(version string, analyzer *analysis.Analyzer) *mcp.Server {
	if analyzer == nil {
		analyzer = analysis.New()
	}
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: version,
	}, nil)
	RegisterTools(server, analyzer)
	return server
}

// RegisterTools adds the scoring tools to server.
func RegisterTools(server *mcp.Server, analyzer *analysis.Analyzer) {
	registerAnalyzeJD(server, analyzer)
	registerATSScore(server)
	registerJobMatchScore(server)
	registerJobDigest(server)
}

// Serve runs the server over stdio until the client disconnects or ctx is cancelled.
func Serve(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}
