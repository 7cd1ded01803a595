// Package mcp serves the search client as Model Context Protocol tools.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/mycelian/shopsearch/client"
	"github.com/mycelian/shopsearch/mcp/internal/handlers"
	"github.com/rs/zerolog/log"
)

// Default server identity advertised to MCP hosts.
const (
	DefaultServerName    = "shopsearch-mcp"
	DefaultServerVersion = "0.1.0"
)

type toolRegisterer interface {
	RegisterTools(s *server.MCPServer) error
}

// NewServer builds an MCP server with every search tool registered.
func NewServer(c *client.Client, name, version string) (*server.MCPServer, error) {
	if name == "" {
		name = DefaultServerName
	}
	if version == "" {
		version = DefaultServerVersion
	}

	s := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(true),
	)

	for _, h := range []struct {
		name string
		reg  toolRegisterer
	}{
		{"search", handlers.NewSearchHandler(c)},
		{"health", handlers.NewHealthHandler(c)},
	} {
		if err := h.reg.RegisterTools(s); err != nil {
			log.Error().Err(err).Str("handler", h.name).Msg("failed to register tools")
			return nil, err
		}
	}
	return s, nil
}

// ServeStdio runs the MCP server over stdin/stdout until the host disconnects.
// Logs must not be written to stdout while this runs.
func ServeStdio(c *client.Client, name, version string) error {
	s, err := NewServer(c, name, version)
	if err != nil {
		return err
	}
	log.Info().Str("search_service_url", c.BaseURL()).Msg("Starting shopsearch MCP server (stdio transport)")
	return server.ServeStdio(s)
}
