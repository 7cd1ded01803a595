package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mycelian/shopsearch/client"
)

// HealthHandler exposes the search_health tool.
type HealthHandler struct {
	client *client.Client
}

func NewHealthHandler(c *client.Client) *HealthHandler {
	return &HealthHandler{client: c}
}

func (hh *HealthHandler) RegisterTools(s *server.MCPServer) error {
	healthTool := mcp.NewTool("search_health",
		mcp.WithDescription("Report whether the search service is up and which platforms it supports"),
	)
	s.AddTool(healthTool, hh.handleHealth)
	return nil
}

func (hh *HealthHandler) handleHealth(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	hs, err := hh.client.Health(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("health check failed: %v", err)), nil
	}
	b, _ := json.MarshalIndent(hs, "", "  ")
	return mcp.NewToolResultText(string(b)), nil
}
