package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mycelian/shopsearch/client"
)

// SearchHandler exposes the search_products tool.
type SearchHandler struct {
	client *client.Client
}

func NewSearchHandler(c *client.Client) *SearchHandler {
	return &SearchHandler{client: c}
}

// RegisterTools registers the search_products tool.
func (sh *SearchHandler) RegisterTools(s *server.MCPServer) error {
	searchTool := mcp.NewTool("search_products",
		mcp.WithDescription("Search product listings across shopping platforms. Returns the search service's JSON reply unchanged."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search term, e.g. laptop")),
		mcp.WithArray("platforms", mcp.Required(),
			mcp.Description("Platform identifiers to search, e.g. [\"alibaba\"]"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithNumber("max_results", mcp.Description("Results per platform; omitted lets the service decide")),
	)
	s.AddTool(searchTool, sh.handleSearch)
	return nil
}

func (sh *SearchHandler) handleSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	platforms := platformsArg(req.GetArguments()["platforms"])
	if len(platforms) == 0 {
		return mcp.NewToolResultError("platforms must list at least one platform"), nil
	}

	maxResults := 0
	if v, ok := req.GetArguments()["max_results"].(float64); ok && v > 0 {
		maxResults = int(v)
	}

	resp, err := sh.client.Search(ctx, client.SearchRequest{
		Query:      query,
		Platforms:  platforms,
		MaxResults: maxResults,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	b, err := json.MarshalIndent(resp.Value(), "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
	}
	if !resp.OK() {
		return mcp.NewToolResultError(fmt.Sprintf("search service returned HTTP %d: %s", resp.StatusCode, b)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

// platformsArg accepts a JSON array of strings or a comma-separated string.
func platformsArg(v any) []string {
	var out []string
	switch t := v.(type) {
	case []any:
		for _, p := range t {
			if s, ok := p.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
	case []string:
		for _, s := range t {
			if strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
	case string:
		for _, s := range strings.Split(t, ",") {
			if strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
	}
	return out
}
