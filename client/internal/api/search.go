package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	clienterrors "github.com/mycelian/shopsearch/client/internal/errors"
	"github.com/mycelian/shopsearch/client/internal/types"
)

// Search posts req to the search endpoint and decodes the body as JSON.
// Any HTTP status is a completed exchange; only transport and decode
// failures are returned as errors.
func Search(ctx context.Context, httpClient types.HTTPClient, baseURL string, req types.SearchRequest) (*types.SearchResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.Platforms == nil {
		req.Platforms = []string{}
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint(baseURL, SearchPath), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, clienterrors.NewNetworkError("search", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, clienterrors.NewNetworkError("search", err)
	}
	value, err := decodeJSON(body)
	if err != nil {
		return nil, clienterrors.NewDecodeError("search", resp.StatusCode, body, err)
	}
	return types.NewSearchResponse(resp.StatusCode, body, value), nil
}
