package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	clienterrors "github.com/mycelian/shopsearch/client/internal/errors"
	"github.com/mycelian/shopsearch/client/internal/types"
)

// Health fetches the service status. Non-2xx responses are reported as errors.
func Health(ctx context.Context, httpClient types.HTTPClient, baseURL string) (*types.HealthStatus, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint(baseURL, HealthPath), http.NoBody)
	if err != nil {
		return nil, err
	}

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, clienterrors.NewNetworkError("health", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("health: status %d", resp.StatusCode)
	}

	var hs types.HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&hs); err != nil {
		return nil, clienterrors.NewDecodeError("health", resp.StatusCode, nil, err)
	}
	return &hs, nil
}
