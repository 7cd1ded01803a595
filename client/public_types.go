package client

import "github.com/mycelian/shopsearch/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Requests
	SearchRequest = types.SearchRequest

	// Responses
	SearchResponse = types.SearchResponse
	Catalog        = types.Catalog
	Product        = types.Product
	Price          = types.Price
	HealthStatus   = types.HealthStatus
)
