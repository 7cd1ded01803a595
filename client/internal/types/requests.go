package types

// ------------------------------
// Request Types
// ------------------------------

// SearchRequest is the payload posted to /api/search.
type SearchRequest struct {
	Query     string   `json:"query"`
	Platforms []string `json:"platforms"`
	// MaxResults is omitted from the body when zero; the backend applies its own default.
	MaxResults int `json:"max_results,omitempty"`
}
