package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrNotCatalog is returned by Catalog when the body is not a product listing.
var ErrNotCatalog = errors.New("reply is not a product listing")

// ------------------------------
// Response Types
// ------------------------------

// SearchResponse holds the decoded /api/search body. The backend's shape is not
// part of the contract, so the primary result is the opaque Value.
type SearchResponse struct {
	StatusCode int
	Raw        json.RawMessage
	value      any
}

// NewSearchResponse builds a response from an already decoded body.
func NewSearchResponse(status int, raw json.RawMessage, value any) *SearchResponse {
	return &SearchResponse{StatusCode: status, Raw: raw, value: value}
}

// Value returns the decoded JSON value (map[string]any, []any, string,
// json.Number, bool or nil). Numbers keep their literal text as json.Number.
func (r *SearchResponse) Value() any { return r.value }

// OK reports whether the exchange returned a 2xx status.
func (r *SearchResponse) OK() bool { return r.StatusCode >= 200 && r.StatusCode < 300 }

// Catalog decodes the product listing shape returned by the known backends.
// It returns ErrNotCatalog when the body is null, not an object, or an object
// with neither a "products" nor an "error" key. A known field of the wrong
// type, such as a string "total", yields the decode error.
func (r *SearchResponse) Catalog() (*Catalog, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(r.Raw, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotCatalog, err)
	}
	_, hasProducts := fields["products"]
	_, hasError := fields["error"]
	if !hasProducts && !hasError {
		return nil, ErrNotCatalog
	}

	var c Catalog
	if err := json.Unmarshal(r.Raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Catalog mirrors the {"success","query","total","products"} listing.
type Catalog struct {
	Success        bool      `json:"success"`
	Query          string    `json:"query"`
	Total          int       `json:"total"`
	Products       []Product `json:"products"`
	ElapsedSeconds float64   `json:"elapsed_seconds,omitempty"`
	Error          string    `json:"error,omitempty"`
}

// Product is a single listing from one platform.
type Product struct {
	Title  string `json:"title"`
	Price  Price  `json:"price"`
	Image  string `json:"image,omitempty"`
	Link   string `json:"link,omitempty"`
	Source string `json:"source"`
}

// Price is reported as a formatted string by scrapers and as a bare number by
// some marketplace APIs; both decode to text.
type Price string

func (p *Price) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*p = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*p = Price(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*p = Price(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}

// HealthStatus mirrors the /api/health body.
type HealthStatus struct {
	Status    string   `json:"status"`
	Message   string   `json:"message,omitempty"`
	Headless  *bool    `json:"headless,omitempty"`
	Platforms []string `json:"platforms,omitempty"`
}
