//go:build integration
// +build integration

package client_test

import (
	"context"
	"testing"
	"time"

	"github.com/mycelian/shopsearch/client"
)

// TestSearchE2E sends the default query to a running service and checks that
// the reply is a product listing.
func TestSearchE2E(t *testing.T) {
	c, err := client.New(baseURL())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	resp, err := c.Search(ctx, client.SearchRequest{Query: "laptop", Platforms: []string{"alibaba"}, MaxResults: 3})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !resp.OK() {
		t.Fatalf("unexpected status %d: %s", resp.StatusCode, resp.Raw)
	}
	cat, err := resp.Catalog()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if !cat.Success || cat.Query != "laptop" || cat.Total != len(cat.Products) {
		t.Fatalf("unexpected listing: %+v", cat)
	}
	for _, p := range cat.Products {
		if p.Title == "" || p.Source == "" {
			t.Errorf("incomplete product: %+v", p)
		}
	}
}

// TestSearchE2E_RejectsUnknownPlatform checks that validation errors come back
// as a decoded JSON body rather than a client error.
func TestSearchE2E_RejectsUnknownPlatform(t *testing.T) {
	c, _ := client.New(baseURL())
	resp, err := c.Search(context.Background(), client.SearchRequest{Query: "laptop", Platforms: []string{"no-such-shop"}})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	cat, err := resp.Catalog()
	if err != nil || resp.OK() || cat.Error == "" {
		t.Fatalf("expected error body, got status %d: %s", resp.StatusCode, resp.Raw)
	}
}
