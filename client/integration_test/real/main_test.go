//go:build integration
// +build integration

package client_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/mycelian/shopsearch/client"
)

func baseURL() string {
	if u := os.Getenv("SHOPSEARCH_URL"); u != "" {
		return u
	}
	return client.DefaultBaseURL
}

// TestMain waits for the search service health endpoint before running tests.
func TestMain(m *testing.M) {
	c, err := client.New(baseURL())
	if err != nil {
		panic(err)
	}
	if _, err := c.WaitUntilHealthy(context.Background(), 30*time.Second); err != nil {
		panic("search service not healthy at /api/health within timeout: " + err.Error())
	}
	os.Exit(m.Run())
}
