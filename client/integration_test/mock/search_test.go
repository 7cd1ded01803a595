package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	client "github.com/mycelian/shopsearch/client"
)

func TestClient_Search_Catalog(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method != http.MethodPost || r.URL.Path != "/api/search" {
			t.Errorf("expected POST /api/search, got %s %s", r.Method, r.URL.Path)
		}
		var req client.SearchRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		_ = json.NewEncoder(w).Encode(client.Catalog{
			Success:  true,
			Query:    req.Query,
			Total:    1,
			Products: []client.Product{{Title: "ThinkPad", Price: "$499", Source: "Alibaba"}},
		})
	}))
	defer srv.Close()

	c, err := client.New(srv.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	res, err := c.Search(context.Background(), client.SearchRequest{Query: "laptop", Platforms: []string{"alibaba"}})
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	cat, err := res.Catalog()
	if err != nil || cat.Query != "laptop" || len(cat.Products) != 1 || cat.Products[0].Price != "$499" {
		t.Fatalf("unexpected catalog: %+v err=%v", cat, err)
	}
}

func TestClient_Search_ContextCanceled(t *testing.T) {
	t.Parallel()
	c, _ := client.New("http://127.0.0.1:1")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.Search(ctx, client.SearchRequest{Query: "x"}); err == nil {
		t.Fatal("expected error for canceled context")
	}
}

func TestClient_Health(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/health" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"status":"healthy","message":"Backend is running"}`))
	}))
	defer srv.Close()

	c, _ := client.New(srv.URL)
	hs, err := c.Health(context.Background())
	if err != nil || hs.Message != "Backend is running" {
		t.Fatalf("unexpected health: %+v err=%v", hs, err)
	}
}
