package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestWaitUntilHealthy_EventuallyUp(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"status":"healthy","message":"Backend is running"}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	hs, err := c.WaitUntilHealthy(context.Background(), 5*time.Second)
	if err != nil {
		t.Fatalf("WaitUntilHealthy: %v", err)
	}
	if hs.Status != "healthy" || atomic.LoadInt32(&calls) != 3 {
		t.Fatalf("unexpected result %+v after %d calls", hs, calls)
	}
}

func TestWaitUntilHealthy_GivesUp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c, _ := New(srv.URL)
	start := time.Now()
	if _, err := c.WaitUntilHealthy(context.Background(), 300*time.Millisecond); err == nil {
		t.Fatal("expected error")
	}
	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Fatalf("wait overran its budget: %v", elapsed)
	}
}

func TestWaitUntilHealthy_SingleAttempt(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c, _ := New(srv.URL)
	if _, err := c.WaitUntilHealthy(context.Background(), 0); err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Fatalf("expected one attempt, got %d", calls)
	}
}

func TestWaitUntilHealthy_CallerCancel(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(150*time.Millisecond, cancel)

	c, _ := New(srv.URL)
	start := time.Now()
	_, err := c.WaitUntilHealthy(ctx, time.Minute)
	if err == nil {
		t.Fatal("expected error after cancel")
	}
	if atomic.LoadInt32(&calls) == 0 {
		t.Fatal("expected at least one health check")
	}
	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Fatalf("cancel did not interrupt the backoff wait: %v", elapsed)
	}
}
