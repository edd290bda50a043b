package ratelimiter

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestLimiterIsPerHost(t *testing.T) {
	rl := New(1, 1, slog.Default())

	if rl.limiter("a.example") == rl.limiter("b.example") {
		t.Fatalf("expected separate limiters per host")
	}

	if rl.limiter("A.example ") != rl.limiter("a.example") {
		t.Fatalf("expected host names to be normalized")
	}
}

func TestWaitHonorsContext(t *testing.T) {
	rl := New(0.001, 1, slog.Default())
	ctx := context.Background()

	if err := rl.Wait(ctx, "slow.example"); err != nil {
		t.Fatalf("expected first request to pass immediately: %v", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()

	if err := rl.Wait(ctx, "slow.example"); err == nil {
		t.Fatalf("expected second request to fail once the context expires")
	}
}

func TestDefaults(t *testing.T) {
	rl := New(0, 0, slog.Default())

	if rl.limit != defaultRequestsPerSecond || rl.burst != defaultBurst {
		t.Fatalf("unexpected defaults: limit = %v burst = %d", rl.limit, rl.burst)
	}
}

func TestDoSendsRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	rl := New(100, 10, slog.Default())

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL, nil)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	resp, err := rl.Do(srv.Client(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
}
