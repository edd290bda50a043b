package ratelimiter

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultRequestsPerSecond = 2
	defaultBurst             = 2
	slowWaitThreshold        = time.Second
)

// RateLimiter paces outgoing requests per host.
type RateLimiter struct {
	limit    rate.Limit
	burst    int
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	log      *slog.Logger
}

func New(requestsPerSecond float64, burst int, log *slog.Logger) *RateLimiter {
	limit := rate.Limit(requestsPerSecond)
	if requestsPerSecond <= 0 {
		limit = defaultRequestsPerSecond
	}
	if burst <= 0 {
		burst = defaultBurst
	}

	return &RateLimiter{
		limit:    limit,
		burst:    burst,
		limiters: make(map[string]*rate.Limiter),
		log:      log,
	}
}

// Wait blocks until a request to host may be sent or ctx is done.
func (rl *RateLimiter) Wait(ctx context.Context, host string) error {
	limiter := rl.limiter(host)

	start := time.Now()
	if err := limiter.Wait(ctx); err != nil {
		return fmt.Errorf("wait for limiter: %w", err)
	}

	if waited := time.Since(start); waited >= slowWaitThreshold {
		rl.log.DebugContext(ctx, "Rate limiting request",
			"host", host,
			"waited", waited)
	}

	return nil
}

// Do waits for the request host's turn and sends req with client.
func (rl *RateLimiter) Do(client *http.Client, req *http.Request) (*http.Response, error) {
	if err := rl.Wait(req.Context(), req.URL.Host); err != nil {
		return nil, err
	}

	return client.Do(req) //nolint:gosec // Book API URLs come from configuration.
}

func (rl *RateLimiter) limiter(host string) *rate.Limiter {
	host = strings.ToLower(strings.TrimSpace(host))

	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rl.limit, rl.burst)
		rl.limiters[host] = limiter
	}

	return limiter
}
