// Package ratelimit provides echo rate limiter stores for the public endpoints.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/light-bringer/storefront-admin/internal/pkg/clock"
)

// Counter is the subset of *redis.Client the store needs.
type Counter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// RedisStore is a fixed-window limiter shared by every replica.
// It implements middleware.RateLimiterStore.
type RedisStore struct {
	counter Counter
	limit   int64
	window  time.Duration
	prefix  string
	clock   clock.Clock
	timeout time.Duration
}

// NewRedisStore allows limit requests per identifier per window.
func NewRedisStore(counter Counter, limit int64, window time.Duration, clk clock.Clock) *RedisStore {
	return &RedisStore{
		counter: counter,
		limit:   limit,
		window:  window,
		prefix:  "ratelimit",
		clock:   clk,
		timeout: 500 * time.Millisecond,
	}
}

// Allow counts one request for identifier in the current window.
func (s *RedisStore) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	bucket := s.clock.Now().UnixNano() / int64(s.window)
	key := fmt.Sprintf("%s:%s:%d", s.prefix, identifier, bucket)

	n, err := s.counter.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		if err := s.counter.Expire(ctx, key, s.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n <= s.limit, nil
}

// NewMemoryStore is the single-process fallback used when no redis address is configured.
func NewMemoryStore(perMinute int) middleware.RateLimiterStore {
	return middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(perMinute) / 60.0),
		Burst:     perMinute,
		ExpiresIn: 3 * time.Minute,
	})
}
