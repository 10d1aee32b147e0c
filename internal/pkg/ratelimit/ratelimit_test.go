package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-admin/internal/pkg/clock"
)

type memCounter struct {
	counts  map[string]int64
	expires map[string]time.Duration
	fail    bool
}

func newMemCounter() *memCounter {
	return &memCounter{counts: map[string]int64{}, expires: map[string]time.Duration{}}
}

func (c *memCounter) Incr(_ context.Context, key string) *redis.IntCmd {
	if c.fail {
		return redis.NewIntResult(0, errors.New("connection refused"))
	}
	c.counts[key]++
	return redis.NewIntResult(c.counts[key], nil)
}

func (c *memCounter) Expire(_ context.Context, key string, d time.Duration) *redis.BoolCmd {
	c.expires[key] = d
	return redis.NewBoolResult(true, nil)
}

func TestRedisStore_Allow(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	counter := newMemCounter()
	store := NewRedisStore(counter, 2, time.Minute, clk)

	for i := 0; i < 2; i++ {
		ok, err := store.Allow("10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, err := store.Allow("10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok, "third request in the window is denied")

	ok, err = store.Allow("10.0.0.2")
	require.NoError(t, err)
	assert.True(t, ok, "identifiers are counted separately")

	clk.Advance(time.Minute)
	ok, err = store.Allow("10.0.0.1")
	require.NoError(t, err)
	assert.True(t, ok, "next window starts fresh")

	for _, d := range counter.expires {
		assert.Equal(t, time.Minute, d)
	}
}

func TestRedisStore_Error(t *testing.T) {
	counter := newMemCounter()
	counter.fail = true
	store := NewRedisStore(counter, 5, time.Minute, clock.NewRealClock())

	ok, err := store.Allow("10.0.0.1")
	assert.False(t, ok)
	assert.Error(t, err)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore(1)

	ok, err := store.Allow("ip")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Allow("ip")
	require.NoError(t, err)
	assert.False(t, ok)
}
