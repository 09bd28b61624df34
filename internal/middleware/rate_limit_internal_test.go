package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyedRateLimiter_SweepsIdleKeys(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	limiter := NewKeyedRateLimiter(1, 1)
	limiter.now = func() time.Time { return now }
	limiter.lastSweep = now

	ok, _ := limiter.Reserve("10.0.0.1")
	assert.True(t, ok)
	ok, _ = limiter.Reserve("10.0.0.2")
	assert.True(t, ok)
	assert.Equal(t, 2, limiter.Len())

	now = now.Add(5 * time.Minute)
	ok, _ = limiter.Reserve("10.0.0.2")
	assert.True(t, ok)

	// 10.0.0.1 idle 11 menit, 10.0.0.2 baru 6 menit
	now = now.Add(6 * time.Minute)
	limiter.Reserve("10.0.0.3")
	assert.Equal(t, 2, limiter.Len())
}

func TestKeyedRateLimiter_RetryAfter(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	limiter := NewKeyedRateLimiter(0.5, 1)
	limiter.now = func() time.Time { return now }

	ok, _ := limiter.Reserve("u-1")
	assert.True(t, ok)

	ok, retryAfter := limiter.Reserve("u-1")
	assert.False(t, ok)
	assert.Equal(t, 2*time.Second, retryAfter)

	// token tidak ikut terpakai oleh reservasi yang dibatalkan
	now = now.Add(2 * time.Second)
	ok, _ = limiter.Reserve("u-1")
	assert.True(t, ok)
}
