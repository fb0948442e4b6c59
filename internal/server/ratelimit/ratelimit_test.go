package ratelimit

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimiter_BurstThenDeny(t *testing.T) {
	limiter := NewLimiter(Config{Capacity: 3, RefillRate: 0.001})

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow("10.0.0.1"), "request %d within burst", i)
	}
	assert.False(t, limiter.Allow("10.0.0.1"), "burst exhausted")

	// Other clients have their own bucket.
	assert.True(t, limiter.Allow("10.0.0.2"))
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("RATE_LIMIT_BURST", "")
	t.Setenv("RATE_LIMIT_RPS", "")
	cfg := LoadConfig()
	assert.Equal(t, 10, cfg.Capacity)
	assert.Equal(t, 2.0, cfg.RefillRate)

	t.Setenv("RATE_LIMIT_BURST", "25")
	t.Setenv("RATE_LIMIT_RPS", "5.5")
	cfg = LoadConfig()
	assert.Equal(t, 25, cfg.Capacity)
	assert.Equal(t, 5.5, cfg.RefillRate)
}

func TestClientKey(t *testing.T) {
	r := httptest.NewRequest("GET", "/health", nil)
	r.RemoteAddr = "192.0.2.7:51234"
	assert.Equal(t, "192.0.2.7", ClientKey(r))

	r.RemoteAddr = "no-port"
	assert.Equal(t, "no-port", ClientKey(r))
}
