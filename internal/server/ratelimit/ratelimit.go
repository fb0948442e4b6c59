// Package ratelimit provides per-client rate limiting using token buckets.
package ratelimit

import (
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"
)

// Config holds the limiter settings.
type Config struct {
	Capacity   int     // burst capacity per client
	RefillRate float64 // tokens per second
}

// LoadConfig reads RATE_LIMIT_BURST (default: 10) and RATE_LIMIT_RPS
// (default: 2) from the environment.
func LoadConfig() Config {
	cfg := Config{Capacity: 10, RefillRate: 2}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Capacity = n
		}
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.RefillRate = f
		}
	}
	return cfg
}

type bucket struct {
	tokens     float64
	lastRefill time.Time
}

// Limiter tracks one token bucket per client address.
type Limiter struct {
	cfg     Config
	mu      sync.Mutex
	buckets map[string]*bucket
}

// NewLimiter creates a limiter with the given configuration.
func NewLimiter(cfg Config) *Limiter {
	return &Limiter{cfg: cfg, buckets: make(map[string]*bucket)}
}

// Allow consumes one token for the client, reporting whether the request
// may proceed.
func (l *Limiter) Allow(client string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	b, ok := l.buckets[client]
	if !ok {
		b = &bucket{tokens: float64(l.cfg.Capacity), lastRefill: now}
		l.buckets[client] = b
	}

	b.tokens += now.Sub(b.lastRefill).Seconds() * l.cfg.RefillRate
	if b.tokens > float64(l.cfg.Capacity) {
		b.tokens = float64(l.cfg.Capacity)
	}
	b.lastRefill = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// ClientKey derives the limiter key for a request: the remote IP without
// the ephemeral port.
func ClientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
