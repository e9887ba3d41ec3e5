package ratelimit

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	memoryMaxKeys = 10000
	memoryKeyTTL  = 5 * time.Minute
)

// memoryLimiter is a token bucket per key. Idle keys expire from an LRU.
type memoryLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	cfg      Config
	rate     rate.Limit
	now      func() time.Time
}

// NewMemory creates an in-process limiter allowing cfg.Limit requests per
// cfg.Window with a burst of cfg.Limit.
func NewMemory(cfg Config) (Limiter, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return newMemory(cfg, time.Now), nil
}

func newMemory(cfg Config, now func() time.Time) *memoryLimiter {
	ttl := memoryKeyTTL
	if cfg.Window > ttl {
		ttl = cfg.Window
	}
	return &memoryLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](memoryMaxKeys, nil, ttl),
		cfg:      cfg,
		rate:     rate.Limit(float64(cfg.Limit) / cfg.Window.Seconds()),
		now:      now,
	}
}

func (m *memoryLimiter) get(key string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	limiter, ok := m.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(m.rate, m.cfg.Limit)
		m.limiters.Add(key, limiter)
	}
	return limiter
}

// Allow implements Limiter.
func (m *memoryLimiter) Allow(_ context.Context, key string) (Decision, error) {
	limiter := m.get(key)
	now := m.now()

	d := Decision{Limit: m.cfg.Limit}

	r := limiter.ReserveN(now, 1)
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		d.RetryAfter = delay
	} else {
		d.Allowed = true
	}

	tokens := limiter.TokensAt(now)
	d.Remaining = int(math.Max(0, math.Floor(tokens)))
	missing := float64(m.cfg.Limit) - tokens
	if missing > 0 {
		d.ResetAfter = time.Duration(missing / float64(m.rate) * float64(time.Second))
	}

	return d, nil
}
