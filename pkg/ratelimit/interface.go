// Package ratelimit enforces a per-caller request quota.
package ratelimit

import (
	"context"
	"time"
)

// Limiter decides whether the caller identified by key may proceed.
// Implementations are safe for concurrent use.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

// Decision describes the quota state after one Allow call.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	// ResetAfter is the time until the quota is fully available again.
	ResetAfter time.Duration
	// RetryAfter is set when Allowed is false.
	RetryAfter time.Duration
}

// Config is shared by all backends.
type Config struct {
	// Limit is the number of requests allowed per Window.
	Limit  int
	Window time.Duration
}

func (c Config) validate() error {
	if c.Limit <= 0 {
		return ErrInvalidLimit
	}
	if c.Window <= 0 {
		return ErrInvalidWindow
	}
	return nil
}
