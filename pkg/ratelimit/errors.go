package ratelimit

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrLimitExceeded = errors.New("rate limit exceeded")
	ErrInvalidLimit  = errors.New("ratelimit: limit must be positive")
	ErrInvalidWindow = errors.New("ratelimit: window must be positive")
)

// Describe renders a quota the way it is reported to callers, e.g. "15 per 1 minute".
func Describe(cfg Config) string {
	if cfg.Window > 0 && cfg.Window%time.Minute == 0 {
		return fmt.Sprintf("%d per %d minute", cfg.Limit, int(cfg.Window/time.Minute))
	}
	return fmt.Sprintf("%d per %s", cfg.Limit, cfg.Window)
}
