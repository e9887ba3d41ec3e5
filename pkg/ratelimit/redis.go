package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRedisPrefix = "ratelimit"

// redisLimiter is a fixed-window counter shared by every replica.
type redisLimiter struct {
	client redis.UniversalClient
	cfg    Config
	prefix string
	now    func() time.Time
}

// NewRedis creates a limiter that counts requests in Redis. prefix namespaces
// the keys; empty uses "ratelimit".
func NewRedis(client redis.UniversalClient, cfg Config, prefix string) (Limiter, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return &redisLimiter{client: client, cfg: cfg, prefix: prefix, now: time.Now}, nil
}

// Allow implements Limiter. Redis failures are returned to the caller, which
// decides whether to fail open.
func (l *redisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	now := l.now()
	windowStart := now.Truncate(l.cfg.Window)
	resetAfter := windowStart.Add(l.cfg.Window).Sub(now)
	redisKey := fmt.Sprintf("%s:%s:%d", l.prefix, key, windowStart.Unix())

	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		pipe.Expire(ctx, redisKey, l.cfg.Window)
		return nil
	})
	if err != nil {
		return Decision{}, fmt.Errorf("ratelimit: redis incr %s: %w", redisKey, err)
	}

	count := int(incr.Val())
	d := Decision{
		Limit:      l.cfg.Limit,
		Remaining:  max(0, l.cfg.Limit-count),
		ResetAfter: resetAfter,
	}
	if count > l.cfg.Limit {
		d.RetryAfter = resetAfter
		return d, nil
	}
	d.Allowed = true
	return d, nil
}
