package middleware

import (
	"rental-support-chatbot/pkg/log"
	"rental-support-chatbot/pkg/ratelimit"
)

type Middleware struct {
	l              log.Logger
	limiter        ratelimit.Limiter
	limitConfig    ratelimit.Config
	allowedOrigins []string
}

// Config is the dependency bag passed to New().
type Config struct {
	Limiter        ratelimit.Limiter
	LimitConfig    ratelimit.Config
	AllowedOrigins []string
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:              l,
		limiter:        cfg.Limiter,
		limitConfig:    cfg.LimitConfig,
		allowedOrigins: cfg.AllowedOrigins,
	}
}
