package middleware

import (
	"math"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"rental-support-chatbot/internal/metrics"
	"rental-support-chatbot/pkg/ratelimit"
	"rental-support-chatbot/pkg/response"
)

const (
	HeaderRateLimitLimit     = "X-RateLimit-Limit"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
	HeaderRateLimitReset     = "X-RateLimit-Reset"
	HeaderRetryAfter         = "Retry-After"
)

// RateLimit rejects callers over quota with 429 before the handler runs.
// Callers are identified by client IP. A limiter backend error lets the
// request through.
func (m Middleware) RateLimit(route string) gin.HandlerFunc {
	message := "Rate limit exceeded: " + ratelimit.Describe(m.limitConfig)

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := route + ":" + c.ClientIP()

		d, err := m.limiter.Allow(ctx, key)
		if err != nil {
			m.l.Warnf(ctx, "middleware.RateLimit: limiter unavailable, allowing request: %v", err)
			c.Next()
			return
		}

		c.Header(HeaderRateLimitLimit, strconv.Itoa(d.Limit))
		c.Header(HeaderRateLimitRemaining, strconv.Itoa(d.Remaining))
		c.Header(HeaderRateLimitReset, strconv.Itoa(ceilSeconds(d.ResetAfter)))

		if !d.Allowed {
			metrics.RateLimited.WithLabelValues(route).Inc()
			m.l.Warnf(ctx, "middleware.RateLimit: %s for %s", ratelimit.ErrLimitExceeded, c.ClientIP())
			c.Header(HeaderRetryAfter, strconv.Itoa(max(1, ceilSeconds(d.RetryAfter))))
			response.TooManyRequests(c, message)
			return
		}

		c.Next()
	}
}

func ceilSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Seconds()))
}
