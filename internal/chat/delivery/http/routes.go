package http

import (
	"github.com/gin-gonic/gin"

	"rental-support-chatbot/internal/middleware"
)

// RateLimitRoute names the quota bucket of the chat endpoint.
const RateLimitRoute = "chat"

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The chat endpoint runs behind the per-caller rate limiter.
func RegisterRoutes(rg gin.IRouter, h Handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.RateLimit(RateLimitRoute), h.Chat)
}
