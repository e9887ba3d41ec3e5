package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rental-support-chatbot/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "Vehicle Rental Chatbot"
)

// rootCheck returns the static service identity.
// @Summary Service identity
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is up"
// @Router / [get]
func (srv HTTPServer) rootCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"service": ServiceName,
		"version": HealthVersion,
	})
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Reports whether a completion API credential is configured
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":            "ok",
		"gemini_configured": srv.geminiConfigured,
	})
}

// readyCheck returns ready when the server and its optional backing store are reachable.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "Dependency unavailable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.readiness != nil {
		if err := srv.readiness(c.Request.Context()); err != nil {
			srv.l.Warnf(c.Request.Context(), "httpserver.readyCheck: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unavailable",
				"service": ServiceName,
			})
			return
		}
	}
	response.OK(c, gin.H{
		"status":  "ready",
		"service": ServiceName,
		"version": HealthVersion,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": ServiceName,
		"version": HealthVersion,
	})
}
