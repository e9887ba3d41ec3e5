package httpserver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	chatHTTP "rental-support-chatbot/internal/chat/delivery/http"
	"rental-support-chatbot/internal/middleware"
	"rental-support-chatbot/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// ReadinessCheck reports whether a backing dependency can serve traffic.
type ReadinessCheck func(ctx context.Context) error

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Chat domain
	chatHandler chatHTTP.Handler
	middleware  middleware.Middleware

	geminiConfigured bool
	readiness        ReadinessCheck
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	// TrustedProxies may set X-Forwarded-For. Empty means the socket peer is the client.
	TrustedProxies []string

	// Chat domain
	ChatHandler chatHTTP.Handler
	Middleware  middleware.Middleware

	// GeminiConfigured is reported by GET /health.
	GeminiConfigured bool
	// Readiness is optional; GET /ready answers 503 when it fails.
	Readiness ReadinessCheck
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		shutdownTimeout:  shutdownTimeout,
		chatHandler:      cfg.ChatHandler,
		middleware:       cfg.Middleware,
		geminiConfigured: cfg.GeminiConfigured,
		readiness:        cfg.Readiness,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	var trusted []string
	if len(cfg.TrustedProxies) > 0 {
		trusted = cfg.TrustedProxies
	}
	if err := srv.gin.SetTrustedProxies(trusted); err != nil {
		return nil, fmt.Errorf("httpserver.New: trusted proxies: %w", err)
	}

	srv.mapHandlers()

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatHandler == nil {
		return errors.New("chat handler is required")
	}
	return nil
}

// Handler exposes the routed engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
