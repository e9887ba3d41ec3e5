package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"rental-support-chatbot/config"
	_ "rental-support-chatbot/docs" // Swagger docs
	chatHTTP "rental-support-chatbot/internal/chat/delivery/http"
	chatUC "rental-support-chatbot/internal/chat/usecase"
	"rental-support-chatbot/internal/completion"
	"rental-support-chatbot/internal/httpserver"
	"rental-support-chatbot/internal/middleware"
	"rental-support-chatbot/internal/router"
	"rental-support-chatbot/pkg/gemini"
	"rental-support-chatbot/pkg/log"
	"rental-support-chatbot/pkg/ratelimit"
	"rental-support-chatbot/pkg/tracing"
)

const (
	redisKeyPrefix = "chatbot:ratelimit"
	serviceName    = "rental-support-chatbot"
)

// @title       Vehicle Rental Chatbot API
// @description Customer-support chatbot for a vehicle rental business, backed by Gemini.
// @version     1
// @host        localhost:8000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Vehicle Rental Chatbot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Tracing
	shutdownTracing, err := tracing.Init(tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: serviceName,
		SampleRatio: cfg.Tracing.SampleRatio,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize tracing: %v", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warnf(flushCtx, "Failed to flush traces: %v", err)
		}
	}()

	// 4. Completion client
	geminiClient, err := gemini.New(ctx, gemini.Config{
		APIKey:  cfg.Gemini.APIKey,
		BaseURL: cfg.Gemini.BaseURL,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Gemini client: %v", err)
	}

	gateway := completion.New(logger, geminiClient, completion.Config{
		ModelOverride:   cfg.Gemini.ModelOverride,
		AttemptTimeout:  cfg.Gemini.AttemptTimeout,
		MaxTotalTimeout: cfg.Chat.RequestTimeout,
	})
	logger.Infof(ctx, "Model candidates: %v", gateway.Candidates())

	// 5. Chat domain
	chatUseCase := chatUC.New(logger, router.New(), gateway)
	chatHandler := chatHTTP.New(logger, chatUseCase)

	// 6. Rate limiter
	limitCfg := ratelimit.Config{Limit: cfg.RateLimit.RequestsPerMinute, Window: time.Minute}
	limiter, readiness, closeLimiter, err := newLimiter(ctx, cfg, limitCfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize rate limiter: %v", err)
	}
	defer closeLimiter()
	logger.Infof(ctx, "Rate limit: %s (%s backend)", ratelimit.Describe(limitCfg), cfg.RateLimit.Backend)

	mw := middleware.New(logger, middleware.Config{
		Limiter:        limiter,
		LimitConfig:    limitCfg,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		ShutdownTimeout:  cfg.HTTPServer.ShutdownTimeout,
		TrustedProxies:   cfg.HTTPServer.TrustedProxies,
		ChatHandler:      chatHandler,
		Middleware:       mw,
		GeminiConfigured: cfg.Gemini.APIKey != "",
		Readiness:        readiness,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize HTTP server: %v", err)
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Fatalf(ctx, "Failed to run server: %v", err)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// newLimiter builds the configured limiter backend. The redis backend also
// returns a readiness probe and a close func.
func newLimiter(ctx context.Context, cfg *config.Config, limitCfg ratelimit.Config) (ratelimit.Limiter, httpserver.ReadinessCheck, func(), error) {
	if cfg.RateLimit.Backend != config.RateLimitBackendRedis {
		limiter, err := ratelimit.NewMemory(limitCfg)
		return limiter, nil, func() {}, err
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, nil, fmt.Errorf("redis ping %s: %w", cfg.Redis.Address, err)
	}

	limiter, err := ratelimit.NewRedis(client, limitCfg, redisKeyPrefix)
	if err != nil {
		_ = client.Close()
		return nil, nil, nil, err
	}

	readiness := func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
	return limiter, readiness, func() { _ = client.Close() }, nil
}
