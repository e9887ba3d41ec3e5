package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	RateLimitBackendMemory = "memory"
	RateLimitBackendRedis  = "redis"
)

var (
	ErrMissingAPIKey       = errors.New("gemini api key is required (set API_KEY or GEMINI_API_KEY)")
	ErrInvalidPort         = errors.New("http_server.port must be positive")
	ErrInvalidRateLimit    = errors.New("rate_limit.requests_per_minute must be positive")
	ErrUnknownLimitBackend = errors.New("rate_limit.backend must be memory or redis")
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Chat pipeline
	Gemini GeminiConfig
	Chat   ChatConfig

	// Throttling
	RateLimit RateLimitConfig
	Redis     RedisConfig

	CORS CORSConfig

	Tracing TracingConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
	TrustedProxies  []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type GeminiConfig struct {
	APIKey         string
	ModelOverride  string
	BaseURL        string
	AttemptTimeout time.Duration
}

type ChatConfig struct {
	// RequestTimeout bounds the whole model fallback chain.
	RequestTimeout time.Duration
}

type RateLimitConfig struct {
	RequestsPerMinute int
	Backend           string
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type TracingConfig struct {
	Enabled     bool
	SampleRatio float64
}

type CORSConfig struct {
	AllowedOrigins []string
}

// envAliases lists the environment variables accepted for each key, in
// order of precedence.
var envAliases = map[string][]string{
	"environment.name":               {"ENVIRONMENT_NAME"},
	"http_server.port":               {"PORT", "HTTP_SERVER_PORT"},
	"http_server.mode":               {"HTTP_SERVER_MODE"},
	"http_server.trusted_proxies":    {"HTTP_SERVER_TRUSTED_PROXIES"},
	"gemini.api_key":                 {"API_KEY", "GEMINI_API_KEY"},
	"gemini.model_override":          {"MODEL_OVERRIDE", "GEMINI_MODEL"},
	"gemini.base_url":                {"GEMINI_BASE_URL"},
	"rate_limit.requests_per_minute": {"RATE_LIMIT_PER_MIN"},
	"rate_limit.backend":             {"RATE_LIMIT_BACKEND"},
	"redis.address":                  {"REDIS_ADDRESS"},
	"redis.password":                 {"REDIS_PASSWORD"},
	"redis.db":                       {"REDIS_DB"},
	"cors.allowed_origins":           {"CORS_ALLOWED_ORIGINS"},
	"tracing.enabled":                {"TRACING_ENABLED"},
	"tracing.sample_ratio":           {"TRACING_SAMPLE_RATIO"},
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	// Missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)
	for key, envs := range envAliases {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.HTTPServer.TrustedProxies = listValue(v, "http_server.trusted_proxies")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Chat pipeline
	cfg.Gemini.APIKey = strings.TrimSpace(v.GetString("gemini.api_key"))
	cfg.Gemini.ModelOverride = strings.TrimSpace(v.GetString("gemini.model_override"))
	cfg.Gemini.BaseURL = v.GetString("gemini.base_url")
	cfg.Gemini.AttemptTimeout = v.GetDuration("gemini.attempt_timeout")
	cfg.Chat.RequestTimeout = v.GetDuration("chat.request_timeout")

	// Throttling
	cfg.RateLimit.RequestsPerMinute = v.GetInt("rate_limit.requests_per_minute")
	cfg.RateLimit.Backend = strings.ToLower(strings.TrimSpace(v.GetString("rate_limit.backend")))
	cfg.Redis.Address = v.GetString("redis.address")
	cfg.Redis.Password = v.GetString("redis.password")
	cfg.Redis.DB = v.GetInt("redis.db")

	cfg.CORS.AllowedOrigins = listValue(v, "cors.allowed_origins")

	cfg.Tracing.Enabled = v.GetBool("tracing.enabled")
	cfg.Tracing.SampleRatio = v.GetFloat64("tracing.sample_ratio")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8000)
	v.SetDefault("http_server.mode", "release")
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("gemini.attempt_timeout", "20s")
	v.SetDefault("chat.request_timeout", "45s")

	v.SetDefault("rate_limit.requests_per_minute", 15)
	v.SetDefault("rate_limit.backend", RateLimitBackendMemory)
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("cors.allowed_origins", "*")

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.sample_ratio", 1.0)
}

func (cfg *Config) validate() error {
	if cfg.Gemini.APIKey == "" {
		return ErrMissingAPIKey
	}
	if cfg.HTTPServer.Port <= 0 {
		return ErrInvalidPort
	}
	if cfg.RateLimit.RequestsPerMinute <= 0 {
		return ErrInvalidRateLimit
	}
	switch cfg.RateLimit.Backend {
	case RateLimitBackendMemory, RateLimitBackendRedis:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLimitBackend, cfg.RateLimit.Backend)
	}
	return nil
}

// listValue reads a comma separated env value or a yaml list.
// Viper does not parse arrays from env.
func listValue(v *viper.Viper, key string) []string {
	if list := splitList(v.GetString(key)); len(list) > 0 {
		return list
	}
	return v.GetStringSlice(key)
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
