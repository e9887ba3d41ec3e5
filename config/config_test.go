package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestViper searches only an empty temp dir so no real config.yaml leaks in.
func newTestViper(t *testing.T) *viper.Viper {
	t.Helper()
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(t.TempDir())
	return v
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("API_KEY", "secret")

	cfg, err := load(newTestViper(t))
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.Gemini.APIKey)
	assert.Equal(t, 8000, cfg.HTTPServer.Port)
	assert.Equal(t, "release", cfg.HTTPServer.Mode)
	assert.Equal(t, 10*time.Second, cfg.HTTPServer.ShutdownTimeout)
	assert.Equal(t, 20*time.Second, cfg.Gemini.AttemptTimeout)
	assert.Equal(t, 45*time.Second, cfg.Chat.RequestTimeout)
	assert.Equal(t, 15, cfg.RateLimit.RequestsPerMinute)
	assert.Equal(t, RateLimitBackendMemory, cfg.RateLimit.Backend)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Empty(t, cfg.Gemini.ModelOverride)
	assert.Empty(t, cfg.HTTPServer.TrustedProxies)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, 1.0, cfg.Tracing.SampleRatio)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	_, err := load(newTestViper(t))

	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestLoad_EnvAliases(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "alt-secret")
	t.Setenv("GEMINI_MODEL", " gemini-x ")
	t.Setenv("PORT", "9090")
	t.Setenv("RATE_LIMIT_BACKEND", "Redis")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("HTTP_SERVER_TRUSTED_PROXIES", "10.0.0.0/8,172.16.0.1")
	t.Setenv("TRACING_ENABLED", "true")
	t.Setenv("TRACING_SAMPLE_RATIO", "0.25")

	cfg, err := load(newTestViper(t))
	require.NoError(t, err)

	assert.Equal(t, "alt-secret", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-x", cfg.Gemini.ModelOverride)
	assert.Equal(t, 9090, cfg.HTTPServer.Port)
	assert.Equal(t, RateLimitBackendRedis, cfg.RateLimit.Backend)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, []string{"10.0.0.0/8", "172.16.0.1"}, cfg.HTTPServer.TrustedProxies)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, 0.25, cfg.Tracing.SampleRatio)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "gemini:\n  api_key: from-file\n  model_override: gemini-file\nrate_limit:\n  requests_per_minute: 30\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	cfg, err := load(v)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-file", cfg.Gemini.ModelOverride)
	assert.Equal(t, 30, cfg.RateLimit.RequestsPerMinute)
}

func TestLoad_Validation(t *testing.T) {
	t.Setenv("API_KEY", "secret")

	t.Run("unknown backend", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_BACKEND", "memcached")
		_, err := load(newTestViper(t))
		assert.ErrorIs(t, err, ErrUnknownLimitBackend)
	})

	t.Run("non-positive rate", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_PER_MIN", "0")
		_, err := load(newTestViper(t))
		assert.ErrorIs(t, err, ErrInvalidRateLimit)
	})
}
