package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(PathEnvVar, "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 20, cfg.DBPoolSize)
	assert.Equal(t, 24*time.Hour, cfg.SuggestionTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 20.0, cfg.MatchThreshold)
	assert.Equal(t, 3, cfg.SimilarLimit)
	assert.True(t, cfg.SeedOnStart)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(PathEnvVar, "")
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/x")
	t.Setenv("SUGGESTION_TTL", "2h")
	t.Setenv("RANDOM_SEED", "42")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("SEED_ON_START", "false")
	t.Setenv("MATCH_THRESHOLD", "35.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.DatabaseURL)
	assert.Equal(t, 2*time.Hour, cfg.SuggestionTTL)
	assert.Equal(t, int64(42), cfg.RandomSeed)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.False(t, cfg.SeedOnStart)
	assert.Equal(t, 35.5, cfg.MatchThreshold)
}

func TestLoadFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := "port: 7000\nlog_level: debug\nsimilar_limit: 5\ncors_origins:\n  - http://file.test\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	t.Setenv(PathEnvVar, path)
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 5, cfg.SimilarLimit)
	assert.Equal(t, []string{"http://file.test"}, cfg.CORSOrigins)
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv(PathEnvVar, filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv(PathEnvVar, "")
	t.Setenv("PORT", "70000")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "port 70000 out of range")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"pool size", func(c *Config) { c.DBPoolSize = 0 }, "db_pool_size"},
		{"ttl", func(c *Config) { c.SuggestionTTL = 0 }, "suggestion_ttl"},
		{"format", func(c *Config) { c.LogFormat = "xml" }, "log_format"},
		{"rate window", func(c *Config) { c.RateLimitWindow = 0 }, "rate_limit_window"},
		{"timeout", func(c *Config) { c.RequestTimeout = -time.Second }, "request_timeout"},
		{"threshold", func(c *Config) { c.MatchThreshold = 101 }, "match_threshold"},
		{"redis", func(c *Config) { c.RedisURL = "" }, "redis_url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	assert.NoError(t, defaults().Validate())

	cfg := defaults()
	cfg.RateLimitRequests = 0
	cfg.RateLimitWindow = 0
	assert.NoError(t, cfg.Validate(), "rate limiting off needs no window")
}
