package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, CacheBackendMemory, cfg.Cache.Backend)
	assert.Equal(t, 168*time.Hour, cfg.Cache.TTL)
	assert.Equal(t, VisionProviderAnthropic, cfg.Vision.Provider)
	assert.Equal(t, int64(10<<20), cfg.Vision.MaxImageBytes)
	assert.Equal(t, QueueConfig{Workers: 2, MaxSize: 20}, cfg.Queue)
	assert.Equal(t, time.Second, cfg.DedupWindow)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("CACHE_BACKEND", "Redis")
	t.Setenv("REDIS_ADDR", "cache.internal:6380")
	t.Setenv("OPENROUTER_API_KEY", "sk-or-123456789")
	t.Setenv("VISION_PROVIDER", "openrouter")
	t.Setenv("APP_SCRAPER_TIMEOUT", "3s")
	t.Setenv("RATE_LIMIT_REQUESTS", "7")
	t.Setenv("QUEUE_WORKERS", "4")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, CacheBackendRedis, cfg.Cache.Backend)
	assert.Equal(t, "cache.internal:6380", cfg.Redis.Addr)
	assert.Equal(t, "sk-or-123456789", cfg.Vision.APIKey())
	assert.Equal(t, 3*time.Second, cfg.Scraper.Timeout)
	assert.Equal(t, 7, cfg.RateLimit.Requests)
	assert.Equal(t, 4, cfg.Queue.Workers)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("CACHE_BACKEND", "memcached")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown cache backend")
}

func TestMaskAPIKey(t *testing.T) {
	assert.Equal(t, "****", MaskAPIKey("short"))
	assert.Equal(t, "sk-a...wxyz", MaskAPIKey("sk-abcdefghijklmnopqrstuvwxyz"))
}
