package cache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"cleanup-estimator/internal/core/equipment"
	"cleanup-estimator/internal/infrastructure/config"
	"cleanup-estimator/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntry() *Entry {
	return &Entry{
		Recipe: common.RecipeRecord{
			Title:        "Pancakes",
			Ingredients:  []string{"1 cup flour"},
			Instructions: []string{"Mix and fry."},
		},
		Instances: []equipment.Instance{{Type: "frying_pan", Quantity: 1, Confidence: 0.95}},
	}
}

func TestGenerateKey(t *testing.T) {
	assert.Equal(t, generateKey("https://example.com/pancakes"), generateKey(" https://example.com/pancakes/ "))
	assert.NotEqual(t, generateKey("https://example.com/a"), generateKey("https://example.com/b"))
	assert.Regexp(t, `^recipe:[0-9a-f]{64}$`, generateKey("https://example.com/a"))
}

func TestMemoryStore_HitAndMiss(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(10, time.Hour)
	defer s.Close()

	_, err := s.Get(ctx, "https://example.com/pancakes")
	assert.True(t, errors.Is(err, common.ErrCacheMiss))

	require.NoError(t, s.Set(ctx, "https://example.com/pancakes", sampleEntry()))

	got, err := s.Get(ctx, "https://example.com/pancakes")
	require.NoError(t, err)
	assert.Equal(t, "Pancakes", got.Recipe.Title)
	assert.Equal(t, "frying_pan", got.Instances[0].Type)
	assert.False(t, got.CachedAt.IsZero())

	stats := s.Stats(ctx)
	assert.Equal(t, "memory", stats.Backend)
	assert.Equal(t, 1, stats.Size)
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
}

func TestMemoryStore_Expires(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(10, 50*time.Millisecond)

	require.NoError(t, s.Set(ctx, "https://example.com/a", sampleEntry()))
	time.Sleep(120 * time.Millisecond)

	_, err := s.Get(ctx, "https://example.com/a")
	assert.ErrorIs(t, err, common.ErrCacheMiss)
}

func TestMemoryStore_EvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(2, time.Hour)

	require.NoError(t, s.Set(ctx, "https://example.com/a", sampleEntry()))
	require.NoError(t, s.Set(ctx, "https://example.com/b", sampleEntry()))
	_, err := s.Get(ctx, "https://example.com/a")
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "https://example.com/c", sampleEntry()))

	_, err = s.Get(ctx, "https://example.com/b")
	assert.ErrorIs(t, err, common.ErrCacheMiss)
	_, err = s.Get(ctx, "https://example.com/a")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), s.Stats(ctx).Evictions)
}

func TestNewStore(t *testing.T) {
	s, err := NewStore(&config.Config{Cache: config.CacheConfig{Enabled: false}})
	require.NoError(t, err)
	assert.IsType(t, NoopStore{}, s)

	_, err = s.Get(context.Background(), "https://example.com")
	assert.ErrorIs(t, err, common.ErrCacheMiss)

	s, err = NewStore(&config.Config{Cache: config.CacheConfig{
		Enabled: true, Backend: config.CacheBackendMemory, MaxSize: 5, TTL: time.Minute,
	}})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	_, err = NewStore(&config.Config{Cache: config.CacheConfig{Enabled: true, Backend: "memcached"}})
	assert.Error(t, err)
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	ctx := context.Background()

	s, err := NewRedisStore(config.RedisConfig{Addr: addr, KeyPrefix: "cleanup-test:"}, time.Minute)
	require.NoError(t, err)
	defer s.Close()

	url := "https://example.com/redis-" + time.Now().Format("150405.000000")
	_, err = s.Get(ctx, url)
	assert.ErrorIs(t, err, common.ErrCacheMiss)

	require.NoError(t, s.Set(ctx, url, sampleEntry()))
	got, err := s.Get(ctx, url)
	require.NoError(t, err)
	assert.Equal(t, "Pancakes", got.Recipe.Title)
	assert.GreaterOrEqual(t, s.Stats(ctx).Size, 1)
	assert.NoError(t, s.Ping(ctx))
}
