package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"cleanup-estimator/internal/infrastructure/config"
	"cleanup-estimator/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisStore 多個實例共用的快取，到期由 Redis 以 TTL 清除
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	hits   atomic.Int64
	misses atomic.Int64
}

// NewRedisStore 創建 Redis 快取並測試連線
func NewRedisStore(cfg config.RedisConfig, ttl time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// 測試連接
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	common.LogInfo("快取管理員已初始化",
		zap.String("backend", "redis"),
		zap.String("addr", cfg.Addr),
		zap.Duration("存活時間", ttl),
	)
	return &RedisStore{client: client, prefix: cfg.KeyPrefix, ttl: ttl}, nil
}

func (s *RedisStore) key(url string) string {
	return s.prefix + generateKey(url)
}

// Get 獲取緩存
func (s *RedisStore) Get(ctx context.Context, url string) (*Entry, error) {
	key := s.key(url)
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			s.misses.Add(1)
			common.LogCacheMiss("redis", key)
			return nil, common.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get cache: %w", err)
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cache: %w", err)
	}
	s.hits.Add(1)
	common.LogCacheHit("redis", key)
	return &entry, nil
}

// Set 設置緩存
func (s *RedisStore) Set(ctx context.Context, url string, entry *Entry) error {
	if entry == nil {
		return nil
	}
	stored := *entry
	if stored.CachedAt.IsZero() {
		stored.CachedAt = time.Now()
	}
	data, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}
	if err := s.client.Set(ctx, s.key(url), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// Stats 快取統計，Size 為目前前綴下的鍵數
func (s *RedisStore) Stats(ctx context.Context) Stats {
	stats := Stats{Backend: "redis", Hits: s.hits.Load(), Misses: s.misses.Load()}

	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, s.prefix+"recipe:*", 100).Result()
		if err != nil {
			common.LogWarn("Failed to count cache keys", zap.Error(err))
			break
		}
		stats.Size += len(keys)
		if next == 0 {
			break
		}
		cursor = next
	}
	return stats
}

// Ping 檢查連線
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close 關閉連線
func (s *RedisStore) Close() error {
	return s.client.Close()
}
