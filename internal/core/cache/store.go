package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"cleanup-estimator/internal/core/equipment"
	"cleanup-estimator/internal/infrastructure/config"
	"cleanup-estimator/internal/pkg/common"
)

// Entry 一筆食譜分析快取：抓到的食譜與偵測到的設備
//
// 清潔時間取決於使用者偏好，不放進快取，每次重新計算。
type Entry struct {
	Recipe    common.RecipeRecord  `json:"recipe"`
	Instances []equipment.Instance `json:"equipmentInstances"`
	CachedAt  time.Time            `json:"cachedAt"`
}

// Stats 快取統計
type Stats struct {
	Backend   string `json:"backend"`
	Size      int    `json:"size"`
	Hits      int64  `json:"hits"`
	Misses    int64  `json:"misses"`
	Evictions int64  `json:"evictions"`
}

// Store 以食譜網址為鍵的分析快取
type Store interface {
	// Get 未命中時回傳 common.ErrCacheMiss
	Get(ctx context.Context, url string) (*Entry, error)
	Set(ctx context.Context, url string, entry *Entry) error
	Stats(ctx context.Context) Stats
	Close() error
}

// NewStore 依設定建立快取；停用時回傳永遠未命中的 NoopStore
func NewStore(cfg *config.Config) (Store, error) {
	if !cfg.Cache.Enabled {
		return NoopStore{}, nil
	}
	switch cfg.Cache.Backend {
	case config.CacheBackendRedis:
		return NewRedisStore(cfg.Redis, cfg.Cache.TTL)
	case config.CacheBackendMemory, "":
		return NewMemoryStore(cfg.Cache.MaxSize, cfg.Cache.TTL), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}

// generateKey 網址正規化後取 SHA-256
func generateKey(url string) string {
	normalized := strings.TrimRight(strings.TrimSpace(url), "/")
	hash := sha256.Sum256([]byte(normalized))
	return "recipe:" + hex.EncodeToString(hash[:])
}

// NoopStore 快取停用時使用
type NoopStore struct{}

func (NoopStore) Get(context.Context, string) (*Entry, error) { return nil, common.ErrCacheMiss }

func (NoopStore) Set(context.Context, string, *Entry) error { return nil }

func (NoopStore) Stats(context.Context) Stats { return Stats{Backend: "disabled"} }

func (NoopStore) Close() error { return nil }
