package cache

import (
	"context"
	"sync/atomic"
	"time"

	"cleanup-estimator/internal/pkg/common"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
)

// MemoryStore 行程內快取，容量滿時淘汰最久未使用的項目，過期項目自動清除
type MemoryStore struct {
	lru       *expirable.LRU[string, Entry]
	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

// NewMemoryStore 建立行程內快取
func NewMemoryStore(maxSize int, ttl time.Duration) *MemoryStore {
	s := &MemoryStore{}
	s.lru = expirable.NewLRU[string, Entry](maxSize, func(string, Entry) {
		s.evictions.Add(1)
	}, ttl)

	common.LogInfo("快取管理員已初始化",
		zap.String("backend", "memory"),
		zap.Int("最大容量", maxSize),
		zap.Duration("存活時間", ttl),
	)
	return s
}

// Get 取得快取
func (s *MemoryStore) Get(_ context.Context, url string) (*Entry, error) {
	key := generateKey(url)
	entry, ok := s.lru.Get(key)
	if !ok {
		s.misses.Add(1)
		common.LogCacheMiss("memory", key)
		return nil, common.ErrCacheMiss
	}
	s.hits.Add(1)
	common.LogCacheHit("memory", key)
	return &entry, nil
}

// Set 寫入快取
func (s *MemoryStore) Set(_ context.Context, url string, entry *Entry) error {
	if entry == nil {
		return nil
	}
	stored := *entry
	if stored.CachedAt.IsZero() {
		stored.CachedAt = time.Now()
	}
	s.lru.Add(generateKey(url), stored)
	return nil
}

// Stats 快取統計
func (s *MemoryStore) Stats(context.Context) Stats {
	return Stats{
		Backend:   "memory",
		Size:      s.lru.Len(),
		Hits:      s.hits.Load(),
		Misses:    s.misses.Load(),
		Evictions: s.evictions.Load(),
	}
}

// Close 清空快取
func (s *MemoryStore) Close() error {
	common.LogInfo("快取管理員已關閉",
		zap.Int64("命中次數", s.hits.Load()),
		zap.Int64("未命中次數", s.misses.Load()),
		zap.Int64("淘汰次數", s.evictions.Load()),
	)
	s.lru.Purge()
	return nil
}
