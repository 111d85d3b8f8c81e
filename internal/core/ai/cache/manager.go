package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"waste-to-feast/internal/infrastructure/config"
	"waste-to-feast/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CacheManager AI 回應緩存管理器。
// 預設使用進程內記憶體存儲；設定 cache.redis_addr 後改用 Redis，
// 讓多副本部署共用同一份快取。
type CacheManager struct {
	config *config.Config
	rdb    *redis.Client
	mu     sync.RWMutex
	store  map[string]cacheEntry
	stats  cacheStats
}

// cacheEntry 緩存條目
type cacheEntry struct {
	value       string
	expiresAt   time.Time
	lastAccess  time.Time
	accessCount int
}

// cacheStats 緩存統計
type cacheStats struct {
	hits      int64
	misses    int64
	evictions int64
}

// NewManager 創建新的緩存管理器
func NewManager(cfg *config.Config) *CacheManager {
	if !cfg.Cache.Enabled {
		common.LogInfo("Cache disabled")
		return nil
	}

	m := &CacheManager{
		config: cfg,
		store:  make(map[string]cacheEntry),
	}

	if cfg.Cache.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr: cfg.Cache.RedisAddr,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			common.LogWarn("Redis 連線失敗，退回記憶體快取",
				zap.String("addr", cfg.Cache.RedisAddr),
				zap.Error(err),
			)
		} else {
			m.rdb = rdb
		}
	}

	// 記憶體後端需要定期清理過期條目
	if m.rdb == nil {
		go m.startCleanup()
	}

	common.LogInfo("快取管理員已初始化",
		zap.Bool("redis", m.rdb != nil),
		zap.Int("最大容量", cfg.Cache.MaxSize),
		zap.Duration("存活時間", cfg.Cache.TTL),
	)

	return m
}

// Get 獲取緩存值；kind 區分不同請求類型（如 analyze / recipe）
func (m *CacheManager) Get(ctx context.Context, kind, payload string) (string, error) {
	if m == nil || !m.config.Cache.Enabled {
		return "", common.ErrCacheDisabled
	}

	key := m.generateKey(kind, payload)

	if m.rdb != nil {
		val, err := m.rdb.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				common.LogDebug("快取未命中", zap.String("類型", kind))
				return "", common.ErrCacheMiss
			}
			return "", fmt.Errorf("failed to get cache: %w", err)
		}
		common.LogDebug("快取命中", zap.String("類型", kind))
		return val, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.store[key]
	if !exists {
		m.stats.misses++
		common.LogDebug("快取未命中", zap.String("類型", kind))
		return "", common.ErrCacheMiss
	}
	if time.Now().After(entry.expiresAt) {
		delete(m.store, key)
		m.stats.evictions++
		m.stats.misses++
		common.LogDebug("快取已過期", zap.String("類型", kind))
		return "", common.ErrCacheMiss
	}

	entry.lastAccess = time.Now()
	entry.accessCount++
	m.store[key] = entry
	m.stats.hits++

	common.LogDebug("快取命中", zap.String("類型", kind))
	return entry.value, nil
}

// Set 設置緩存值
func (m *CacheManager) Set(ctx context.Context, kind, payload, value string) error {
	if m == nil || !m.config.Cache.Enabled {
		return nil
	}

	key := m.generateKey(kind, payload)

	if m.rdb != nil {
		if err := m.rdb.Set(ctx, key, value, m.config.Cache.TTL).Err(); err != nil {
			return fmt.Errorf("failed to set cache: %w", err)
		}
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// 容量已滿時先清過期條目，仍滿則 LRU 淘汰
	if len(m.store) >= m.config.Cache.MaxSize {
		m.cleanupLocked()
		if len(m.store) >= m.config.Cache.MaxSize {
			m.evictLRULocked()
		}
	}

	now := time.Now()
	m.store[key] = cacheEntry{
		value:      value,
		expiresAt:  now.Add(m.config.Cache.TTL),
		lastAccess: now,
	}

	return nil
}

// generateKey 生成緩存鍵；payload 可能包含整張圖片，必須先雜湊
func (m *CacheManager) generateKey(kind, payload string) string {
	hash := sha256.Sum256([]byte(payload))
	return fmt.Sprintf("ai:%s:%s", kind, hex.EncodeToString(hash[:]))
}

// startCleanup 啟動清理過期緩存的協程
func (m *CacheManager) startCleanup() {
	ticker := time.NewTicker(m.config.Cache.CleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		m.mu.Lock()
		count := m.cleanupLocked()
		m.mu.Unlock()
		if count > 0 {
			common.LogInfo("已清理過期快取",
				zap.Int("數量", count),
			)
		}
	}
}

// cleanupLocked 清理過期的緩存，呼叫端需持有鎖
func (m *CacheManager) cleanupLocked() int {
	now := time.Now()
	count := 0
	for key, entry := range m.store {
		if now.After(entry.expiresAt) {
			delete(m.store, key)
			count++
			m.stats.evictions++
		}
	}
	return count
}

// evictLRULocked 淘汰最少使用的條目，呼叫端需持有鎖
func (m *CacheManager) evictLRULocked() {
	var oldestKey string
	var oldestAccess time.Time
	var lowestAccessCount int

	for key, entry := range m.store {
		if oldestKey == "" ||
			entry.accessCount < lowestAccessCount ||
			(entry.accessCount == lowestAccessCount && entry.lastAccess.Before(oldestAccess)) {
			oldestKey = key
			oldestAccess = entry.lastAccess
			lowestAccessCount = entry.accessCount
		}
	}

	if oldestKey != "" {
		delete(m.store, oldestKey)
		m.stats.evictions++
	}
}

// GetStats 獲取緩存統計信息
func (m *CacheManager) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := m.stats.hits + m.stats.misses
	hitRatio := 0.0
	if total > 0 {
		hitRatio = float64(m.stats.hits) / float64(total)
	}
	return map[string]interface{}{
		"size":      len(m.store),
		"max_size":  m.config.Cache.MaxSize,
		"hits":      m.stats.hits,
		"misses":    m.stats.misses,
		"evictions": m.stats.evictions,
		"hit_ratio": hitRatio,
	}
}

// Close 關閉緩存管理器
func (m *CacheManager) Close() error {
	if m == nil {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.store = make(map[string]cacheEntry)
	if m.rdb != nil {
		if err := m.rdb.Close(); err != nil {
			return err
		}
	}
	common.LogInfo("快取管理員已關閉",
		zap.Int64("命中次數", m.stats.hits),
		zap.Int64("未命中次數", m.stats.misses),
	)
	return nil
}
