package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"waste-to-feast/internal/infrastructure/config"
	"waste-to-feast/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	common.Logger = zap.NewNop()
	os.Exit(m.Run())
}

func memoryConfig() *config.Config {
	return &config.Config{
		Cache: config.CacheConfig{
			Enabled:         true,
			MaxSize:         2,
			TTL:             time.Minute,
			CleanupInterval: time.Minute,
		},
	}
}

func TestManagerDisabled(t *testing.T) {
	m := NewManager(&config.Config{})
	assert.Nil(t, m)

	// nil 接收者也要能安全呼叫
	_, err := m.Get(context.Background(), "analyze", "payload")
	assert.ErrorIs(t, err, common.ErrCacheDisabled)
	assert.NoError(t, m.Set(context.Background(), "analyze", "payload", "value"))
	assert.NoError(t, m.Close())
}

func TestManagerGetSet(t *testing.T) {
	m := NewManager(memoryConfig())
	require.NotNil(t, m)
	defer m.Close()

	ctx := context.Background()

	_, err := m.Get(ctx, "analyze", "image-bytes")
	assert.ErrorIs(t, err, common.ErrCacheMiss)

	require.NoError(t, m.Set(ctx, "analyze", "image-bytes", "tomatoes, basil"))

	val, err := m.Get(ctx, "analyze", "image-bytes")
	require.NoError(t, err)
	assert.Equal(t, "tomatoes, basil", val)

	// 不同 kind 各自獨立
	_, err = m.Get(ctx, "recipe", "image-bytes")
	assert.ErrorIs(t, err, common.ErrCacheMiss)
}

func TestManagerTTLExpiry(t *testing.T) {
	cfg := memoryConfig()
	cfg.Cache.TTL = 10 * time.Millisecond
	m := NewManager(cfg)
	require.NotNil(t, m)
	defer m.Close()

	ctx := context.Background()
	require.NoError(t, m.Set(ctx, "analyze", "k", "v"))

	time.Sleep(30 * time.Millisecond)

	_, err := m.Get(ctx, "analyze", "k")
	assert.ErrorIs(t, err, common.ErrCacheMiss)
}

func TestManagerLRUEviction(t *testing.T) {
	m := NewManager(memoryConfig()) // max_size 2
	require.NotNil(t, m)
	defer m.Close()

	ctx := context.Background()
	require.NoError(t, m.Set(ctx, "analyze", "a", "1"))
	require.NoError(t, m.Set(ctx, "analyze", "b", "2"))

	// 存取 a 提高它的權重，放入第三個條目時 b 被淘汰
	_, err := m.Get(ctx, "analyze", "a")
	require.NoError(t, err)

	require.NoError(t, m.Set(ctx, "analyze", "c", "3"))

	_, err = m.Get(ctx, "analyze", "b")
	assert.ErrorIs(t, err, common.ErrCacheMiss)

	val, err := m.Get(ctx, "analyze", "a")
	require.NoError(t, err)
	assert.Equal(t, "1", val)
}

func TestManagerStats(t *testing.T) {
	m := NewManager(memoryConfig())
	require.NotNil(t, m)
	defer m.Close()

	ctx := context.Background()
	m.Get(ctx, "analyze", "missing")
	m.Set(ctx, "analyze", "k", "v")
	m.Get(ctx, "analyze", "k")

	stats := m.GetStats()
	assert.Equal(t, int64(1), stats["hits"])
	assert.Equal(t, int64(1), stats["misses"])
	assert.Equal(t, 1, stats["size"])
}
