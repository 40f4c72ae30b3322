//go:build integration

package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"go.uber.org/zap"
)

func setupTestCache(t *testing.T) *RedisCache {
	t.Helper()
	ctx := context.Background()

	redisContainer, err := tcRedis.Run(ctx,
		"redis:7-alpine",
		tcRedis.WithSnapshotting(0, 0),
		tcRedis.WithLogLevel(tcRedis.LogLevelVerbose),
	)
	require.NoError(t, err, "failed to start redis container")

	t.Cleanup(func() {
		if err := redisContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate redis container: %v", err)
		}
	})
	endpoint, err := redisContainer.Endpoint(ctx, "")
	require.NoError(t, err, "failed to get redis endpoint")

	c := NewRedisCache(endpoint, "grocery-test", zap.NewNop())
	t.Cleanup(func() {
		_ = c.Close()
	})

	return c
}

func TestRedisCache_FillAndGet(t *testing.T) {
	c := setupTestCache(t)
	ctx := context.Background()

	_, found, err := c.Get(ctx, "order", "getById:1")
	require.NoError(t, err)
	assert.False(t, found)

	ticket, err := c.Reserve(ctx, "order", "getById:1")
	require.NoError(t, err)
	assert.Zero(t, ticket.Generation)
	assert.Zero(t, ticket.Version)

	stored, err := c.Fill(ctx, ticket, []byte(`{"id":1}`))
	require.NoError(t, err)
	assert.True(t, stored)

	data, found, err := c.Get(ctx, "order", "getById:1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"id":1}`, string(data))
}

func TestRedisCache_StaleFillIsDropped(t *testing.T) {
	c := setupTestCache(t)
	ctx := context.Background()

	ticket, err := c.Reserve(ctx, "producer", "getById:3")
	require.NoError(t, err)
	require.NoError(t, c.Evict(ctx, "producer", "getById:3"))

	stored, err := c.Fill(ctx, ticket, []byte(`"stale"`))
	require.NoError(t, err)
	assert.False(t, stored)

	ticket, err = c.Reserve(ctx, "producer", "getById:3")
	require.NoError(t, err)
	assert.Equal(t, int64(1), ticket.Version)

	require.NoError(t, c.EvictNamespace(ctx, "producer"))
	stored, err = c.Fill(ctx, ticket, []byte(`"stale"`))
	require.NoError(t, err)
	assert.False(t, stored)

	_, found, err := c.Get(ctx, "producer", "getById:3")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisCache_EvictNamespaceRemovesEveryKey(t *testing.T) {
	c := setupTestCache(t)
	ctx := context.Background()

	keys := []string{"getAll", "getListBySorting:name", "getListByPagination:0:5"}
	for _, key := range keys {
		ticket, err := c.Reserve(ctx, "supplier:list", key)
		require.NoError(t, err)
		stored, err := c.Fill(ctx, ticket, []byte(`[]`))
		require.NoError(t, err)
		require.True(t, stored)
	}
	ticket, err := c.Reserve(ctx, "supplier", "getById:1")
	require.NoError(t, err)
	_, err = c.Fill(ctx, ticket, []byte(`{}`))
	require.NoError(t, err)

	require.NoError(t, c.EvictNamespace(ctx, "supplier:list"))

	for _, key := range keys {
		_, found, err := c.Get(ctx, "supplier:list", key)
		require.NoError(t, err)
		assert.False(t, found, key)
	}
	_, found, err := c.Get(ctx, "supplier", "getById:1")
	require.NoError(t, err)
	assert.True(t, found)
}
