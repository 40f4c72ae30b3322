package cache

import (
	"context"
	"errors"
	"strings"
	"testing"

	"grocery/internal/domain/repository"
	"grocery/internal/domain/repository/mocks"
	"grocery/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInstrumented_RecordsTraffic(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	next := mocks.NewMockCache(ctrl)
	registry := prometheus.NewRegistry()
	c := NewInstrumented(next, metrics.NewCacheMetrics(registry))
	ctx := context.Background()
	ticket := repository.CacheTicket{Namespace: "order", Key: "getById:1"}

	next.EXPECT().Get(ctx, "order", "getById:1").Return([]byte(`{}`), true, nil)
	next.EXPECT().Get(ctx, "order", "getById:2").Return(nil, false, nil)
	next.EXPECT().Get(ctx, "order", "getById:3").Return(nil, false, errors.New("redis down"))
	next.EXPECT().Fill(ctx, ticket, []byte(`{}`)).Return(false, nil)
	next.EXPECT().Evict(ctx, "order", "getById:1").Return(nil)
	next.EXPECT().EvictNamespace(ctx, "order:list").Return(nil)

	_, found, err := c.Get(ctx, "order", "getById:1")
	require.NoError(t, err)
	assert.True(t, found)
	_, found, err = c.Get(ctx, "order", "getById:2")
	require.NoError(t, err)
	assert.False(t, found)
	_, _, err = c.Get(ctx, "order", "getById:3")
	assert.Error(t, err)

	stored, err := c.Fill(ctx, ticket, []byte(`{}`))
	require.NoError(t, err)
	assert.False(t, stored)

	require.NoError(t, c.Evict(ctx, "order", "getById:1"))
	require.NoError(t, c.EvictNamespace(ctx, "order:list"))

	expected := `
# HELP grocery_cache_hits_total Total number of cache reads served from the cache
# TYPE grocery_cache_hits_total counter
grocery_cache_hits_total{namespace="order"} 1
# HELP grocery_cache_misses_total Total number of cache reads that fell through to the store
# TYPE grocery_cache_misses_total counter
grocery_cache_misses_total{namespace="order"} 1
# HELP grocery_cache_stale_fills_total Total number of fills dropped because the entry was invalidated during the load
# TYPE grocery_cache_stale_fills_total counter
grocery_cache_stale_fills_total{namespace="order"} 1
# HELP grocery_cache_evictions_total Total number of cache evictions
# TYPE grocery_cache_evictions_total counter
grocery_cache_evictions_total{namespace="order",scope="key"} 1
grocery_cache_evictions_total{namespace="order:list",scope="namespace"} 1
# HELP grocery_cache_errors_total Total number of failed cache operations
# TYPE grocery_cache_errors_total counter
grocery_cache_errors_total{namespace="order",operation="get"} 1
`
	err = testutil.GatherAndCompare(registry, strings.NewReader(expected),
		"grocery_cache_hits_total",
		"grocery_cache_misses_total",
		"grocery_cache_stale_fills_total",
		"grocery_cache_evictions_total",
		"grocery_cache_errors_total",
	)
	assert.NoError(t, err)
}

func TestInstrumented_EvictErrorIsReturned(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	next := mocks.NewMockCache(ctrl)
	c := NewInstrumented(next, metrics.NewCacheMetrics(prometheus.NewRegistry()))
	ctx := context.Background()

	next.EXPECT().EvictNamespace(ctx, "supplier").Return(errors.New("redis down"))

	err := c.EvictNamespace(ctx, "supplier")
	assert.EqualError(t, err, "redis down")
}
