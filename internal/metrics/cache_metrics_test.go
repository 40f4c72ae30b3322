package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheMetrics_Counters(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	m := NewCacheMetrics(registry)

	m.RecordHit("order")
	m.RecordHit("order")
	m.RecordMiss("order")
	m.RecordMiss("producer:list")
	m.RecordStaleFill("order")
	m.RecordEviction("order", "key")
	m.RecordEviction("order:list", "namespace")
	m.RecordError("supplier", "get")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.hits.WithLabelValues("order")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.misses.WithLabelValues("order")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.misses.WithLabelValues("producer:list")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.staleFills.WithLabelValues("order")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.evictions.WithLabelValues("order", "key")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.evictions.WithLabelValues("order:list", "namespace")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.errors.WithLabelValues("supplier", "get")))
}

func TestCacheMetrics_ReusesRegisteredCollectors(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	first := NewCacheMetrics(registry)
	second := NewCacheMetrics(registry)

	first.RecordHit("order")
	second.RecordHit("order")

	assert.Equal(t, 2.0, testutil.ToFloat64(first.hits.WithLabelValues("order")))

	count, err := testutil.GatherAndCount(registry, "grocery_cache_hits_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
