package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// CacheMetrics counts cache traffic per namespace.
type CacheMetrics struct {
	hits       *prometheus.CounterVec
	misses     *prometheus.CounterVec
	staleFills *prometheus.CounterVec
	evictions  *prometheus.CounterVec
	errors     *prometheus.CounterVec
}

func NewCacheMetrics(registerer prometheus.Registerer) *CacheMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &CacheMetrics{
		hits: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "grocery_cache_hits_total",
			Help: "Total number of cache reads served from the cache",
		}, []string{"namespace"}),
		misses: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "grocery_cache_misses_total",
			Help: "Total number of cache reads that fell through to the store",
		}, []string{"namespace"}),
		staleFills: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "grocery_cache_stale_fills_total",
			Help: "Total number of fills dropped because the entry was invalidated during the load",
		}, []string{"namespace"}),
		evictions: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "grocery_cache_evictions_total",
			Help: "Total number of cache evictions",
		}, []string{"namespace", "scope"}),
		errors: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "grocery_cache_errors_total",
			Help: "Total number of failed cache operations",
		}, []string{"namespace", "operation"}),
	}
}

func (m *CacheMetrics) RecordHit(namespace string) {
	m.hits.WithLabelValues(namespace).Inc()
}

func (m *CacheMetrics) RecordMiss(namespace string) {
	m.misses.WithLabelValues(namespace).Inc()
}

func (m *CacheMetrics) RecordStaleFill(namespace string) {
	m.staleFills.WithLabelValues(namespace).Inc()
}

// RecordEviction counts one eviction; scope is "key" or "namespace".
func (m *CacheMetrics) RecordEviction(namespace, scope string) {
	m.evictions.WithLabelValues(namespace, scope).Inc()
}

func (m *CacheMetrics) RecordError(namespace, operation string) {
	m.errors.WithLabelValues(namespace, operation).Inc()
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}
