package cache

import (
	"context"
	"sync"

	"grocery/internal/domain/repository"

	"go.uber.org/zap"
)

type memoryNamespace struct {
	generation int64
	versions   map[string]int64
	entries    map[string][]byte
}

// MemoryCache is a process-local Cache. Fill and the evictions take the write
// lock, which gives the same check-and-set guarantee as the Redis scripts.
// Reads share the read lock and never create namespaces.
type MemoryCache struct {
	mu         sync.RWMutex
	namespaces map[string]*memoryNamespace
	logger     *zap.Logger
}

var _ repository.Cache = (*MemoryCache)(nil)

func NewMemoryCache(logger *zap.Logger) *MemoryCache {
	return &MemoryCache{namespaces: make(map[string]*memoryNamespace), logger: logger}
}

// namespace returns the named namespace, creating it. Callers hold the write lock.
func (c *MemoryCache) namespace(name string) *memoryNamespace {
	ns, ok := c.namespaces[name]
	if !ok {
		ns = &memoryNamespace{versions: make(map[string]int64), entries: make(map[string][]byte)}
		c.namespaces[name] = ns
	}
	return ns
}

func (c *MemoryCache) Get(_ context.Context, namespace, key string) ([]byte, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ns, ok := c.namespaces[namespace]
	if !ok {
		return nil, false, nil
	}
	data, ok := ns.entries[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, true, nil
}

// Reserve on an unknown namespace yields the zero ticket, which the first
// eviction in that namespace invalidates.
func (c *MemoryCache) Reserve(_ context.Context, namespace, key string) (repository.CacheTicket, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ticket := repository.CacheTicket{Namespace: namespace, Key: key}
	if ns, ok := c.namespaces[namespace]; ok {
		ticket.Generation = ns.generation
		ticket.Version = ns.versions[key]
	}
	return ticket, nil
}

func (c *MemoryCache) Fill(_ context.Context, ticket repository.CacheTicket, data []byte) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ns := c.namespace(ticket.Namespace)
	if ns.generation != ticket.Generation || ns.versions[ticket.Key] != ticket.Version {
		return false, nil
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	ns.entries[ticket.Key] = stored
	return true, nil
}

func (c *MemoryCache) Evict(_ context.Context, namespace, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	ns := c.namespace(namespace)
	ns.versions[key]++
	delete(ns.entries, key)
	c.logger.Debug("Cache entry evicted", zap.String("namespace", namespace), zap.String("key", key))
	return nil
}

func (c *MemoryCache) EvictNamespace(_ context.Context, namespace string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	ns := c.namespace(namespace)
	ns.generation++
	removed := len(ns.entries)
	ns.entries = make(map[string][]byte)
	c.logger.Debug("Cache namespace evicted", zap.String("namespace", namespace), zap.Int("removed", removed))
	return nil
}

// Len reports how many entries a namespace holds.
func (c *MemoryCache) Len(namespace string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if ns, ok := c.namespaces[namespace]; ok {
		return len(ns.entries)
	}
	return 0
}

func (c *MemoryCache) Close() error {
	return nil
}
