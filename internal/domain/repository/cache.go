package repository

import "context"

//go:generate mockgen -source=cache.go -destination=mocks/cache.go -package=mocks

// CacheTicket records the namespace generation and key version observed before a
// store read. Fill only stores a value if neither moved in the meantime.
type CacheTicket struct {
	Namespace  string
	Key        string
	Generation int64
	Version    int64
}

// Cache is the shared read cache used by the aggregate managers.
type Cache interface {
	Get(ctx context.Context, namespace, key string) ([]byte, bool, error)
	Reserve(ctx context.Context, namespace, key string) (CacheTicket, error)
	Fill(ctx context.Context, ticket CacheTicket, data []byte) (bool, error)
	Evict(ctx context.Context, namespace, key string) error
	EvictNamespace(ctx context.Context, namespace string) error
	Close() error
}
