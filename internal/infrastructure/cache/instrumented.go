package cache

import (
	"context"

	"grocery/internal/domain/repository"
	"grocery/internal/metrics"
)

// Instrumented wraps a Cache and records its traffic.
type Instrumented struct {
	next    repository.Cache
	metrics *metrics.CacheMetrics
}

var _ repository.Cache = (*Instrumented)(nil)

func NewInstrumented(next repository.Cache, m *metrics.CacheMetrics) *Instrumented {
	return &Instrumented{next: next, metrics: m}
}

func (c *Instrumented) Get(ctx context.Context, namespace, key string) ([]byte, bool, error) {
	data, found, err := c.next.Get(ctx, namespace, key)
	switch {
	case err != nil:
		c.metrics.RecordError(namespace, "get")
	case found:
		c.metrics.RecordHit(namespace)
	default:
		c.metrics.RecordMiss(namespace)
	}
	return data, found, err
}

func (c *Instrumented) Reserve(ctx context.Context, namespace, key string) (repository.CacheTicket, error) {
	ticket, err := c.next.Reserve(ctx, namespace, key)
	if err != nil {
		c.metrics.RecordError(namespace, "reserve")
	}
	return ticket, err
}

func (c *Instrumented) Fill(ctx context.Context, ticket repository.CacheTicket, data []byte) (bool, error) {
	stored, err := c.next.Fill(ctx, ticket, data)
	switch {
	case err != nil:
		c.metrics.RecordError(ticket.Namespace, "fill")
	case !stored:
		c.metrics.RecordStaleFill(ticket.Namespace)
	}
	return stored, err
}

func (c *Instrumented) Evict(ctx context.Context, namespace, key string) error {
	if err := c.next.Evict(ctx, namespace, key); err != nil {
		c.metrics.RecordError(namespace, "evict")
		return err
	}
	c.metrics.RecordEviction(namespace, "key")
	return nil
}

func (c *Instrumented) EvictNamespace(ctx context.Context, namespace string) error {
	if err := c.next.EvictNamespace(ctx, namespace); err != nil {
		c.metrics.RecordError(namespace, "evict_namespace")
		return err
	}
	c.metrics.RecordEviction(namespace, "namespace")
	return nil
}

func (c *Instrumented) Close() error {
	return c.next.Close()
}
