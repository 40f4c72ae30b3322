package managers

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"grocery/internal/domain/repository"

	"go.uber.org/zap"
)

const (
	keyAll = "getAll"

	listSuffix = ":list"
)

func keyByID(id int64) string {
	return "getById:" + strconv.FormatInt(id, 10)
}

func keySorted(sortBy string) string {
	return "getListBySorting:" + sortBy
}

func keyPaged(pageNo, pageSize int) string {
	return fmt.Sprintf("getListByPagination:%d:%d", pageNo, pageSize)
}

func keyPagedSorted(pageNo, pageSize int, sortBy string) string {
	return fmt.Sprintf("getListByPaginationAndSorting:%d:%d:%s", pageNo, pageSize, sortBy)
}

// coordinator ties one aggregate's reads and writes to its two cache namespaces:
// by-id entries live in <aggregate>, listing entries in <aggregate>:list.
type coordinator struct {
	cache     repository.Cache
	namespace string
	logger    *zap.Logger
}

func newCoordinator(cache repository.Cache, namespace string, logger *zap.Logger) coordinator {
	return coordinator{cache: cache, namespace: namespace, logger: logger}
}

func (c coordinator) listNamespace() string {
	return c.namespace + listSuffix
}

// evictAll drops every entry of the aggregate. Used after an insert, which can
// shift any listing.
func (c coordinator) evictAll(ctx context.Context) error {
	if err := c.cache.EvictNamespace(ctx, c.namespace); err != nil {
		return fmt.Errorf("failed to evict cache namespace %s: %w", c.namespace, err)
	}
	if err := c.cache.EvictNamespace(ctx, c.listNamespace()); err != nil {
		return fmt.Errorf("failed to evict cache namespace %s: %w", c.listNamespace(), err)
	}
	return nil
}

// evictRecord drops the by-id entry of one record and every listing.
func (c coordinator) evictRecord(ctx context.Context, id int64) error {
	if err := c.cache.Evict(ctx, c.namespace, keyByID(id)); err != nil {
		return fmt.Errorf("failed to evict cache entry %d: %w", id, err)
	}
	if err := c.cache.EvictNamespace(ctx, c.listNamespace()); err != nil {
		return fmt.Errorf("failed to evict cache namespace %s: %w", c.listNamespace(), err)
	}
	return nil
}

// readThrough serves key from the cache, or loads it and stores the result.
// Cache failures only cost a store read; load errors are returned and never cached.
func readThrough[T any](ctx context.Context, c coordinator, namespace, key string, load func(ctx context.Context) (T, error)) (T, error) {
	data, found, err := c.cache.Get(ctx, namespace, key)
	switch {
	case err != nil:
		c.logger.Warn("Cache read failed, falling back to store",
			zap.Error(err), zap.String("namespace", namespace), zap.String("key", key))
	case found:
		var value T
		if err := json.Unmarshal(data, &value); err == nil {
			c.logger.Debug("Served from cache", zap.String("namespace", namespace), zap.String("key", key))
			return value, nil
		}
		c.logger.Warn("Failed to unmarshal cached value", zap.String("namespace", namespace), zap.String("key", key))
	}

	ticket, reserveErr := c.cache.Reserve(ctx, namespace, key)
	if reserveErr != nil {
		c.logger.Warn("Failed to reserve cache entry", zap.Error(reserveErr), zap.String("key", key))
	}

	value, err := load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	if reserveErr != nil {
		return value, nil
	}

	payload, err := json.Marshal(value)
	if err != nil {
		c.logger.Error("Failed to marshal value for cache", zap.Error(err), zap.String("key", key))
		return value, nil
	}
	stored, err := c.cache.Fill(ctx, ticket, payload)
	if err != nil {
		c.logger.Warn("Failed to fill cache entry", zap.Error(err), zap.String("key", key))
	} else if !stored {
		c.logger.Debug("Cache entry invalidated during load, not stored", zap.String("key", key))
	}
	return value, nil
}
