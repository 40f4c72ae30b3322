package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"grocery/internal/domain/repository"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Per namespace the cache keeps:
//
//	<prefix>:<ns>:<key>          cached payload
//	<prefix>:<ns>:#gen           namespace generation
//	<prefix>:<ns>:#ver:<key>     key version
//	<prefix>:<ns>:#keys          set of payload keys, used by EvictNamespace
var (
	fillScript = redis.NewScript(`
local gen = tonumber(redis.call('GET', KEYS[1]) or '0')
local ver = tonumber(redis.call('GET', KEYS[2]) or '0')
if gen ~= tonumber(ARGV[1]) or ver ~= tonumber(ARGV[2]) then
	return 0
end
redis.call('SET', KEYS[3], ARGV[3])
redis.call('SADD', KEYS[4], KEYS[3])
return 1
`)

	evictScript = redis.NewScript(`
redis.call('INCR', KEYS[1])
redis.call('DEL', KEYS[2])
redis.call('SREM', KEYS[3], KEYS[2])
return 1
`)

	evictNamespaceScript = redis.NewScript(`
redis.call('INCR', KEYS[1])
local keys = redis.call('SMEMBERS', KEYS[2])
for i = 1, #keys, 500 do
	redis.call('DEL', unpack(keys, i, math.min(i + 499, #keys)))
end
redis.call('DEL', KEYS[2])
return #keys
`)
)

type RedisCache struct {
	client *redis.Client
	prefix string
	logger *zap.Logger
}

var _ repository.Cache = (*RedisCache)(nil)

func NewRedisCache(addr, prefix string, logger *zap.Logger) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     "",
		DB:           0,
		DialTimeout:  10 * time.Second,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		MaxRetries:   3,
	})

	ctx := context.Background()
	for i := range 3 {
		_, err := client.Ping(ctx).Result()
		if err == nil {
			logger.Info("Connected to Redis", zap.String("addr", addr))
			break
		}
		logger.Warn("Failed to connect to Redis, retrying...", zap.Error(err), zap.Int("attempt", i+1))
		time.Sleep(2 * time.Second)
	}
	return NewRedisCacheWithClient(client, prefix, logger)
}

func NewRedisCacheWithClient(client *redis.Client, prefix string, logger *zap.Logger) *RedisCache {
	return &RedisCache{client: client, prefix: prefix, logger: logger}
}

func (c *RedisCache) dataKey(namespace, key string) string {
	return c.prefix + ":" + namespace + ":" + key
}

func (c *RedisCache) generationKey(namespace string) string {
	return c.prefix + ":" + namespace + ":#gen"
}

func (c *RedisCache) versionKey(namespace, key string) string {
	return c.prefix + ":" + namespace + ":#ver:" + key
}

func (c *RedisCache) registryKey(namespace string) string {
	return c.prefix + ":" + namespace + ":#keys"
}

func (c *RedisCache) Get(ctx context.Context, namespace, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, c.dataKey(namespace, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}
	return data, true, nil
}

func (c *RedisCache) Reserve(ctx context.Context, namespace, key string) (repository.CacheTicket, error) {
	values, err := c.client.MGet(ctx, c.generationKey(namespace), c.versionKey(namespace, key)).Result()
	if err != nil {
		return repository.CacheTicket{}, fmt.Errorf("redis mget failed: %w", err)
	}
	gen, err := counterValue(values[0])
	if err != nil {
		return repository.CacheTicket{}, err
	}
	ver, err := counterValue(values[1])
	if err != nil {
		return repository.CacheTicket{}, err
	}
	return repository.CacheTicket{Namespace: namespace, Key: key, Generation: gen, Version: ver}, nil
}

func (c *RedisCache) Fill(ctx context.Context, ticket repository.CacheTicket, data []byte) (bool, error) {
	keys := []string{
		c.generationKey(ticket.Namespace),
		c.versionKey(ticket.Namespace, ticket.Key),
		c.dataKey(ticket.Namespace, ticket.Key),
		c.registryKey(ticket.Namespace),
	}
	stored, err := fillScript.Run(ctx, c.client, keys, ticket.Generation, ticket.Version, data).Int64()
	if err != nil {
		return false, fmt.Errorf("redis fill failed: %w", err)
	}
	return stored == 1, nil
}

func (c *RedisCache) Evict(ctx context.Context, namespace, key string) error {
	keys := []string{
		c.versionKey(namespace, key),
		c.dataKey(namespace, key),
		c.registryKey(namespace),
	}
	if err := evictScript.Run(ctx, c.client, keys).Err(); err != nil {
		return fmt.Errorf("redis evict failed: %w", err)
	}
	c.logger.Debug("Cache entry evicted", zap.String("namespace", namespace), zap.String("key", key))
	return nil
}

func (c *RedisCache) EvictNamespace(ctx context.Context, namespace string) error {
	keys := []string{c.generationKey(namespace), c.registryKey(namespace)}
	removed, err := evictNamespaceScript.Run(ctx, c.client, keys).Int64()
	if err != nil {
		return fmt.Errorf("redis evict namespace failed: %w", err)
	}
	c.logger.Debug("Cache namespace evicted", zap.String("namespace", namespace), zap.Int64("removed", removed))
	return nil
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func counterValue(v any) (int64, error) {
	switch s := v.(type) {
	case nil:
		return 0, nil
	case string:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid cache counter %q: %w", s, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("unexpected cache counter type %T", v)
	}
}
