// Package cache provides the two caches of the insights service as
// explicitly owned, injectable components: an in-process TTL cache for
// filter option lists and a Redis-backed cache for rollup query results.
// Both are interfaces so tests can substitute fakes without wall-clock
// coupling.
package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// FilterCache caches small computed values (filter option lists) in process
// memory with TTL expiration.
type FilterCache interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{})
	Delete(key string)
}

// NewFilterCache creates an in-process FilterCache with the given TTL.
func NewFilterCache(ttl time.Duration) FilterCache {
	return &memoryCache{inner: gocache.New(ttl, 2*ttl)}
}

type memoryCache struct {
	inner *gocache.Cache
}

func (c *memoryCache) Get(key string) (interface{}, bool) {
	return c.inner.Get(key)
}

func (c *memoryCache) Set(key string, value interface{}) {
	c.inner.SetDefault(key, value)
}

func (c *memoryCache) Delete(key string) {
	c.inner.Delete(key)
}

// QueryCache caches serialized query results with TTL. A miss returns
// (nil, false, nil); cache errors are reported so callers can degrade to the
// underlying query.
type QueryCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// NewRedisQueryCache creates a QueryCache backed by Redis.
func NewRedisQueryCache(client *redis.Client, ttl time.Duration) QueryCache {
	return &redisQueryCache{client: client, ttl: ttl}
}

type redisQueryCache struct {
	client *redis.Client
	ttl    time.Duration
}

func (c *redisQueryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (c *redisQueryCache) Set(ctx context.Context, key string, value []byte) error {
	return c.client.Set(ctx, key, value, c.ttl).Err()
}
