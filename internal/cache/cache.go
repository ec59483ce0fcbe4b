package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/yukikurage/volunteer-directory-api/internal/constants"
)

// LookupCache stores serialized lookup tables by key
type LookupCache interface {
	// Get decodes the cached value for key into dest. It reports false on a miss.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set stores value under key
	Set(ctx context.Context, key string, value any) error

	// Invalidate drops key
	Invalidate(ctx context.Context, key string) error
}

// RedisLookupCache is a Redis implementation of LookupCache. Values are JSON
// encoded and expire after ttl.
type RedisLookupCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisLookupCache creates a new RedisLookupCache
func NewRedisLookupCache(client *redis.Client, ttl time.Duration) *RedisLookupCache {
	if ttl <= 0 {
		ttl = constants.DefaultLookupCacheTTL
	}
	return &RedisLookupCache{client: client, ttl: ttl}
}

func (c *RedisLookupCache) key(key string) string {
	return constants.LookupCacheKeyPrefix + key
}

// Get decodes the cached value for key into dest
func (c *RedisLookupCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read lookup cache: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to decode lookup cache entry: %w", err)
	}
	return true, nil
}

// Set stores value under key
func (c *RedisLookupCache) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode lookup cache entry: %w", err)
	}
	if err := c.client.Set(ctx, c.key(key), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write lookup cache: %w", err)
	}
	return nil
}

// Invalidate drops key
func (c *RedisLookupCache) Invalidate(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate lookup cache: %w", err)
	}
	return nil
}

// NopCache never stores anything. It is used when Redis is disabled.
type NopCache struct{}

func (NopCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (NopCache) Set(context.Context, string, any) error         { return nil }
func (NopCache) Invalidate(context.Context, string) error       { return nil }
