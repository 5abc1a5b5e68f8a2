// internal/adapters/redis_adapter/cache.go
package redis_a

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ammerola/gamedash/internal/core/ports"
)

// ErrCacheMiss is returned when a key is not found in cache
var ErrCacheMiss = errors.New("cache miss")

// Cache provides caching functionality with Redis
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

var _ ports.CacheRepository = (*Cache)(nil)

// NewCache creates a new cache instance
func NewCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "cache")),
	}
}

// Set stores a value in cache with default TTL
func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	return c.SetWithTTL(ctx, key, value, c.ttl)
}

// SetWithTTL stores a value in cache with custom TTL
func (c *Cache) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		c.logger.ErrorContext(ctx, "failed to set cache",
			slog.String("key", key),
			slog.Any("error", err))
		return fmt.Errorf("redis set error: %w", err)
	}

	c.logger.DebugContext(ctx, "cache set",
		slog.String("key", key),
		slog.Duration("ttl", ttl))
	return nil
}

// Get retrieves a value from cache
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.logger.DebugContext(ctx, "cache miss", slog.String("key", key))
			return ErrCacheMiss
		}
		c.logger.ErrorContext(ctx, "failed to get cache",
			slog.String("key", key),
			slog.Any("error", err))
		return fmt.Errorf("redis get error: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	c.logger.DebugContext(ctx, "cache hit", slog.String("key", key))
	return nil
}

// Delete removes keys from cache
func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del error: %w", err)
	}

	c.logger.DebugContext(ctx, "cache deleted", slog.Any("keys", keys))
	return nil
}

// DeletePattern removes all keys matching a glob pattern
func (c *Cache) DeletePattern(ctx context.Context, pattern string) error {
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string

	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}

	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis scan error: %w", err)
	}

	return c.Delete(ctx, keys...)
}

// GetOrSet retrieves from cache or fetches and stores on a miss. A failing
// cache read falls through to fetch so a Redis outage degrades to
// uncached reads.
func (c *Cache) GetOrSet(ctx context.Context, key string, dest interface{},
	fetch func() (interface{}, error), ttl time.Duration) error {

	err := c.Get(ctx, key, dest)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		c.logger.WarnContext(ctx, "cache read failed, fetching",
			slog.String("key", key),
			slog.Any("error", err))
	}

	value, err := fetch()
	if err != nil {
		return err
	}

	if err := c.SetWithTTL(ctx, key, value, ttl); err != nil {
		c.logger.WarnContext(ctx, "failed to cache value after fetch",
			slog.String("key", key),
			slog.Any("error", err))
	}

	return copyInto(value, dest)
}

// Ping checks if Redis is accessible
func (c *Cache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping error: %w", err)
	}
	return nil
}

func copyInto(value, dest interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}
	return nil
}

// NopCache satisfies CacheRepository without storing anything. It is used
// when Redis is disabled.
type NopCache struct{}

var _ ports.CacheRepository = NopCache{}

func (NopCache) Set(context.Context, string, interface{}) error { return nil }
func (NopCache) SetWithTTL(context.Context, string, interface{}, time.Duration) error {
	return nil
}
func (NopCache) Get(context.Context, string, interface{}) error { return ErrCacheMiss }
func (NopCache) Delete(context.Context, ...string) error        { return nil }
func (NopCache) DeletePattern(context.Context, string) error    { return nil }
func (NopCache) Ping(context.Context) error                     { return nil }

func (NopCache) GetOrSet(_ context.Context, _ string, dest interface{},
	fetch func() (interface{}, error), _ time.Duration) error {
	value, err := fetch()
	if err != nil {
		return err
	}
	return copyInto(value, dest)
}

// CacheManager owns cross-cutting invalidation
type CacheManager struct {
	cache  ports.CacheRepository
	logger *slog.Logger
}

var _ ports.CacheInvalidator = (*CacheManager)(nil)

// NewCacheManager creates a new cache manager
func NewCacheManager(cache ports.CacheRepository, logger *slog.Logger) *CacheManager {
	return &CacheManager{
		cache:  cache,
		logger: logger.With(slog.String("component", "cache_manager")),
	}
}

// Invalidate drops every key under the given prefixes. Failures are logged
// and skipped; stale entries still expire on their TTL.
func (m *CacheManager) Invalidate(ctx context.Context, prefixes ...ports.CacheKeyPrefix) {
	for _, prefix := range prefixes {
		pattern := ports.BuildKey(prefix, "*")
		if err := m.cache.DeletePattern(ctx, pattern); err != nil {
			m.logger.WarnContext(ctx, "failed to invalidate cache pattern",
				slog.String("pattern", pattern),
				slog.Any("error", err))
		}
	}
}

// InvalidateAfterMutation drops rows derived from games or sales
func (m *CacheManager) InvalidateAfterMutation(ctx context.Context) {
	m.Invalidate(ctx, ports.PrefixDashboard, ports.PrefixGames, ports.PrefixSales)
}

// InvalidateAfterSync additionally drops the cached last-sync records
func (m *CacheManager) InvalidateAfterSync(ctx context.Context) {
	m.Invalidate(ctx, ports.PrefixDashboard, ports.PrefixGames, ports.PrefixSales, ports.PrefixSync)
}
