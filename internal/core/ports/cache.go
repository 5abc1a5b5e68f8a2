// internal/core/ports/cache.go
package ports

import (
	"context"
	"strings"
	"time"
)

// CacheKeyPrefix groups cached keys so they can be dropped together
type CacheKeyPrefix string

const (
	PrefixGames     CacheKeyPrefix = "games"
	PrefixSales     CacheKeyPrefix = "sales"
	PrefixDashboard CacheKeyPrefix = "dash"
	PrefixSync      CacheKeyPrefix = "sync"
)

// BuildKey joins prefix and parts with ':'
func BuildKey(prefix CacheKeyPrefix, parts ...string) string {
	return strings.Join(append([]string{string(prefix)}, parts...), ":")
}

// CacheRepository defines the interface for cache operations
type CacheRepository interface {
	Set(ctx context.Context, key string, value interface{}) error
	SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, keys ...string) error
	DeletePattern(ctx context.Context, pattern string) error

	// GetOrSet reads key into dest, calling fetch and storing its result on a miss
	GetOrSet(ctx context.Context, key string, dest interface{},
		fetch func() (interface{}, error), ttl time.Duration) error

	Ping(ctx context.Context) error
}

// CacheInvalidator drops cached rows that a mutation or sync made stale
type CacheInvalidator interface {
	InvalidateAfterMutation(ctx context.Context)
	InvalidateAfterSync(ctx context.Context)
}
