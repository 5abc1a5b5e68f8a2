package redis_a_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redis_a "github.com/ammerola/gamedash/internal/adapters/redis_adapter"
	"github.com/ammerola/gamedash/internal/core/domain"
	"github.com/ammerola/gamedash/test/helpers"
)

func newTestCache(t *testing.T) (*redis_a.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return redis_a.NewCache(client, 5*time.Minute, helpers.TestLogger()), mr
}

func TestCache_SetAndGet(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t)

	t.Run("stores_and_retrieves_rows", func(t *testing.T) {
		rows := []domain.GamesByDate{{Date: "2024-05-01", Count: 3}}
		require.NoError(t, cache.Set(ctx, "dash:games-by-date", rows))

		var got []domain.GamesByDate
		require.NoError(t, cache.Get(ctx, "dash:games-by-date", &got))
		assert.Equal(t, rows, got)
	})

	t.Run("stores_and_retrieves_decimal_fields", func(t *testing.T) {
		summary := domain.Summary{TotalGames: 3, AvgOurPrice: *helpers.Dec("12.34")}
		require.NoError(t, cache.Set(ctx, "dash:summary", summary))

		var got domain.Summary
		require.NoError(t, cache.Get(ctx, "dash:summary", &got))
		assert.True(t, got.AvgOurPrice.Equal(summary.AvgOurPrice))
	})

	t.Run("miss", func(t *testing.T) {
		var got string
		err := cache.Get(ctx, "nope", &got)
		assert.ErrorIs(t, err, redis_a.ErrCacheMiss)
	})

	t.Run("unmarshal_error", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "text", "hello"))

		var got int
		err := cache.Get(ctx, "text", &got)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unmarshal error")
	})
}

func TestCache_SetWithTTL(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t)

	require.NoError(t, cache.SetWithTTL(ctx, "short", "v", time.Second))
	assert.Equal(t, time.Second, mr.TTL("short"))

	require.NoError(t, cache.Set(ctx, "default", "v"))
	assert.Equal(t, 5*time.Minute, mr.TTL("default"))

	mr.FastForward(2 * time.Second)

	var got string
	assert.ErrorIs(t, cache.Get(ctx, "short", &got), redis_a.ErrCacheMiss)
	assert.NoError(t, cache.Get(ctx, "default", &got))
}

func TestCache_DeleteAndPattern(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t)

	for _, key := range []string{"dash:a", "dash:b:c", "games:1", "sync:games:last"} {
		require.NoError(t, cache.Set(ctx, key, 1))
	}

	require.NoError(t, cache.Delete(ctx))
	require.NoError(t, cache.Delete(ctx, "games:1"))
	assert.False(t, mr.Exists("games:1"))

	require.NoError(t, cache.DeletePattern(ctx, "dash:*"))
	assert.False(t, mr.Exists("dash:a"))
	assert.False(t, mr.Exists("dash:b:c"))
	assert.True(t, mr.Exists("sync:games:last"))

	require.NoError(t, cache.DeletePattern(ctx, "nothing:*"))
}

func TestCache_GetOrSet(t *testing.T) {
	ctx := context.Background()

	t.Run("fetches_once", func(t *testing.T) {
		cache, mr := newTestCache(t)
		calls := 0
		fetch := func() (interface{}, error) {
			calls++
			return &domain.SyncLog{ID: 9, Status: "success"}, nil
		}

		for range 3 {
			var got *domain.SyncLog
			require.NoError(t, cache.GetOrSet(ctx, "sync:games:last", &got, fetch, time.Minute))
			require.NotNil(t, got)
			assert.Equal(t, int64(9), got.ID)
		}
		assert.Equal(t, 1, calls)
		assert.Equal(t, time.Minute, mr.TTL("sync:games:last"))
	})

	t.Run("fetch_error_is_returned_and_not_cached", func(t *testing.T) {
		cache, mr := newTestCache(t)
		var got []domain.SalesByDate

		err := cache.GetOrSet(ctx, "dash:x", &got, func() (interface{}, error) {
			return nil, errors.New("backend down")
		}, time.Minute)

		assert.EqualError(t, err, "backend down")
		assert.False(t, mr.Exists("dash:x"))
	})

	t.Run("redis_outage_falls_through_to_fetch", func(t *testing.T) {
		cache, mr := newTestCache(t)
		mr.Close()

		var got []string
		err := cache.GetOrSet(ctx, "dash:y", &got, func() (interface{}, error) {
			return []string{"RPG"}, nil
		}, time.Minute)

		require.NoError(t, err)
		assert.Equal(t, []string{"RPG"}, got)
	})
}

func TestCache_Ping(t *testing.T) {
	cache, mr := newTestCache(t)
	assert.NoError(t, cache.Ping(context.Background()))

	mr.Close()
	assert.Error(t, cache.Ping(context.Background()))
}

func TestNopCache(t *testing.T) {
	ctx := context.Background()
	var cache redis_a.NopCache

	require.NoError(t, cache.Set(ctx, "k", 1))
	var n int
	assert.ErrorIs(t, cache.Get(ctx, "k", &n), redis_a.ErrCacheMiss)

	calls := 0
	for range 2 {
		err := cache.GetOrSet(ctx, "k", &n, func() (interface{}, error) {
			calls++
			return 7, nil
		}, time.Minute)
		require.NoError(t, err)
	}
	assert.Equal(t, 7, n)
	assert.Equal(t, 2, calls, "nothing is stored")
	assert.NoError(t, cache.Ping(ctx))
}

func TestCacheManager_Invalidate(t *testing.T) {
	tests := []struct {
		name      string
		invoke    func(context.Context, *redis_a.CacheManager)
		survivors []string
	}{
		{
			name:      "after_mutation_keeps_sync_records",
			invoke:    func(ctx context.Context, m *redis_a.CacheManager) { m.InvalidateAfterMutation(ctx) },
			survivors: []string{"sync:games:last", "other:key"},
		},
		{
			name:      "after_sync_drops_sync_records",
			invoke:    func(ctx context.Context, m *redis_a.CacheManager) { m.InvalidateAfterSync(ctx) },
			survivors: []string{"other:key"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			cache, mr := newTestCache(t)
			for _, key := range []string{"dash:summary", "games:list", "sales:list", "sync:games:last", "other:key"} {
				require.NoError(t, cache.Set(ctx, key, 1))
			}

			tt.invoke(ctx, redis_a.NewCacheManager(cache, helpers.TestLogger()))

			assert.ElementsMatch(t, tt.survivors, mr.Keys())
		})
	}
}
