package redis

import (
	"context"
	"testing"
	"time"

	referencePort "postcms/internal/ports/reference"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T, ttl time.Duration) (*ProjectionCacheRedis, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewProjectionCacheRedis(client, ttl), srv
}

func TestProjectionCache_Author(t *testing.T) {
	t.Parallel()

	cache, srv := newCache(t, time.Minute)
	ctx := context.Background()

	_, err := cache.GetAuthor(ctx, "u1")
	require.ErrorIs(t, err, referencePort.ErrCacheMiss)

	want := &referencePort.AuthorProjection{ID: "u1", Name: "Ana", Email: "ana@example.com"}
	require.NoError(t, cache.SetAuthor(ctx, want))
	require.Equal(t, "Ana", srv.HGet("author:u1", "name"))
	require.Equal(t, time.Minute, srv.TTL("author:u1"))

	got, err := cache.GetAuthor(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, want, got)

	srv.FastForward(2 * time.Minute)
	_, err = cache.GetAuthor(ctx, "u1")
	require.ErrorIs(t, err, referencePort.ErrCacheMiss)
}

func TestProjectionCache_Category(t *testing.T) {
	t.Parallel()

	cache, srv := newCache(t, 0)
	ctx := context.Background()

	require.NoError(t, cache.SetCategory(ctx, &referencePort.CategoryProjection{ID: "c1", Name: "News"}))
	require.Equal(t, time.Duration(0), srv.TTL("category:c1"))

	got, err := cache.GetCategory(ctx, "c1")
	require.NoError(t, err)
	require.Equal(t, "News", got.Name)
}

func TestProjectionCache_Unavailable(t *testing.T) {
	t.Parallel()

	cache, srv := newCache(t, time.Minute)
	srv.Close()

	_, err := cache.GetAuthor(context.Background(), "u1")
	require.Error(t, err)
	require.NotErrorIs(t, err, referencePort.ErrCacheMiss)
}
