package service

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stemsi/trivia-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRegistry_MappingAndLookup(t *testing.T) {
	ctx := context.Background()
	_, registry := newTestCatalog(t, CatalogOptions{})

	list, err := registry.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 6)
	assert.Equal(t, 1, list[0].ID)

	mapping, err := registry.AsMapping(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Sports", mapping[6])
	assert.Len(t, mapping, 6)

	label, ok, err := registry.Label(ctx, 3)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Geography", label)

	_, ok, err = registry.Label(ctx, 42)
	require.NoError(t, err)
	assert.False(t, ok)

	exists, err := registry.Exists(ctx, 42)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, registry.Prewarm(ctx), "prewarm without redis is a no-op")
}

func TestCategoryRegistry_FallsBackWhenRedisIsDown(t *testing.T) {
	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })

	registry := NewCategoryRegistry(repository.NewMemoryCategoryRepository(testCategories...), rdb, time.Minute, zerolog.Nop())

	require.NoError(t, registry.Prewarm(ctx), "cache write failures are logged, not returned")

	mapping, err := registry.AsMapping(ctx)
	require.NoError(t, err)
	assert.Len(t, mapping, 6)
	assert.Equal(t, "Sports", mapping[6])

	label, ok, err := registry.Label(ctx, 2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Art", label)
}
