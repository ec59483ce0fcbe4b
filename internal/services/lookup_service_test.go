package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/volunteer-directory-api/internal/cache"
	"github.com/yukikurage/volunteer-directory-api/internal/constants"
	"github.com/yukikurage/volunteer-directory-api/internal/metrics"
	"github.com/yukikurage/volunteer-directory-api/internal/models"
	"github.com/yukikurage/volunteer-directory-api/internal/repository"
	"github.com/yukikurage/volunteer-directory-api/internal/testutil"
	"go.uber.org/zap"
)

func TestLookupService_CachesListings(t *testing.T) {
	db := testutil.NewTestDB(t)
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	service := NewDirectoryService(
		repository.NewRepositories(db),
		cache.NewRedisLookupCache(client, time.Minute),
		metrics.New(),
		zap.NewNop(),
		Options{},
	)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.City{Title: "Kyiv"}).Error)

	cities, err := service.Cities.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, cities, 1)
	assert.True(t, mr.Exists(constants.LookupCacheKeyPrefix+"cities"))

	// Rows written behind the service stay invisible until the cache is dropped
	require.NoError(t, db.Create(&models.City{Title: "Lviv"}).Error)
	cities, err = service.Cities.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, cities, 1)

	require.NoError(t, service.Cities.Add(ctx, &models.City{Title: "Odesa"}))
	assert.False(t, mr.Exists(constants.LookupCacheKeyPrefix+"cities"))

	cities, err = service.Cities.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, cities, 3)
}

func TestLookupService_CacheOutageFallsBackToStore(t *testing.T) {
	db := testutil.NewTestDB(t)
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
	})
	mr.Close()

	service := NewDirectoryService(
		repository.NewRepositories(db),
		cache.NewRedisLookupCache(client, time.Minute),
		metrics.New(),
		zap.NewNop(),
		Options{},
	)

	require.NoError(t, db.Create(&models.Activity{Title: "Medicine"}).Error)

	activities, err := service.Activities.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, activities, 1)
}
