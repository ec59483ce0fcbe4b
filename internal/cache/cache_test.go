package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/volunteer-directory-api/internal/constants"
)

type entry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return client, mr
}

func TestRedisLookupCache_RoundTrip(t *testing.T) {
	client, mr := setupTestRedis(t)
	c := NewRedisLookupCache(client, time.Minute)
	ctx := context.Background()

	var got []entry
	hit, err := c.Get(ctx, "cities", &got)
	require.NoError(t, err)
	assert.False(t, hit)

	want := []entry{{ID: "1", Title: "Kyiv"}}
	require.NoError(t, c.Set(ctx, "cities", want))
	assert.True(t, mr.Exists(constants.LookupCacheKeyPrefix+"cities"))

	hit, err = c.Get(ctx, "cities", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, want, got)

	require.NoError(t, c.Invalidate(ctx, "cities"))
	hit, err = c.Get(ctx, "cities", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedisLookupCache_Expires(t *testing.T) {
	client, mr := setupTestRedis(t)
	c := NewRedisLookupCache(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "activities", []entry{{ID: "1"}}))
	mr.FastForward(2 * time.Minute)

	var got []entry
	hit, err := c.Get(ctx, "activities", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedisLookupCache_Unavailable(t *testing.T) {
	client, mr := setupTestRedis(t)
	c := NewRedisLookupCache(client, time.Minute)
	mr.Close()

	var got []entry
	_, err := c.Get(context.Background(), "cities", &got)
	assert.Error(t, err)
}

func TestNopCache(t *testing.T) {
	var c LookupCache = NopCache{}
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "cities", []entry{{ID: "1"}}))
	var got []entry
	hit, err := c.Get(ctx, "cities", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}
