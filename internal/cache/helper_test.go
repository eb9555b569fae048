package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedAdvert struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()

	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestGetSetJSON(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	var missed cachedAdvert
	found, err := GetJSON(ctx, AdvertKey(1), &missed)
	require.NoError(t, err)
	assert.False(t, found)

	err = SetJSON(ctx, AdvertKey(1), cachedAdvert{ID: 1, Title: "Blue jacket"}, AdvertTTL)
	require.NoError(t, err)

	var hit cachedAdvert
	found, err = GetJSON(ctx, AdvertKey(1), &hit)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Blue jacket", hit.Title)

	mr.FastForward(AdvertTTL + time.Second)
	found, err = GetJSON(ctx, AdvertKey(1), &hit)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAside(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	fetches := 0
	fetch := func(dest *cachedAdvert) func() error {
		return func() error {
			fetches++
			*dest = cachedAdvert{ID: 5, Title: "Red dress"}
			return nil
		}
	}

	var first cachedAdvert
	err := Aside(ctx, AdvertKey(5), &first, AdvertTTL, fetch(&first))
	require.NoError(t, err)
	assert.Equal(t, 1, fetches)
	assert.Equal(t, "Red dress", first.Title)

	// Second read comes from the cache; fetch is not called again.
	var second cachedAdvert
	err = Aside(ctx, AdvertKey(5), &second, AdvertTTL, fetch(&second))
	require.NoError(t, err)
	assert.Equal(t, 1, fetches)
	assert.Equal(t, "Red dress", second.Title)
}

func TestAsideWithoutClient(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	fetches := 0
	var dest cachedAdvert
	err := Aside(ctx, AdvertKey(9), &dest, AdvertTTL, func() error {
		fetches++
		dest = cachedAdvert{ID: 9, Title: "Wool sweater"}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fetches)
	assert.Equal(t, "Wool sweater", dest.Title)

	// Every call hits the fetch path when no client is configured.
	err = Aside(ctx, AdvertKey(9), &dest, AdvertTTL, func() error {
		fetches++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, fetches)
}

func TestRecentAdvertsKeyVariesByLimit(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, RecentAdvertsKey(2), []cachedAdvert{{ID: 1}, {ID: 2}}, RecentTTL))

	// A shorter cached page must never answer a request for the full one.
	var full []cachedAdvert
	found, err := GetJSON(ctx, RecentAdvertsKey(8), &full)
	require.NoError(t, err)
	assert.False(t, found)

	var short []cachedAdvert
	found, err = GetJSON(ctx, RecentAdvertsKey(2), &short)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, short, 2)
}

func TestInvalidateAdvert(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, AdvertKey(3), cachedAdvert{ID: 3}, AdvertTTL))
	require.NoError(t, SetJSON(ctx, RecentAdvertsKey(2), []cachedAdvert{{ID: 3}}, RecentTTL))
	require.NoError(t, SetJSON(ctx, RecentAdvertsKey(8), []cachedAdvert{{ID: 3}}, RecentTTL))

	InvalidateAdvert(ctx, 3)

	assert.False(t, mr.Exists(AdvertKey(3)))
	assert.False(t, mr.Exists(RecentAdvertsKey(2)))
	assert.False(t, mr.Exists(RecentAdvertsKey(8)))
}
