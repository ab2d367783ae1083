package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-estimate-service/internal/adapters/geocode"
	"travel-estimate-service/internal/domain"
	"travel-estimate-service/internal/ports"
)

// countingGeocoder counts how often the wrapped geocoder is consulted.
type countingGeocoder struct {
	inner ports.Geocoder
	calls int
}

func (g *countingGeocoder) Resolve(ctx context.Context, place string) (domain.Coordinates, error) {
	g.calls++
	return g.inner.Resolve(ctx, place)
}

func newTestCache(t *testing.T, ttl time.Duration) (*RedisGeocodeCache, *countingGeocoder, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	counting := &countingGeocoder{inner: geocode.NewMockGeocoder(map[string]domain.Coordinates{
		"大阪駅": {Lat: 34.733198, Lon: 135.500109},
	})}

	return NewRedisGeocodeCache(counting, rdb, ttl), counting, mr
}

func TestRedisGeocodeCacheHit(t *testing.T) {
	c, counting, _ := newTestCache(t, time.Hour)
	ctx := context.Background()

	first, err := c.Resolve(ctx, "大阪駅")
	require.NoError(t, err)
	assert.Equal(t, 1, counting.calls)

	second, err := c.Resolve(ctx, "大阪駅")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, counting.calls, "second lookup must be served from cache")

	// Whitespace variants share one cache slot.
	third, err := c.Resolve(ctx, "  大阪駅 ")
	require.NoError(t, err)
	assert.Equal(t, first, third)
	assert.Equal(t, 1, counting.calls)
}

func TestRedisGeocodeCacheExpiry(t *testing.T) {
	c, counting, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	_, err := c.Resolve(ctx, "大阪駅")
	require.NoError(t, err)
	require.Equal(t, 1, counting.calls)

	mr.FastForward(2 * time.Minute)

	_, err = c.Resolve(ctx, "大阪駅")
	require.NoError(t, err)
	assert.Equal(t, 2, counting.calls, "expired entry must fall through to the geocoder")
}

func TestRedisGeocodeCacheNotFoundIsNotCached(t *testing.T) {
	c, counting, _ := newTestCache(t, time.Hour)
	ctx := context.Background()

	_, err := c.Resolve(ctx, "存在しない駅")
	require.ErrorIs(t, err, ports.ErrPlaceNotFound)
	assert.Equal(t, 1, counting.calls)

	_, err = c.Resolve(ctx, "存在しない駅")
	require.ErrorIs(t, err, ports.ErrPlaceNotFound)
	assert.Equal(t, 2, counting.calls, "not-found must not be cached")
}
