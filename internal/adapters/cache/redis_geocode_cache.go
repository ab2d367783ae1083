package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"travel-estimate-service/internal/domain"
	"travel-estimate-service/internal/ports"
)

// RedisGeocodeCache decorates a Geocoder with a Redis place -> coordinate
// cache. Cache failures never fail a lookup: misses and Redis errors fall
// through to the wrapped geocoder, and write failures are logged only.
// Not-found results are not cached.
type RedisGeocodeCache struct {
	next ports.Geocoder
	rdb  *redis.Client
	ttl  time.Duration
}

type cachedCoords struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func NewRedisGeocodeCache(next ports.Geocoder, rdb *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	return &RedisGeocodeCache{next: next, rdb: rdb, ttl: ttl}
}

// key normalizes the place name so lookups with stray whitespace share
// one cache slot.
func (c *RedisGeocodeCache) key(place string) string {
	return "geocode:" + strings.Join(strings.Fields(place), " ")
}

func (c *RedisGeocodeCache) Resolve(ctx context.Context, place string) (domain.Coordinates, error) {
	key := c.key(place)

	raw, err := c.rdb.Get(ctx, key).Result()
	if err == nil {
		var cc cachedCoords
		if err := json.Unmarshal([]byte(raw), &cc); err == nil {
			return domain.Coordinates{Lat: cc.Lat, Lon: cc.Lon}, nil
		}
		log.Printf("geocode cache: corrupt entry key=%q", key)
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("geocode cache read failed: %v", err)
	}

	coords, err := c.next.Resolve(ctx, place)
	if err != nil {
		return domain.Coordinates{}, err
	}

	payload, err := json.Marshal(cachedCoords{Lat: coords.Lat, Lon: coords.Lon})
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode cache: marshal coords: %w", err)
	}
	if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		log.Printf("geocode cache write failed: %v", err)
	}

	return coords, nil
}
