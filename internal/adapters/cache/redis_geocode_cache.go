package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"trip-fare-service/internal/domain"
)

const redisKeyPrefix = "geocode:"

// RedisGeocodeCache stores geocode results in Redis. Invalidation is
// delegated to Redis key TTLs, so expired entries simply disappear.
type RedisGeocodeCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisGeocodeCache(client *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	return &RedisGeocodeCache{Client: client, TTL: ttl}
}

// Get fetches a live cached coordinate for the key.
func (r *RedisGeocodeCache) Get(ctx context.Context, key string) (domain.Coordinate, bool, error) {
	val, err := r.Client.Get(ctx, redisKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return domain.Coordinate{}, false, nil
	}
	if err != nil {
		return domain.Coordinate{}, false, fmt.Errorf("get geocode cache key=%q: %w", key, err)
	}

	coord, err := decodeCoord(val)
	if err != nil {
		return domain.Coordinate{}, false, fmt.Errorf("get geocode cache key=%q: %w", key, err)
	}

	return coord, true, nil
}

// Put stores the coordinate under the key with a fresh TTL.
func (r *RedisGeocodeCache) Put(ctx context.Context, key string, coord domain.Coordinate) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("insert geocode cache: empty query key")
	}

	if err := r.Client.Set(ctx, redisKeyPrefix+key, encodeCoord(coord), r.TTL).Err(); err != nil {
		return fmt.Errorf("insert geocode cache key=%q: %w", key, err)
	}

	return nil
}

func encodeCoord(c domain.Coordinate) string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lon, 'f', -1, 64)
}

func decodeCoord(s string) (domain.Coordinate, error) {
	lat, lon, ok := strings.Cut(s, ",")
	if !ok {
		return domain.Coordinate{}, fmt.Errorf("malformed cached value %q", s)
	}

	latF, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("malformed cached latitude %q: %w", lat, err)
	}

	lonF, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("malformed cached longitude %q: %w", lon, err)
	}

	return domain.Coordinate{Lat: latF, Lon: lonF}, nil
}
