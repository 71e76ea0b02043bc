package geocode

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"trip-fare-service/internal/domain"
	"trip-fare-service/internal/ports"
)

// CacheKey normalizes a query to a stable cache key: whitespace collapsed,
// lowercased. Blank queries produce an empty key.
func CacheKey(query string) string {
	return strings.ToLower(strings.Join(strings.Fields(query), " "))
}

// Cached wraps a Geocoder with a read-through TTL cache keyed by
// normalized query text. Cache failures are logged and treated as misses;
// the underlying geocoder stays authoritative.
type Cached struct {
	next  ports.Geocoder
	cache ports.GeocodeCache
	log   *zap.Logger
}

func NewCached(next ports.Geocoder, cache ports.GeocodeCache, log *zap.Logger) *Cached {
	return &Cached{next: next, cache: cache, log: log}
}

func (c *Cached) Resolve(ctx context.Context, query string) (domain.Coordinate, error) {
	key := CacheKey(query)
	if key == "" {
		// Blank input fails fast in the wrapped geocoder.
		return c.next.Resolve(ctx, query)
	}

	coord, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		c.log.Warn("geocode cache read failed", zap.String("key", key), zap.Error(err))
	} else if ok {
		return coord, nil
	}

	coord, err = c.next.Resolve(ctx, query)
	if err != nil {
		return domain.Coordinate{}, err
	}

	if err := c.cache.Put(ctx, key, coord); err != nil {
		c.log.Warn("geocode cache write failed", zap.String("key", key), zap.Error(err))
	}

	return coord, nil
}
