package ports

import (
	"context"

	"trip-fare-service/internal/domain"
)

// Port: an optional cache for geocode results, keyed by normalized query
// text. Entries expire by TTL; an expired entry is a miss. The core runs
// cache-free by default, so every implementation is opt-in wiring.
type GeocodeCache interface {
	// Get returns the cached coordinate for the key and whether a live
	// (non-expired) entry exists.
	Get(ctx context.Context, key string) (domain.Coordinate, bool, error)

	// Put stores the coordinate under the key, resetting its TTL.
	Put(ctx context.Context, key string, coord domain.Coordinate) error
}
