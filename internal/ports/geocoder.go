package ports

import (
	"context"

	"trip-fare-service/internal/domain"
)

// Port: a boundary for resolving free-text place descriptions into
// geographic coordinates via an external geocoding service.
type Geocoder interface {
	// Resolve issues a single lookup for the query and returns the
	// first (highest-confidence) candidate. Implementations fail with
	// domain.ErrInvalidInput for blank queries before any network call,
	// domain.ErrNotFound for empty candidate lists,
	// domain.ErrParse for malformed responses, and
	// domain.ErrServiceUnavailable for transport failures.
	// No retry is performed; a retry is the caller's decision.
	Resolve(ctx context.Context, query string) (domain.Coordinate, error)
}
