package ports

import (
	"context"

	"trip-fare-service/internal/domain"
)

// One candidate path returned by a routing engine, with raw summary
// metrics in the engine's native units (meters, seconds).
type RouteCandidate struct {
	DistanceMeters  float64
	DurationSeconds float64
}

// Port: a boundary for resolving a travel route between two coordinates.
type RouteProvider interface {
	// ResolveRoute submits the ordered origin->destination pair and
	// returns the first candidate's summary converted to domain units.
	// Fails with domain.ErrNoRouteFound when the engine returns zero
	// candidates, distinctly from domain.ErrServiceUnavailable.
	ResolveRoute(ctx context.Context, origin, destination domain.Coordinate) (domain.RouteResult, error)
}
