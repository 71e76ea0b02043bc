package routing

import (
	"context"
	"errors"
	"math"
	"testing"

	"trip-fare-service/internal/domain"
	"trip-fare-service/internal/ports"
)

var (
	testOrigin      = domain.Coordinate{Lat: 28.6315, Lon: 77.2167}
	testDestination = domain.Coordinate{Lat: 28.6129, Lon: 77.2295}
)

func TestResolverSelectsFirstCandidate(t *testing.T) {
	engine := &MockEngine{Candidates: []ports.RouteCandidate{
		{DistanceMeters: 2500, DurationSeconds: 420},
		{DistanceMeters: 9000, DurationSeconds: 1200},
	}}
	r := NewResolver(engine)

	got, err := r.ResolveRoute(context.Background(), testOrigin, testDestination)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.DistanceKm != 2.5 {
		t.Fatalf("distance = %v km, want 2.5", got.DistanceKm)
	}
	if got.DurationSeconds != 420 {
		t.Fatalf("duration = %v s, want 420", got.DurationSeconds)
	}
}

func TestResolverIgnoresDuplicateCompletions(t *testing.T) {
	engine := &MockEngine{
		Candidates: []ports.RouteCandidate{{DistanceMeters: 1000, DurationSeconds: 60}},
		Signals:    3,
	}
	r := NewResolver(engine)

	got, err := r.ResolveRoute(context.Background(), testOrigin, testDestination)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.DistanceKm != 1 {
		t.Fatalf("distance = %v km, want 1", got.DistanceKm)
	}
}

func TestResolverNoCandidates(t *testing.T) {
	r := NewResolver(&MockEngine{})

	_, err := r.ResolveRoute(context.Background(), testOrigin, testDestination)
	if !errors.Is(err, domain.ErrNoRouteFound) {
		t.Fatalf("expected ErrNoRouteFound, got %v", err)
	}
}

func TestResolverRejectsNonFiniteCoordinates(t *testing.T) {
	engine := &MockEngine{Candidates: []ports.RouteCandidate{{DistanceMeters: 1000, DurationSeconds: 60}}}
	r := NewResolver(engine)

	_, err := r.ResolveRoute(context.Background(), domain.Coordinate{Lat: math.NaN(), Lon: 77.2}, testDestination)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestResolverRejectsNegativeMetrics(t *testing.T) {
	engine := &MockEngine{Candidates: []ports.RouteCandidate{{DistanceMeters: -5, DurationSeconds: 60}}}
	r := NewResolver(engine)

	_, err := r.ResolveRoute(context.Background(), testOrigin, testDestination)
	if !errors.Is(err, domain.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

// silentEngine never signals; completion must come from context expiry.
type silentEngine struct{}

func (silentEngine) Submit(ctx context.Context, origin, destination domain.Coordinate, done func([]ports.RouteCandidate, error)) {
}

func TestResolverHonorsContextCancellation(t *testing.T) {
	r := NewResolver(silentEngine{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.ResolveRoute(ctx, testOrigin, testDestination)
	if !errors.Is(err, domain.ErrServiceUnavailable) {
		t.Fatalf("expected ErrServiceUnavailable, got %v", err)
	}
}
