package routing

import (
	"context"
	"fmt"
	"sync"

	"trip-fare-service/internal/domain"
	"trip-fare-service/internal/platform/obs"
	"trip-fare-service/internal/ports"
)

// RouteEngine computes candidate routes off-caller and reports the outcome
// through the done callback. An engine may signal more than once; the
// first signal is authoritative and later ones must be ignored.
type RouteEngine interface {
	Submit(ctx context.Context, origin, destination domain.Coordinate, done func(candidates []ports.RouteCandidate, err error))
}

// pending is a one-shot settled result. The first settle call wins;
// duplicate signals from the engine are dropped.
type pending struct {
	once       sync.Once
	done       chan struct{}
	candidates []ports.RouteCandidate
	err        error
}

func newPending() *pending {
	return &pending{done: make(chan struct{})}
}

func (p *pending) settle(candidates []ports.RouteCandidate, err error) {
	p.once.Do(func() {
		p.candidates = candidates
		p.err = err
		close(p.done)
	})
}

func (p *pending) wait(ctx context.Context) ([]ports.RouteCandidate, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("route request: %s: %w", ctx.Err(), domain.ErrServiceUnavailable)
	case <-p.done:
		return p.candidates, p.err
	}
}

// Resolver adapts a callback-signaling RouteEngine to the synchronous
// RouteProvider contract the pipeline awaits. It registers one pending
// result per request and selects the first returned candidate.
type Resolver struct {
	engine RouteEngine
}

func NewResolver(engine RouteEngine) *Resolver {
	return &Resolver{engine: engine}
}

func (r *Resolver) ResolveRoute(ctx context.Context, origin, destination domain.Coordinate) (_ domain.RouteResult, err error) {
	defer obs.Time(ctx, "routing.ResolveRoute")(&err)

	if !origin.IsFinite() || !destination.IsFinite() {
		return domain.RouteResult{}, fmt.Errorf("route request: coordinates must be finite: %w", domain.ErrInvalidInput)
	}

	p := newPending()
	r.engine.Submit(ctx, origin, destination, p.settle)

	candidates, err := p.wait(ctx)
	if err != nil {
		return domain.RouteResult{}, err
	}

	if len(candidates) == 0 {
		return domain.RouteResult{}, fmt.Errorf("route request: no candidates: %w", domain.ErrNoRouteFound)
	}

	// First-returned candidate is authoritative; no ranking.
	first := candidates[0]
	if first.DistanceMeters < 0 || first.DurationSeconds < 0 {
		return domain.RouteResult{}, fmt.Errorf("route request: negative summary metrics: %w", domain.ErrParse)
	}

	return domain.RouteResult{
		DistanceKm:      first.DistanceMeters / 1000,
		DurationSeconds: first.DurationSeconds,
	}, nil
}
