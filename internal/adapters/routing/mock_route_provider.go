package routing

import (
	"context"

	"trip-fare-service/internal/domain"
	"trip-fare-service/internal/ports"
)

// MockEngine signals a scripted outcome. Signals > 1 fires the done
// callback repeatedly to exercise duplicate-completion handling.
type MockEngine struct {
	Candidates []ports.RouteCandidate
	Err        error
	Signals    int
}

func (m *MockEngine) Submit(ctx context.Context, origin, destination domain.Coordinate, done func([]ports.RouteCandidate, error)) {
	n := m.Signals
	if n <= 0 {
		n = 1
	}
	for i := 0; i < n; i++ {
		done(m.Candidates, m.Err)
	}
}

// MockRouteProvider returns a fixed RouteResult or error and counts calls.
type MockRouteProvider struct {
	Result domain.RouteResult
	Err    error
	Calls  int
}

func (m *MockRouteProvider) ResolveRoute(ctx context.Context, origin, destination domain.Coordinate) (domain.RouteResult, error) {
	m.Calls++
	if m.Err != nil {
		return domain.RouteResult{}, m.Err
	}
	return m.Result, nil
}
