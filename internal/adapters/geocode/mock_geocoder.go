package geocode

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"trip-fare-service/internal/domain"
)

// MockGeocoder resolves queries from a fixed table. Unknown queries fail
// with domain.ErrNotFound; entries in Errs fail with the given error.
// Lookups may run concurrently; Calls counts attempted lookups (blank
// input is still rejected first, without counting).
type MockGeocoder struct {
	Coords map[string]domain.Coordinate
	Errs   map[string]error

	mu    sync.Mutex
	calls int
}

func NewMockGeocoder(coords map[string]domain.Coordinate) *MockGeocoder {
	return &MockGeocoder{Coords: coords, Errs: map[string]error{}}
}

func (m *MockGeocoder) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *MockGeocoder) Resolve(ctx context.Context, query string) (domain.Coordinate, error) {
	if strings.TrimSpace(query) == "" {
		return domain.Coordinate{}, fmt.Errorf("geocode: query must be non-empty: %w", domain.ErrInvalidInput)
	}

	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if err, ok := m.Errs[query]; ok {
		return domain.Coordinate{}, err
	}

	c, ok := m.Coords[query]
	if !ok {
		return domain.Coordinate{}, fmt.Errorf("geocode %q: no candidates: %w", query, domain.ErrNotFound)
	}

	return c, nil
}
