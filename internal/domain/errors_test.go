package domain

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestFailureKind(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("geocode %q: %w", "x", ErrInvalidInput), "invalid_input"},
		{fmt.Errorf("geocode %q: no candidates: %w", "x", ErrNotFound), "not_found"},
		{fmt.Errorf("route request: no candidates: %w", ErrNoRouteFound), "no_route_found"},
		{fmt.Errorf("osrm: connection refused: %w", ErrServiceUnavailable), "service_unavailable"},
		{fmt.Errorf("osrm: decode response: %w", ErrParse), "parse_error"},
		{errors.New("something else"), "internal"},
	}

	for _, tc := range cases {
		if got := FailureKind(tc.err); got != tc.want {
			t.Fatalf("FailureKind(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}

func TestCoordinateIsFinite(t *testing.T) {
	if !(Coordinate{Lat: 28.6129, Lon: 77.2295}).IsFinite() {
		t.Fatal("expected a regular coordinate to be finite")
	}
	if (Coordinate{Lat: math.NaN(), Lon: 77.2295}).IsFinite() {
		t.Fatal("NaN latitude must not be finite")
	}
	if (Coordinate{Lat: 28.6129, Lon: math.Inf(1)}).IsFinite() {
		t.Fatal("infinite longitude must not be finite")
	}
}

func TestCoordsToListOrdering(t *testing.T) {
	got := (Coordinate{Lat: 28.6129, Lon: 77.2295}).CoordsToList()
	if len(got) != 2 || got[0] != 77.2295 || got[1] != 28.6129 {
		t.Fatalf("CoordsToList = %v, want [77.2295 28.6129]", got)
	}
}
