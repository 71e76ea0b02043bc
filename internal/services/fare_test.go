package services

import (
	"errors"
	"math"
	"testing"

	"trip-fare-service/internal/domain"
)

func TestComputeFareRoundsToWholeUnits(t *testing.T) {
	cases := []struct {
		name     string
		distance float64
		rate     float64
		want     float64
	}{
		{"metro trip", 2.5, 15, 38},
		{"zero distance", 0, 15, 0},
		{"rounds down", 1.4, 10, 14},
		{"rounds half up", 1.45, 10, 15},
		{"long trip", 120.7, 15, 1811},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ComputeFare(tc.distance, tc.rate, domain.ModeMetro)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("ComputeFare(%v, %v) = %v, want %v", tc.distance, tc.rate, got, tc.want)
			}
		})
	}
}

func TestComputeFareDeterministic(t *testing.T) {
	first, err := ComputeFare(2.5, 15, domain.ModeBus)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 100; i++ {
		again, err := ComputeFare(2.5, 15, domain.ModeBus)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again != first {
			t.Fatalf("fare changed between calls: %v then %v", first, again)
		}
	}
}

func TestComputeFareModeDoesNotAffectFare(t *testing.T) {
	modes := []domain.TransportMode{domain.ModeTrain, domain.ModeMetro, domain.ModeBus, domain.ModeAuto}
	for _, mode := range modes {
		got, err := ComputeFare(2.5, 15, mode)
		if err != nil {
			t.Fatalf("mode %s: unexpected error: %v", mode, err)
		}
		if got != 38 {
			t.Fatalf("mode %s: fare = %v, want 38", mode, got)
		}
	}
}

func TestComputeFareRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name     string
		distance float64
		rate     float64
		mode     domain.TransportMode
	}{
		{"unknown mode", 2.5, 15, "hovercraft"},
		{"negative distance", -1, 15, domain.ModeBus},
		{"nan distance", math.NaN(), 15, domain.ModeBus},
		{"infinite distance", math.Inf(1), 15, domain.ModeBus},
		{"zero rate", 2.5, 0, domain.ModeBus},
		{"negative rate", 2.5, -15, domain.ModeBus},
		{"nan rate", 2.5, math.NaN(), domain.ModeBus},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComputeFare(tc.distance, tc.rate, tc.mode)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}
