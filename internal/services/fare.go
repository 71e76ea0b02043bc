package services

import (
	"fmt"
	"math"

	"trip-fare-service/internal/domain"
)

// ComputeFare derives the fare for a trip: round(distanceKm * ratePerKm),
// half-up at whole currency units. It is pure: identical inputs always
// yield identical output. The transport mode is validated but does not
// enter the formula; rates arrive per request.
func ComputeFare(distanceKm, ratePerKm float64, mode domain.TransportMode) (float64, error) {
	if !mode.IsValid() {
		return 0, fmt.Errorf("compute fare: transport mode %q: %w", mode, domain.ErrInvalidInput)
	}

	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) || distanceKm < 0 {
		return 0, fmt.Errorf("compute fare: distance must be a finite non-negative number: %w", domain.ErrInvalidInput)
	}

	if math.IsNaN(ratePerKm) || math.IsInf(ratePerKm, 0) || ratePerKm <= 0 {
		return 0, fmt.Errorf("compute fare: rate must be a finite positive number: %w", domain.ErrInvalidInput)
	}

	return math.Round(distanceKm * ratePerKm), nil
}
