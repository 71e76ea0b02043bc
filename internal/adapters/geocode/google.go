package geocode

import (
	"context"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"

	"trip-fare-service/internal/domain"
	"trip-fare-service/internal/platform/obs"
)

// Google resolves place queries through the Google Maps Geocoding API.
type Google struct {
	client *maps.Client
}

// NewGoogle creates a Google geocoder with the given API key.
func NewGoogle(apiKey string) (*Google, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &Google{client: client}, nil
}

// Resolve looks up the query and returns the first result's location.
func (g *Google) Resolve(ctx context.Context, query string) (_ domain.Coordinate, err error) {
	defer obs.Time(ctx, "google.Resolve")(&err)

	if strings.TrimSpace(query) == "" {
		return domain.Coordinate{}, fmt.Errorf("geocode: query must be non-empty: %w", domain.ErrInvalidInput)
	}

	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: query})
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("geocode %q: maps api error: %s: %w", query, err, domain.ErrServiceUnavailable)
	}

	if len(results) == 0 {
		return domain.Coordinate{}, fmt.Errorf("geocode %q: no candidates: %w", query, domain.ErrNotFound)
	}

	loc := results[0].Geometry.Location
	coord := domain.Coordinate{Lat: loc.Lat, Lon: loc.Lng}
	if !coord.IsFinite() {
		return domain.Coordinate{}, fmt.Errorf("geocode %q: candidate coordinate is not finite: %w", query, domain.ErrParse)
	}

	return coord, nil
}
