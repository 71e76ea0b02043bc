package routing

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"trip-fare-service/internal/domain"
	"trip-fare-service/internal/ports"
)

// GoogleEngine requests driving routes from the Google Maps Directions
// API. It satisfies the same callback completion contract as OSRM.
type GoogleEngine struct {
	client *maps.Client
}

// NewGoogleEngine creates a Directions-backed engine with the given API key.
func NewGoogleEngine(apiKey string) (*GoogleEngine, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GoogleEngine{client: client}, nil
}

func (g *GoogleEngine) Submit(ctx context.Context, origin, destination domain.Coordinate, done func([]ports.RouteCandidate, error)) {
	go func() {
		candidates, err := g.fetch(ctx, origin, destination)
		done(candidates, err)
	}()
}

func (g *GoogleEngine) fetch(ctx context.Context, origin, destination domain.Coordinate) ([]ports.RouteCandidate, error) {
	r := &maps.DirectionsRequest{
		Origin:      fmt.Sprintf("%f,%f", origin.Lat, origin.Lon),
		Destination: fmt.Sprintf("%f,%f", destination.Lat, destination.Lon),
		Mode:        maps.TravelModeDriving,
	}

	routes, _, err := g.client.Directions(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("maps api error: %s: %w", err, domain.ErrServiceUnavailable)
	}

	candidates := make([]ports.RouteCandidate, 0, len(routes))
	for _, rt := range routes {
		var meters, seconds float64
		for _, leg := range rt.Legs {
			meters += float64(leg.Distance.Meters)
			seconds += leg.Duration.Seconds()
		}
		candidates = append(candidates, ports.RouteCandidate{
			DistanceMeters:  meters,
			DurationSeconds: seconds,
		})
	}

	return candidates, nil
}
