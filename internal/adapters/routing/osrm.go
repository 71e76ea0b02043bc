package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"trip-fare-service/internal/domain"
	"trip-fare-service/internal/ports"
)

// OSRM requests routes from an OSRM /route/v1 endpoint. Each submitted
// request runs its HTTP exchange in its own goroutine and delivers the
// outcome through the done callback, matching the engine contract's
// event-driven completion.
type OSRM struct {
	session *http.Client
	baseURL string
	profile string
}

func NewOSRM(baseURL string) *OSRM {
	return &OSRM{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		profile: "driving",
	}
}

type osrmRoute struct {
	Distance *float64 `json:"distance"`
	Duration *float64 `json:"duration"`
}

type osrmResponse struct {
	Code   string      `json:"code"`
	Routes []osrmRoute `json:"routes"`
}

func (o *OSRM) Submit(ctx context.Context, origin, destination domain.Coordinate, done func([]ports.RouteCandidate, error)) {
	go func() {
		candidates, err := o.fetch(ctx, origin, destination)
		done(candidates, err)
	}()
}

func (o *OSRM) fetch(ctx context.Context, origin, destination domain.Coordinate) ([]ports.RouteCandidate, error) {
	// OSRM takes the waypoint path as lon,lat pairs.
	endpoint := fmt.Sprintf(
		"%s/route/v1/%s/%s,%s;%s,%s",
		o.baseURL, o.profile,
		formatCoord(origin.Lon), formatCoord(origin.Lat),
		formatCoord(destination.Lon), formatCoord(destination.Lat),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("osrm: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	q := req.URL.Query()
	q.Set("alternatives", "false")
	q.Set("overview", "false")
	req.URL.RawQuery = q.Encode()

	resp, err := o.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("osrm: %s: %w", err, domain.ErrServiceUnavailable)
	}
	defer resp.Body.Close()

	// OSRM reports "no connectivity" as a 400 with code NoRoute, so bad
	// requests are decoded rather than rejected on status alone.
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusBadRequest {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf(
			"osrm: unexpected status %d: %s: %w",
			resp.StatusCode, strings.TrimSpace(string(b)), domain.ErrServiceUnavailable,
		)
	}

	var decoded osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("osrm: decode response: %s: %w", err, domain.ErrParse)
	}

	switch decoded.Code {
	case "Ok":
	case "NoRoute":
		return nil, nil
	default:
		return nil, fmt.Errorf("osrm: service error code %q: %w", decoded.Code, domain.ErrServiceUnavailable)
	}

	candidates := make([]ports.RouteCandidate, 0, len(decoded.Routes))
	for _, rt := range decoded.Routes {
		if rt.Distance == nil || rt.Duration == nil {
			return nil, fmt.Errorf("osrm: route summary missing distance/duration: %w", domain.ErrParse)
		}
		candidates = append(candidates, ports.RouteCandidate{
			DistanceMeters:  *rt.Distance,
			DurationSeconds: *rt.Duration,
		})
	}

	return candidates, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
