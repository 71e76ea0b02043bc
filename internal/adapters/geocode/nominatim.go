package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"trip-fare-service/internal/domain"
	"trip-fare-service/internal/platform/obs"
)

type nominatimCandidate struct {
	Lat flexFloat `json:"lat"`
	Lon flexFloat `json:"lon"`
}

// Nominatim resolves free-text place queries against a Nominatim-compatible
// geocoding endpoint (/search). Exactly one outbound call is made per
// Resolve; failures surface immediately without internal retries, and
// results are not cached here (see the cache-wrapping adapter).
type Nominatim struct {
	session *http.Client
	baseURL string
}

func NewNominatim(baseURL string) *Nominatim {
	return &Nominatim{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Resolve looks up the query and returns the first candidate's coordinate.
func (n *Nominatim) Resolve(ctx context.Context, query string) (_ domain.Coordinate, err error) {
	defer obs.Time(ctx, "nominatim.Resolve")(&err)

	if strings.TrimSpace(query) == "" {
		return domain.Coordinate{}, fmt.Errorf("geocode: query must be non-empty: %w", domain.ErrInvalidInput)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"/search", nil)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("geocode %q: create request: %w", query, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "trip-fare-service")

	q := req.URL.Query()
	q.Set("format", "json")
	q.Set("q", query)
	q.Set("limit", "1")
	req.URL.RawQuery = q.Encode()

	resp, err := n.session.Do(req)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("geocode %q: %s: %w", query, err, domain.ErrServiceUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return domain.Coordinate{}, fmt.Errorf(
			"geocode %q: unexpected status %d: %s: %w",
			query, resp.StatusCode, strings.TrimSpace(string(b)), domain.ErrServiceUnavailable,
		)
	}

	var candidates []nominatimCandidate
	if err := json.NewDecoder(resp.Body).Decode(&candidates); err != nil {
		return domain.Coordinate{}, fmt.Errorf("geocode %q: decode response: %s: %w", query, err, domain.ErrParse)
	}

	if len(candidates) == 0 {
		return domain.Coordinate{}, fmt.Errorf("geocode %q: no candidates: %w", query, domain.ErrNotFound)
	}

	first := candidates[0]
	if !first.Lat.set || !first.Lon.set {
		return domain.Coordinate{}, fmt.Errorf("geocode %q: candidate missing lat/lon: %w", query, domain.ErrParse)
	}

	coord := domain.Coordinate{Lat: first.Lat.value, Lon: first.Lon.value}
	if !coord.IsFinite() {
		return domain.Coordinate{}, fmt.Errorf("geocode %q: candidate coordinate is not finite: %w", query, domain.ErrParse)
	}

	return coord, nil
}
