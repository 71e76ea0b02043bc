package routing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"trip-fare-service/internal/domain"
)

func resolveVia(t *testing.T, server *httptest.Server) (domain.RouteResult, error) {
	t.Helper()
	r := NewResolver(NewOSRM(server.URL))
	return r.ResolveRoute(context.Background(), testOrigin, testDestination)
}

func TestOSRMResolvesRoute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/route/v1/driving/") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		// lon,lat ordering in the waypoint path.
		if !strings.Contains(r.URL.Path, "77.216700,28.631500;77.229500,28.612900") {
			t.Errorf("unexpected waypoints in %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code":"Ok","routes":[{"distance":2500.0,"duration":420.0}]}`))
	}))
	defer server.Close()

	got, err := resolveVia(t, server)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.DistanceKm != 2.5 {
		t.Fatalf("distance = %v km, want 2.5", got.DistanceKm)
	}
	if got.DurationSeconds != 420 {
		t.Fatalf("duration = %v s, want 420", got.DurationSeconds)
	}
}

func TestOSRMNoRoute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":"NoRoute","routes":[]}`))
	}))
	defer server.Close()

	_, err := resolveVia(t, server)
	if !errors.Is(err, domain.ErrNoRouteFound) {
		t.Fatalf("expected ErrNoRouteFound, got %v", err)
	}
}

func TestOSRMMissingSummaryFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code":"Ok","routes":[{"duration":420.0}]}`))
	}))
	defer server.Close()

	_, err := resolveVia(t, server)
	if !errors.Is(err, domain.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestOSRMServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := resolveVia(t, server)
	if !errors.Is(err, domain.ErrServiceUnavailable) {
		t.Fatalf("expected ErrServiceUnavailable, got %v", err)
	}
}

func TestOSRMUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := resolveVia(t, server)
	if !errors.Is(err, domain.ErrServiceUnavailable) {
		t.Fatalf("expected ErrServiceUnavailable, got %v", err)
	}
}

func TestOSRMMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code": `))
	}))
	defer server.Close()

	_, err := resolveVia(t, server)
	if !errors.Is(err, domain.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}
