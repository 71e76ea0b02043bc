package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Fatalf("port = %q, want 8080", cfg.Port)
	}
	if cfg.Geocoder != "nominatim" {
		t.Fatalf("geocoder = %q, want nominatim", cfg.Geocoder)
	}
	if cfg.Router != "osrm" {
		t.Fatalf("router = %q, want osrm", cfg.Router)
	}
	if cfg.GeocodeCache != "off" {
		t.Fatalf("geocode cache = %q, want off", cfg.GeocodeCache)
	}
	if cfg.GeocodeCacheTTL != 24*time.Hour {
		t.Fatalf("cache ttl = %v, want 24h", cfg.GeocodeCacheTTL)
	}
	if cfg.DefaultRatePerKm != 15 {
		t.Fatalf("default rate = %v, want 15", cfg.DefaultRatePerKm)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GEOCODE_CACHE", "redis")
	t.Setenv("GEOCODE_CACHE_TTL", "1h")
	t.Setenv("GEOCODE_TIMEOUT", "3s")
	t.Setenv("DEFAULT_RATE_PER_KM", "22.5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "9090" {
		t.Fatalf("port = %q, want 9090", cfg.Port)
	}
	if cfg.GeocodeCache != "redis" {
		t.Fatalf("geocode cache = %q, want redis", cfg.GeocodeCache)
	}
	if cfg.GeocodeCacheTTL != time.Hour {
		t.Fatalf("cache ttl = %v, want 1h", cfg.GeocodeCacheTTL)
	}
	if cfg.GeocodeTimeout != 3*time.Second {
		t.Fatalf("geocode timeout = %v, want 3s", cfg.GeocodeTimeout)
	}
	if cfg.DefaultRatePerKm != 22.5 {
		t.Fatalf("default rate = %v, want 22.5", cfg.DefaultRatePerKm)
	}
}

func TestLoadRejectsUnknownEnums(t *testing.T) {
	t.Setenv("GEOCODER", "carrier-pigeon")
	if _, err := Load(); err == nil {
		t.Fatal("expected an error for unknown GEOCODER")
	}
}

func TestLoadRejectsUnknownCache(t *testing.T) {
	t.Setenv("GEOCODE_CACHE", "memcached")
	if _, err := Load(); err == nil {
		t.Fatal("expected an error for unknown GEOCODE_CACHE")
	}
}

func TestLoadGoogleBackendRequiresKey(t *testing.T) {
	t.Setenv("GEOCODER", "google")
	t.Setenv("GOOGLE_MAPS_API_KEY", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected an error when GOOGLE_MAPS_API_KEY is missing")
	}
}

func TestLoadPostgresCacheRequiresDatabaseURL(t *testing.T) {
	t.Setenv("GEOCODE_CACHE", "postgres")
	t.Setenv("DATABASE_URL", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected an error when DATABASE_URL is missing")
	}
}
