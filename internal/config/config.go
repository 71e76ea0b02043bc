package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime settings for the service. Values come from
// environment variables, optionally loaded from a .env file by the
// composition root.
type Config struct {
	Port   string
	AppEnv string

	// Geocoder selects the geocoding backend: "nominatim" or "google".
	Geocoder         string
	NominatimBaseURL string

	// Router selects the routing engine: "osrm" or "google".
	Router      string
	OSRMBaseURL string

	GoogleMapsAPIKey string

	// GeocodeCache selects the opt-in cache backend:
	// "off" (default), "sqlite", "postgres" or "redis".
	GeocodeCache    string
	GeocodeCacheTTL time.Duration
	SQLitePath      string
	DatabaseURL     string
	RedisAddr       string

	GeocodeTimeout time.Duration
	RouteTimeout   time.Duration

	DefaultRatePerKm float64
}

// Load reads configuration from environment variables, applying defaults
// suitable for a local run against the public OSM services.
func Load() (Config, error) {
	cfg := Config{
		Port:             Get("PORT", "8080"),
		AppEnv:           Get("APP_ENV", "development"),
		Geocoder:         Get("GEOCODER", "nominatim"),
		NominatimBaseURL: Get("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org"),
		Router:           Get("ROUTER", "osrm"),
		OSRMBaseURL:      Get("OSRM_BASE_URL", "https://router.project-osrm.org"),
		GoogleMapsAPIKey: os.Getenv("GOOGLE_MAPS_API_KEY"),
		GeocodeCache:     Get("GEOCODE_CACHE", "off"),
		GeocodeCacheTTL:  getDuration("GEOCODE_CACHE_TTL", 24*time.Hour),
		SQLitePath:       Get("DB_PATH", "data/app.db"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RedisAddr:        Get("REDIS_ADDR", "localhost:6379"),
		GeocodeTimeout:   getDuration("GEOCODE_TIMEOUT", 10*time.Second),
		RouteTimeout:     getDuration("ROUTE_TIMEOUT", 10*time.Second),
		DefaultRatePerKm: getFloat("DEFAULT_RATE_PER_KM", 15),
	}

	switch cfg.Geocoder {
	case "nominatim", "google":
	default:
		return Config{}, fmt.Errorf("load config: unknown GEOCODER %q", cfg.Geocoder)
	}

	switch cfg.Router {
	case "osrm", "google":
	default:
		return Config{}, fmt.Errorf("load config: unknown ROUTER %q", cfg.Router)
	}

	switch cfg.GeocodeCache {
	case "off", "sqlite", "postgres", "redis":
	default:
		return Config{}, fmt.Errorf("load config: unknown GEOCODE_CACHE %q", cfg.GeocodeCache)
	}

	if cfg.Geocoder == "google" || cfg.Router == "google" {
		if strings.TrimSpace(cfg.GoogleMapsAPIKey) == "" {
			return Config{}, fmt.Errorf("load config: GOOGLE_MAPS_API_KEY is required for the google backend")
		}
	}

	if cfg.GeocodeCache == "postgres" && strings.TrimSpace(cfg.DatabaseURL) == "" {
		return Config{}, fmt.Errorf("load config: DATABASE_URL is required for GEOCODE_CACHE=postgres")
	}

	if cfg.DefaultRatePerKm <= 0 {
		return Config{}, fmt.Errorf("load config: DEFAULT_RATE_PER_KM must be positive")
	}

	return cfg, nil
}

// Get returns the environment variable value or the fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
