package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"trip-fare-service/internal/adapters/cache"
	"trip-fare-service/internal/adapters/geocode"
	"trip-fare-service/internal/adapters/routing"
	"trip-fare-service/internal/api"
	"trip-fare-service/internal/config"
	"trip-fare-service/internal/platform/db"
	"trip-fare-service/internal/platform/logger"
	"trip-fare-service/internal/ports"
	"trip-fare-service/internal/services"
)

// main is the application composition root.
// It wires concrete geocoding/routing adapters behind ports and starts the HTTP server.
func main() {
	envLoaded := godotenv.Load() == nil

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewNamed(cfg.AppEnv, "trip-fare-service")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	if !envLoaded {
		log.Info("no .env file found (using environment variables)")
	}

	// Geocoding backend.
	var geocoder ports.Geocoder
	switch cfg.Geocoder {
	case "google":
		geocoder, err = geocode.NewGoogle(cfg.GoogleMapsAPIKey)
		if err != nil {
			log.Fatal("google geocoder init failed", zap.Error(err))
		}
	default:
		geocoder = geocode.NewNominatim(cfg.NominatimBaseURL)
	}

	// Opt-in geocode cache: the resolver runs cache-free unless a backend
	// is configured.
	switch cfg.GeocodeCache {
	case "sqlite":
		sdb, err := db.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			log.Fatal("sqlite open failed", zap.Error(err))
		}
		defer sdb.Close()
		if err := cache.InitSqliteSchema(sdb); err != nil {
			log.Fatal("sqlite cache schema init failed", zap.Error(err))
		}
		geocoder = geocode.NewCached(geocoder, cache.NewSqliteGeocodeCache(sdb, cfg.GeocodeCacheTTL), log)
	case "postgres":
		pdb, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("postgres open failed", zap.Error(err))
		}
		defer pdb.Close()
		geocoder = geocode.NewCached(geocoder, cache.NewSQLGeocodeCache(pdb, cfg.GeocodeCacheTTL), log)
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer client.Close()
		geocoder = geocode.NewCached(geocoder, cache.NewRedisGeocodeCache(client, cfg.GeocodeCacheTTL), log)
	}

	// Routing engine behind the one-shot completion resolver.
	var engine routing.RouteEngine
	switch cfg.Router {
	case "google":
		engine, err = routing.NewGoogleEngine(cfg.GoogleMapsAPIKey)
		if err != nil {
			log.Fatal("google routing init failed", zap.Error(err))
		}
	default:
		engine = routing.NewOSRM(cfg.OSRMBaseURL)
	}
	routeProvider := routing.NewResolver(engine)

	overlay := services.NewOverlay()
	pipeline := services.NewPipeline(geocoder, routeProvider, overlay, log, cfg.GeocodeTimeout, cfg.RouteTimeout)

	router := api.NewRouter(pipeline, overlay, cfg.DefaultRatePerKm, log)

	// Timeouts are tuned for cold external lookups (geocode + route latency).
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Info("server listening",
		zap.String("addr", srv.Addr),
		zap.String("geocoder", cfg.Geocoder),
		zap.String("router", cfg.Router),
		zap.String("geocode_cache", cfg.GeocodeCache),
	)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("server stopped", zap.Error(err))
	}
}
