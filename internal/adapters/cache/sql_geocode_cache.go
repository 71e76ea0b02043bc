package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"trip-fare-service/internal/domain"
	"trip-fare-service/internal/platform/obs"
)

// SQLGeocodeCache is a Postgres-backed geocode cache with TTL expiry.
// Expiry is evaluated server-side so readers never observe stale rows.
type SQLGeocodeCache struct {
	DB  *sql.DB
	TTL time.Duration
}

func NewSQLGeocodeCache(db *sql.DB, ttl time.Duration) *SQLGeocodeCache {
	return &SQLGeocodeCache{DB: db, TTL: ttl}
}

// InitSchema creates the cache table when missing.
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS geocode_cache (
        query      TEXT PRIMARY KEY,
        lat        DOUBLE PRECISION NOT NULL,
        lon        DOUBLE PRECISION NOT NULL,
        expires_at TIMESTAMPTZ NOT NULL
    );
	`)
	if err != nil {
		return fmt.Errorf("init geocode cache schema: %w", err)
	}
	return nil
}

// Get fetches a live cached coordinate for the key.
func (s *SQLGeocodeCache) Get(ctx context.Context, key string) (_ domain.Coordinate, _ bool, err error) {
	defer obs.Time(ctx, "geocode.cache.Get")(&err)

	if s.DB == nil {
		return domain.Coordinate{}, false, errors.New("geocode cache: db is nil")
	}

	row := s.DB.QueryRowContext(ctx, `
	SELECT lat, lon
    FROM geocode_cache
    WHERE query = $1 AND expires_at > NOW();
	`, key)

	var lat, lon float64
	if err := row.Scan(&lat, &lon); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Coordinate{}, false, nil
		}
		return domain.Coordinate{}, false, fmt.Errorf("get geocode cache: scan row: %w", err)
	}

	return domain.Coordinate{Lat: lat, Lon: lon}, true, nil
}

// Put stores the coordinate under the key with a fresh TTL.
func (s *SQLGeocodeCache) Put(ctx context.Context, key string, coord domain.Coordinate) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("insert geocode cache: empty query key")
	}

	_, err := s.DB.ExecContext(ctx, `
	INSERT INTO geocode_cache (query, lat, lon, expires_at)
    VALUES ($1, $2, $3, NOW() + $4 * interval '1 second')
	ON CONFLICT (query) DO UPDATE
	SET lat = EXCLUDED.lat,
		lon = EXCLUDED.lon,
		expires_at = EXCLUDED.expires_at;
	`, key, coord.Lat, coord.Lon, int64(s.TTL.Seconds()))
	if err != nil {
		return fmt.Errorf("insert geocode cache key=%q: %w", key, err)
	}

	return nil
}
