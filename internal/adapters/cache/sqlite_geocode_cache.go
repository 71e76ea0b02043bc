package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"trip-fare-service/internal/domain"
)

// SQLite backed geocode cache with TTL expiry. Query keys are expected to
// be consistent (e.g., normalized) by the caller. Expired rows count as
// misses and are overwritten on the next Put.
type SqliteGeocodeCache struct {
	DB  *sql.DB
	TTL time.Duration
}

func NewSqliteGeocodeCache(db *sql.DB, ttl time.Duration) *SqliteGeocodeCache {
	return &SqliteGeocodeCache{DB: db, TTL: ttl}
}

// InitSqliteSchema creates the cache table when missing.
func InitSqliteSchema(db *sql.DB) error {
	_, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS geocode_cache (
        query      TEXT PRIMARY KEY,
        lat        REAL NOT NULL,
        lon        REAL NOT NULL,
        expires_at INTEGER NOT NULL
    );
	`)
	if err != nil {
		return fmt.Errorf("init geocode cache schema: %w", err)
	}
	return nil
}

// Get fetches a live cached coordinate for the key.
func (s *SqliteGeocodeCache) Get(ctx context.Context, key string) (domain.Coordinate, bool, error) {
	if s.DB == nil {
		return domain.Coordinate{}, false, errors.New("geocode cache: db is nil")
	}

	row := s.DB.QueryRowContext(ctx, `
	SELECT lat, lon, expires_at
    FROM geocode_cache
    WHERE query = ?;
	`, key)

	var lat, lon float64
	var expiresAt int64
	if err := row.Scan(&lat, &lon, &expiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Coordinate{}, false, nil
		}
		return domain.Coordinate{}, false, fmt.Errorf("get geocode cache: scan row: %w", err)
	}

	if time.Now().Unix() >= expiresAt {
		return domain.Coordinate{}, false, nil
	}

	return domain.Coordinate{Lat: lat, Lon: lon}, true, nil
}

// Put stores the coordinate under the key with a fresh TTL.
func (s *SqliteGeocodeCache) Put(ctx context.Context, key string, coord domain.Coordinate) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("insert geocode cache: empty query key")
	}

	expiresAt := time.Now().Add(s.TTL).Unix()
	_, err := s.DB.ExecContext(ctx, `
	INSERT OR REPLACE INTO geocode_cache (query, lat, lon, expires_at)
    VALUES (?, ?, ?, ?);
	`, key, coord.Lat, coord.Lon, expiresAt)
	if err != nil {
		return fmt.Errorf("insert geocode cache key=%q: %w", key, err)
	}

	return nil
}
