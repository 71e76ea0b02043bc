package cache

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"trip-fare-service/internal/domain"
)

func newTestSqliteCache(t *testing.T, ttl time.Duration) *SqliteGeocodeCache {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := InitSqliteSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return NewSqliteGeocodeCache(db, ttl)
}

func TestSqliteGeocodeCachePutGet(t *testing.T) {
	c := newTestSqliteCache(t, time.Hour)

	want := domain.Coordinate{Lat: 28.6315, Lon: 77.2167}
	if err := c.Put(context.Background(), "connaught place, delhi", want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err := c.Get(context.Background(), "connaught place, delhi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected a hit after Put")
	}
	if got != want {
		t.Fatalf("coordinate = %+v, want %+v", got, want)
	}
}

func TestSqliteGeocodeCacheMiss(t *testing.T) {
	c := newTestSqliteCache(t, time.Hour)

	_, ok, err := c.Get(context.Background(), "unknown")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected a miss on empty cache")
	}
}

func TestSqliteGeocodeCacheExpiredRowIsMiss(t *testing.T) {
	c := newTestSqliteCache(t, -time.Minute)

	if err := c.Put(context.Background(), "connaught place, delhi", domain.Coordinate{Lat: 28.6315, Lon: 77.2167}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, ok, err := c.Get(context.Background(), "connaught place, delhi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected an expired row to read as a miss")
	}
}

func TestSqliteGeocodeCachePutOverwrites(t *testing.T) {
	c := newTestSqliteCache(t, time.Hour)

	if err := c.Put(context.Background(), "k", domain.Coordinate{Lat: 1, Lon: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Put(context.Background(), "k", domain.Coordinate{Lat: 2, Lon: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err := c.Get(context.Background(), "k")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected a hit")
	}
	if got.Lat != 2 || got.Lon != 2 {
		t.Fatalf("coordinate = %+v, want {2 2}", got)
	}
}
