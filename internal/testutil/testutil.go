// Package testutil provides test utilities and helpers.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"melonrank/internal/db"
	"melonrank/internal/db/sqlite"
	"melonrank/internal/models"
	"melonrank/internal/store"
)

// TestDB connects to TEST_DATABASE_URL, runs migrations and returns a
// cleanup function. The test is skipped when the variable is unset.
func TestDB(t *testing.T) (*db.DB, func()) {
	t.Helper()

	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	database, err := db.New(ctx, connString)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := database.RunMigrations(connString); err != nil {
		database.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	cleanup := func() {
		cleanupTestData(ctx, database.Pool)
		database.Close()
	}

	return database, cleanup
}

// cleanupTestData removes all test data from the database.
func cleanupTestData(ctx context.Context, pool *pgxpool.Pool) {
	pool.Exec(ctx, "DELETE FROM search_count")
	pool.Exec(ctx, "DELETE FROM melon_chart_data")
}

// SQLiteStore opens a fresh SQLite store in a temporary directory. It is
// closed when the test ends.
func SQLiteStore(t *testing.T) *sqlite.DB {
	t.Helper()

	s, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open sqlite store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// SeedChart replaces the chart snapshot with entries.
func SeedChart(t *testing.T, s store.ChartStore, entries ...models.ChartEntry) {
	t.Helper()

	if err := s.ReplaceChart(context.Background(), entries); err != nil {
		t.Fatalf("failed to seed chart: %v", err)
	}
}

// RecordSearches records keyword n times.
func RecordSearches(t *testing.T, s store.KeywordCounter, keyword string, n int) {
	t.Helper()

	for i := 0; i < n; i++ {
		if err := s.RecordSearch(context.Background(), keyword); err != nil {
			t.Fatalf("failed to record search %q: %v", keyword, err)
		}
	}
}
