// Package store defines the persistence contracts used by the handlers,
// ranking and refresh jobs, and opens a backend from a database URL.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"melonrank/internal/db"
	"melonrank/internal/db/sqlite"
	"melonrank/internal/models"
)

// KeywordCounter persists how often each search keyword was submitted.
type KeywordCounter interface {
	RecordSearch(ctx context.Context, keyword string) error
	TopKeywords(ctx context.Context, limit int) ([]models.KeywordCount, error)
}

// ChartStore holds the single current chart snapshot.
type ChartStore interface {
	ReplaceChart(ctx context.Context, entries []models.ChartEntry) error
	ListChart(ctx context.Context) ([]models.ChartEntry, error)
	SearchChartByArtist(ctx context.Context, substring string) ([]models.ChartEntry, error)
}

// Store is a backend that owns both tables.
type Store interface {
	KeywordCounter
	ChartStore
	Ping(ctx context.Context) error
	Close() error
}

var (
	_ Store = (*db.DB)(nil)
	_ Store = (*sqlite.DB)(nil)
)

// Open connects to the backend named by databaseURL. postgres:// and
// postgresql:// URLs use Postgres with migrations; sqlite:// URLs and bare
// paths use an embedded SQLite file.
func Open(ctx context.Context, databaseURL string) (Store, error) {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		database, err := db.New(ctx, databaseURL)
		if err != nil {
			return nil, err
		}
		if err := database.RunMigrations(databaseURL); err != nil {
			database.Close()
			return nil, err
		}
		slog.Info("opened postgres store")
		return database, nil
	case databaseURL == "":
		return nil, fmt.Errorf("database URL is empty")
	default:
		path := strings.TrimPrefix(databaseURL, "sqlite://")
		database, err := sqlite.Open(ctx, path)
		if err != nil {
			return nil, err
		}
		slog.Info("opened sqlite store", "path", path)
		return database, nil
	}
}
