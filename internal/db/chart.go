package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"melonrank/internal/models"
)

// scanChartEntries scans ranking, title, artist rows into chart entries.
func scanChartEntries(rows pgx.Rows) ([]models.ChartEntry, error) {
	defer rows.Close()

	entries := []models.ChartEntry{}
	for rows.Next() {
		var e models.ChartEntry
		if err := rows.Scan(&e.Rank, &e.Title, &e.Artist); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ReplaceChart discards the stored snapshot and inserts entries in a single
// transaction, so readers see either the old or the new snapshot. When two
// entries share a rank the later one wins.
func (d *DB) ReplaceChart(ctx context.Context, entries []models.ChartEntry) error {
	for _, e := range entries {
		if e.Rank < 1 {
			return fmt.Errorf("rank %d: %w", e.Rank, ErrInvalidRank)
		}
	}

	tx, err := d.Pool.Begin(ctx)
	if err != nil {
		return Wrap("replace chart", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM melon_chart_data`); err != nil {
		return Wrap("replace chart", err)
	}

	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(`
			INSERT INTO melon_chart_data (ranking, title, artist)
			VALUES ($1, $2, $3)
			ON CONFLICT (ranking) DO UPDATE
			SET title = EXCLUDED.title, artist = EXCLUDED.artist
		`, e.Rank, e.Title, e.Artist)
	}
	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return Wrap("replace chart", err)
		}
	}

	return Wrap("replace chart", tx.Commit(ctx))
}

// ListChart returns the current snapshot ordered by rank.
func (d *DB) ListChart(ctx context.Context) ([]models.ChartEntry, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT ranking, title, artist
		FROM melon_chart_data
		ORDER BY ranking ASC
	`)
	if err != nil {
		return nil, Wrap("list chart", err)
	}
	entries, err := scanChartEntries(rows)
	return entries, Wrap("list chart", err)
}

// SearchChartByArtist returns entries whose artist contains substring,
// ordered by rank. Matching is literal and case-sensitive; an empty
// substring matches nothing.
func (d *DB) SearchChartByArtist(ctx context.Context, substring string) ([]models.ChartEntry, error) {
	if substring == "" {
		return []models.ChartEntry{}, nil
	}

	rows, err := d.Pool.Query(ctx, `
		SELECT ranking, title, artist
		FROM melon_chart_data
		WHERE strpos(artist, $1) > 0
		ORDER BY ranking ASC
	`, substring)
	if err != nil {
		return nil, Wrap("search chart by artist", err)
	}
	entries, err := scanChartEntries(rows)
	return entries, Wrap("search chart by artist", err)
}
