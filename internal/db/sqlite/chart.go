package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"melonrank/internal/db"
	"melonrank/internal/models"
)

func scanChartEntries(rows *sql.Rows) ([]models.ChartEntry, error) {
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

// ReplaceChart swaps the stored snapshot for entries in one transaction.
// Duplicate ranks keep the last entry.
func (s *DB) ReplaceChart(ctx context.Context, entries []models.ChartEntry) error {
	for _, e := range entries {
		if e.Rank < 1 {
			return fmt.Errorf("rank %d: %w", e.Rank, db.ErrInvalidRank)
		}
	}

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return db.Wrap("replace chart", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM melon_chart_data`); err != nil {
		return db.Wrap("replace chart", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT OR REPLACE INTO melon_chart_data (ranking, title, artist)
	VALUES (?, ?, ?)
	`)
	if err != nil {
		return db.Wrap("replace chart", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.Rank, e.Title, e.Artist); err != nil {
			return db.Wrap("replace chart", err)
		}
	}

	return db.Wrap("replace chart", tx.Commit())
}

// ListChart returns the current snapshot ordered by rank.
func (s *DB) ListChart(ctx context.Context) ([]models.ChartEntry, error) {
	rows, err := s.conn.QueryContext(ctx, `
	SELECT ranking, title, artist FROM melon_chart_data ORDER BY ranking ASC
	`)
	if err != nil {
		return nil, db.Wrap("list chart", err)
	}
	entries, err := scanChartEntries(rows)
	return entries, db.Wrap("list chart", err)
}

// SearchChartByArtist returns entries whose artist contains substring.
// instr is case-sensitive and treats % and _ literally.
func (s *DB) SearchChartByArtist(ctx context.Context, substring string) ([]models.ChartEntry, error) {
	if substring == "" {
		return []models.ChartEntry{}, nil
	}

	rows, err := s.conn.QueryContext(ctx, `
	SELECT ranking, title, artist
	FROM melon_chart_data
	WHERE instr(artist, ?) > 0
	ORDER BY ranking ASC
	`, substring)
	if err != nil {
		return nil, db.Wrap("search chart by artist", err)
	}
	entries, err := scanChartEntries(rows)
	return entries, db.Wrap("search chart by artist", err)
}
