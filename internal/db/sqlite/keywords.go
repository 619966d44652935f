package sqlite

import (
	"context"
	"time"

	"melonrank/internal/db"
	"melonrank/internal/models"
)

// RecordSearch increments the count for keyword, inserting it on first use.
func (s *DB) RecordSearch(ctx context.Context, keyword string) error {
	if keyword == "" {
		return db.ErrEmptyKeyword
	}
	_, err := s.conn.ExecContext(ctx, `
	INSERT INTO search_count (keyword, count, created_at, updated_at)
	VALUES (?, 1, ?, ?)
	ON CONFLICT(keyword) DO UPDATE SET
		count = count + 1,
		updated_at = excluded.updated_at
	`, keyword, time.Now().UTC(), time.Now().UTC())
	return db.Wrap("record search", err)
}

// TopKeywords returns up to limit keywords by count descending, then keyword.
func (s *DB) TopKeywords(ctx context.Context, limit int) ([]models.KeywordCount, error) {
	if limit <= 0 {
		return []models.KeywordCount{}, nil
	}

	rows, err := s.conn.QueryContext(ctx, `
	SELECT keyword, count, updated_at
	FROM search_count
	ORDER BY count DESC, keyword ASC
	LIMIT ?
	`, limit)
	if err != nil {
		return nil, db.Wrap("top keywords", err)
	}
	defer rows.Close()

	keywords := []models.KeywordCount{}
	for rows.Next() {
		var k models.KeywordCount
		if err := rows.Scan(&k.Keyword, &k.Count, &k.UpdatedAt); err != nil {
			return nil, db.Wrap("top keywords", err)
		}
		keywords = append(keywords, k)
	}
	return keywords, db.Wrap("top keywords", rows.Err())
}
