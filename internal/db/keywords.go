package db

import (
	"context"

	"melonrank/internal/models"
)

// RecordSearch increments the search count for keyword, inserting it with a
// count of 1 on first use. The upsert is a single statement so concurrent
// calls never lose an increment.
func (d *DB) RecordSearch(ctx context.Context, keyword string) error {
	if keyword == "" {
		return ErrEmptyKeyword
	}
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO search_count (keyword, count, created_at, updated_at)
		VALUES ($1, 1, NOW(), NOW())
		ON CONFLICT (keyword) DO UPDATE
		SET count = search_count.count + 1, updated_at = NOW()
	`, keyword)
	return Wrap("record search", err)
}

// TopKeywords returns up to limit keywords ordered by count, most searched
// first. Equal counts are ordered by keyword.
func (d *DB) TopKeywords(ctx context.Context, limit int) ([]models.KeywordCount, error) {
	if limit <= 0 {
		return []models.KeywordCount{}, nil
	}

	rows, err := d.Pool.Query(ctx, `
		SELECT keyword, count, updated_at
		FROM search_count
		ORDER BY count DESC, keyword ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, Wrap("top keywords", err)
	}
	defer rows.Close()

	keywords := []models.KeywordCount{}
	for rows.Next() {
		var k models.KeywordCount
		if err := rows.Scan(&k.Keyword, &k.Count, &k.UpdatedAt); err != nil {
			return nil, Wrap("top keywords", err)
		}
		keywords = append(keywords, k)
	}
	return keywords, Wrap("top keywords", rows.Err())
}
