// Package ranking derives keyword and artist rankings from the stores.
package ranking

import (
	"context"
	"sort"

	"melonrank/internal/models"
	"melonrank/internal/store"
)

// Engine computes rankings on every call; it holds no state of its own.
type Engine struct {
	keywords store.KeywordCounter
	chart    store.ChartStore
}

// NewEngine creates a ranking engine over the given stores.
func NewEngine(keywords store.KeywordCounter, chart store.ChartStore) *Engine {
	return &Engine{keywords: keywords, chart: chart}
}

// TopKeywords returns the most searched keywords.
func (e *Engine) TopKeywords(ctx context.Context, limit int) ([]models.KeywordCount, error) {
	return e.keywords.TopKeywords(ctx, limit)
}

// ArtistSongCounts ranks artists by number of songs in the current chart.
// The snapshot is read with a single query so a concurrent refresh cannot
// mix rows from two snapshots.
func (e *Engine) ArtistSongCounts(ctx context.Context, limit int) ([]models.ArtistCount, error) {
	entries, err := e.chart.ListChart(ctx)
	if err != nil {
		return nil, err
	}
	return CountArtists(entries, limit), nil
}

// CountArtists groups entries by artist and orders the groups by song count
// descending, then artist ascending. At most limit groups are returned.
func CountArtists(entries []models.ChartEntry, limit int) []models.ArtistCount {
	if limit <= 0 {
		return []models.ArtistCount{}
	}

	counts := make(map[string]int)
	for _, e := range entries {
		counts[e.Artist]++
	}

	ranked := make([]models.ArtistCount, 0, len(counts))
	for artist, n := range counts {
		ranked = append(ranked, models.ArtistCount{Artist: artist, SongCount: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].SongCount != ranked[j].SongCount {
			return ranked[i].SongCount > ranked[j].SongCount
		}
		return ranked[i].Artist < ranked[j].Artist
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
