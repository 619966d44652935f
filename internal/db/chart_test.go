package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"

	"melonrank/internal/models"
)

func TestReplaceChart_RoundTrip(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	old := []models.ChartEntry{{Rank: 1, Title: "Old", Artist: "Z"}, {Rank: 50, Title: "Gone", Artist: "Z"}}
	if err := db.ReplaceChart(ctx, old); err != nil {
		t.Fatalf("ReplaceChart() error = %v", err)
	}

	next := []models.ChartEntry{
		{Rank: 3, Title: "T3", Artist: "Y"},
		{Rank: 1, Title: "T1", Artist: "X"},
		{Rank: 2, Title: "T2", Artist: "X"},
	}
	if err := db.ReplaceChart(ctx, next); err != nil {
		t.Fatalf("ReplaceChart() error = %v", err)
	}

	got, err := db.ListChart(ctx)
	if err != nil {
		t.Fatalf("ListChart() error = %v", err)
	}
	want := []models.ChartEntry{
		{Rank: 1, Title: "T1", Artist: "X"},
		{Rank: 2, Title: "T2", Artist: "X"},
		{Rank: 3, Title: "T3", Artist: "Y"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListChart() = %+v, want %+v", got, want)
	}
}

func TestReplaceChart_Empty(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	if err := db.ReplaceChart(ctx, []models.ChartEntry{{Rank: 1, Title: "A", Artist: "X"}}); err != nil {
		t.Fatalf("ReplaceChart() error = %v", err)
	}
	if err := db.ReplaceChart(ctx, nil); err != nil {
		t.Fatalf("ReplaceChart(nil) error = %v", err)
	}

	got, err := db.ListChart(ctx)
	if err != nil {
		t.Fatalf("ListChart() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ListChart() = %+v, want empty", got)
	}
}

func TestReplaceChart_InvalidRankKeepsSnapshot(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	seed := []models.ChartEntry{{Rank: 1, Title: "A", Artist: "X"}}
	if err := db.ReplaceChart(ctx, seed); err != nil {
		t.Fatalf("ReplaceChart() error = %v", err)
	}

	err := db.ReplaceChart(ctx, []models.ChartEntry{{Rank: 0, Title: "B", Artist: "Y"}})
	if !errors.Is(err, ErrInvalidRank) {
		t.Fatalf("ReplaceChart() error = %v, want ErrInvalidRank", err)
	}

	got, err := db.ListChart(ctx)
	if err != nil {
		t.Fatalf("ListChart() error = %v", err)
	}
	if !reflect.DeepEqual(got, seed) {
		t.Errorf("ListChart() = %+v, want %+v", got, seed)
	}
}

func TestSearchChartByArtist(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	if err := db.ReplaceChart(ctx, []models.ChartEntry{
		{Rank: 2, Title: "T2", Artist: "X"},
		{Rank: 1, Title: "T1", Artist: "X"},
		{Rank: 3, Title: "T3", Artist: "Y"},
		{Rank: 4, Title: "T4", Artist: "100%"},
	}); err != nil {
		t.Fatalf("ReplaceChart() error = %v", err)
	}

	tests := []struct {
		name      string
		substring string
		wantRanks []int
	}{
		{"exact artist", "X", []int{1, 2}},
		{"lowercase does not match", "x", []int{}},
		{"percent is literal", "%", []int{4}},
		{"underscore is literal", "_", []int{}},
		{"empty query", "", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := db.SearchChartByArtist(ctx, tt.substring)
			if err != nil {
				t.Fatalf("SearchChartByArtist() error = %v", err)
			}
			ranks := []int{}
			for _, e := range got {
				ranks = append(ranks, e.Rank)
			}
			if !reflect.DeepEqual(ranks, tt.wantRanks) {
				t.Errorf("SearchChartByArtist(%q) ranks = %v, want %v", tt.substring, ranks, tt.wantRanks)
			}
		})
	}
}

func chartOf(n int, artist string) []models.ChartEntry {
	entries := make([]models.ChartEntry, n)
	for i := range entries {
		entries[i] = models.ChartEntry{Rank: i + 1, Title: fmt.Sprintf("%s-%d", artist, i+1), Artist: artist}
	}
	return entries
}

func TestReplaceChart_ConcurrentReadersSeeWholeSnapshots(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	old, fresh := chartOf(100, "old"), chartOf(40, "new")
	if err := db.ReplaceChart(ctx, old); err != nil {
		t.Fatalf("ReplaceChart() error = %v", err)
	}

	const readers, replaces = 8, 30
	done := make(chan struct{})
	errs := make(chan error, readers+replaces)

	var wg sync.WaitGroup
	for r := 0; r < readers; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
				}
				got, err := db.ListChart(ctx)
				if err != nil {
					errs <- err
					return
				}
				if !reflect.DeepEqual(got, old) && !reflect.DeepEqual(got, fresh) {
					errs <- fmt.Errorf("ListChart() returned a mixed snapshot of %d rows", len(got))
					return
				}
			}
		}()
	}

	for i := 0; i < replaces; i++ {
		next := old
		if i%2 == 0 {
			next = fresh
		}
		if err := db.ReplaceChart(ctx, next); err != nil {
			errs <- err
			break
		}
	}
	close(done)
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
