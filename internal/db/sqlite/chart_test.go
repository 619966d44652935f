package sqlite

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"

	"melonrank/internal/db"
	"melonrank/internal/models"
)

func TestReplaceChart_FullReplace(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	if err := s.ReplaceChart(ctx, []models.ChartEntry{
		{Rank: 1, Title: "Old", Artist: "Z"},
		{Rank: 99, Title: "Leftover", Artist: "Z"},
	}); err != nil {
		t.Fatalf("ReplaceChart() error = %v", err)
	}

	if err := s.ReplaceChart(ctx, []models.ChartEntry{
		{Rank: 3, Title: "T3", Artist: "Y"},
		{Rank: 1, Title: "T1", Artist: "X"},
		{Rank: 2, Title: "T2", Artist: "X"},
	}); err != nil {
		t.Fatalf("ReplaceChart() error = %v", err)
	}

	got, err := s.ListChart(ctx)
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

func TestReplaceChart_DuplicateRankLastWins(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	if err := s.ReplaceChart(ctx, []models.ChartEntry{
		{Rank: 1, Title: "First", Artist: "A"},
		{Rank: 1, Title: "Second", Artist: "B"},
	}); err != nil {
		t.Fatalf("ReplaceChart() error = %v", err)
	}

	got, err := s.ListChart(ctx)
	if err != nil {
		t.Fatalf("ListChart() error = %v", err)
	}
	want := []models.ChartEntry{{Rank: 1, Title: "Second", Artist: "B"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListChart() = %+v, want %+v", got, want)
	}
}

func TestReplaceChart_EmptyClears(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	if err := s.ReplaceChart(ctx, []models.ChartEntry{{Rank: 1, Title: "A", Artist: "X"}}); err != nil {
		t.Fatalf("ReplaceChart() error = %v", err)
	}
	if err := s.ReplaceChart(ctx, []models.ChartEntry{}); err != nil {
		t.Fatalf("ReplaceChart(empty) error = %v", err)
	}

	got, err := s.ListChart(ctx)
	if err != nil {
		t.Fatalf("ListChart() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ListChart() = %+v, want empty", got)
	}
}

func TestReplaceChart_InvalidRankLeavesSnapshot(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	seed := []models.ChartEntry{{Rank: 1, Title: "A", Artist: "X"}}
	if err := s.ReplaceChart(ctx, seed); err != nil {
		t.Fatalf("ReplaceChart() error = %v", err)
	}

	err := s.ReplaceChart(ctx, []models.ChartEntry{{Rank: 2, Title: "B", Artist: "Y"}, {Rank: 0, Title: "C", Artist: "Y"}})
	if !errors.Is(err, db.ErrInvalidRank) {
		t.Fatalf("ReplaceChart() error = %v, want ErrInvalidRank", err)
	}

	got, err := s.ListChart(ctx)
	if err != nil {
		t.Fatalf("ListChart() error = %v", err)
	}
	if !reflect.DeepEqual(got, seed) {
		t.Errorf("ListChart() = %+v, want %+v", got, seed)
	}
}

func TestReplaceChart_CanceledContextKeepsSnapshot(t *testing.T) {
	s := setupTestDB(t)

	seed := []models.ChartEntry{{Rank: 1, Title: "A", Artist: "X"}}
	if err := s.ReplaceChart(context.Background(), seed); err != nil {
		t.Fatalf("ReplaceChart() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.ReplaceChart(ctx, []models.ChartEntry{{Rank: 5, Title: "B", Artist: "Y"}}); err == nil {
		t.Fatal("ReplaceChart() with canceled context succeeded, want error")
	}

	got, err := s.ListChart(context.Background())
	if err != nil {
		t.Fatalf("ListChart() error = %v", err)
	}
	if !reflect.DeepEqual(got, seed) {
		t.Errorf("ListChart() = %+v, want %+v", got, seed)
	}
}

func TestSearchChartByArtist(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	if err := s.ReplaceChart(ctx, []models.ChartEntry{
		{Rank: 1, Title: "T1", Artist: "X"},
		{Rank: 2, Title: "T2", Artist: "X"},
		{Rank: 3, Title: "T3", Artist: "Y"},
		{Rank: 4, Title: "Love wins all", Artist: "아이유 (IU)"},
		{Rank: 5, Title: "T5", Artist: "50%"},
	}); err != nil {
		t.Fatalf("ReplaceChart() error = %v", err)
	}

	tests := []struct {
		name      string
		substring string
		wantRanks []int
	}{
		{"matches artist", "X", []int{1, 2}},
		{"case-sensitive", "x", []int{}},
		{"korean substring", "아이유", []int{4}},
		{"inner substring", "(IU", []int{4}},
		{"percent literal", "%", []int{5}},
		{"underscore literal", "_", []int{}},
		{"no match", "Z", []int{}},
		{"empty query", "", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.SearchChartByArtist(ctx, tt.substring)
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

func snapshot(n int, tag string) []models.ChartEntry {
	entries := make([]models.ChartEntry, n)
	for i := range entries {
		entries[i] = models.ChartEntry{Rank: i + 1, Title: fmt.Sprintf("%s-%d", tag, i+1), Artist: tag}
	}
	return entries
}

// wholeSnapshot reports whether got is exactly one of the candidates.
func wholeSnapshot(got []models.ChartEntry, candidates ...[]models.ChartEntry) bool {
	for _, c := range candidates {
		if reflect.DeepEqual(got, c) {
			return true
		}
	}
	return false
}

func TestReplaceChart_ConcurrentReadersSeeWholeSnapshots(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()
	old, fresh := snapshot(50, "old"), snapshot(30, "new")

	if err := s.ReplaceChart(ctx, old); err != nil {
		t.Fatalf("ReplaceChart() error = %v", err)
	}

	const readers, replaces = 4, 40
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
				got, err := s.ListChart(ctx)
				if err != nil {
					errs <- err
					return
				}
				if !wholeSnapshot(got, old, fresh) {
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
		if err := s.ReplaceChart(ctx, next); err != nil {
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
