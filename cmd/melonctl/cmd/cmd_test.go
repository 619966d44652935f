package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"melonrank/internal/jobs"
	"melonrank/internal/models"
	"melonrank/internal/store"
)

func TestFormatChart(t *testing.T) {
	got := formatChart([]models.ChartEntry{
		{Rank: 1, Title: "Supernova", Artist: "aespa"},
		{Rank: 2, Title: "Magnetic", Artist: "ILLIT"},
	})
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 3 {
		t.Fatalf("formatChart() produced %d lines, want 3:\n%s", len(lines), got)
	}
	if !strings.HasPrefix(lines[1], "1") || !strings.Contains(lines[1], "Supernova") {
		t.Errorf("first row = %q", lines[1])
	}

	if got := formatChart(nil); got != "no chart entries\n" {
		t.Errorf("formatChart(nil) = %q", got)
	}
}

func TestFormatRefresh(t *testing.T) {
	tests := []struct {
		name string
		in   jobs.RefreshResult
		want string
	}{
		{name: "skipped", in: jobs.RefreshResult{Skipped: true}, want: "snapshot unchanged"},
		{
			name: "replaced",
			in:   jobs.RefreshResult{Entries: 100, RefreshedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)},
			want: "stored 100 chart entries at 2026-01-02 03:04:05",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatRefresh(tt.in); !strings.Contains(got, tt.want) {
				t.Errorf("formatRefresh() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("melonctl %v: %v", args, err)
	}
	return out.String()
}

func TestRecordAndKeywords(t *testing.T) {
	dbURL := "sqlite://" + filepath.Join(t.TempDir(), "cli.db")
	t.Cleanup(func() { databaseURL = "" })

	run(t, "--database", dbURL, "record", "  jazz ")
	run(t, "--database", dbURL, "record", "jazz")
	run(t, "--database", dbURL, "record", "pop")

	out := run(t, "--database", dbURL, "keywords", "--limit", "1")
	if !strings.Contains(out, "jazz") || strings.Contains(out, "pop") {
		t.Errorf("keywords output = %q, want only jazz", out)
	}
}

func TestChartAndSearchArtist(t *testing.T) {
	dbURL := "sqlite://" + filepath.Join(t.TempDir(), "cli.db")
	t.Cleanup(func() { databaseURL = "" })

	st, err := store.Open(context.Background(), dbURL)
	if err != nil {
		t.Fatalf("store.Open() error = %v", err)
	}
	err = st.ReplaceChart(context.Background(), []models.ChartEntry{
		{Rank: 1, Title: "T1", Artist: "X"},
		{Rank: 2, Title: "T2", Artist: "X"},
		{Rank: 3, Title: "T3", Artist: "Y"},
	})
	st.Close()
	if err != nil {
		t.Fatalf("ReplaceChart() error = %v", err)
	}

	if out := run(t, "--database", dbURL, "chart"); !strings.Contains(out, "T3") {
		t.Errorf("chart output = %q", out)
	}
	if out := run(t, "--database", dbURL, "search-artist", "Y"); !strings.Contains(out, "T3") || strings.Contains(out, "T1") {
		t.Errorf("search-artist output = %q", out)
	}
	if out := run(t, "--database", dbURL, "artists"); !strings.Contains(out, "X") {
		t.Errorf("artists output = %q", out)
	}
}
