package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"melonrank/internal/metrics"
	"melonrank/internal/models"
	"melonrank/internal/store"
)

// ChartSource returns the current chart, empty when it is unavailable.
type ChartSource interface {
	Fetch(ctx context.Context) []models.ChartEntry
}

// RefreshResult describes one refresh attempt.
type RefreshResult struct {
	Entries     int
	Skipped     bool
	RefreshedAt time.Time
}

// ChartRefresher replaces the stored snapshot with a freshly fetched chart.
type ChartRefresher struct {
	source ChartSource
	store  store.ChartStore

	// mu keeps a scheduled refresh and a manual one from interleaving.
	mu sync.Mutex
}

// NewChartRefresher creates a new chart refresher.
func NewChartRefresher(source ChartSource, chart store.ChartStore) *ChartRefresher {
	return &ChartRefresher{source: source, store: chart}
}

// Refresh fetches the chart and replaces the snapshot. An empty fetch is a
// no-op so a failed fetch never wipes a good snapshot.
func (r *ChartRefresher) Refresh(ctx context.Context) (RefreshResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := r.source.Fetch(ctx)
	if len(entries) == 0 {
		slog.Warn("chart refresh skipped: no entries fetched")
		metrics.RecordChartRefresh(metrics.OutcomeSkipped, 0)
		return RefreshResult{Skipped: true}, nil
	}

	if err := r.store.ReplaceChart(ctx, entries); err != nil {
		metrics.RecordChartRefresh(metrics.OutcomeFailed, 0)
		return RefreshResult{}, fmt.Errorf("replace chart: %w", err)
	}

	metrics.RecordChartRefresh(metrics.OutcomeReplaced, len(entries))
	slog.Info("chart refreshed", "entries", len(entries))
	return RefreshResult{Entries: len(entries), RefreshedAt: time.Now()}, nil
}

// Start runs Refresh on the cron schedule until ctx is done. An empty
// schedule returns immediately.
func (r *ChartRefresher) Start(ctx context.Context, schedule string, runOnStart bool) error {
	if schedule == "" && !runOnStart {
		return nil
	}

	if runOnStart {
		r.refreshLogged(ctx)
	}
	if schedule == "" {
		return nil
	}

	c := cron.New()
	if _, err := c.AddFunc(schedule, func() { r.refreshLogged(ctx) }); err != nil {
		return fmt.Errorf("add cron job %q: %w", schedule, err)
	}

	slog.Info("chart refresher started", "schedule", schedule)
	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()
	slog.Info("chart refresher stopped")
	return nil
}

func (r *ChartRefresher) refreshLogged(ctx context.Context) {
	if _, err := r.Refresh(ctx); err != nil {
		slog.Error("scheduled chart refresh failed", "error", err)
	}
}
