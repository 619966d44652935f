package metrics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"melonrank/internal/store"
)

// Refresh outcome label values.
const (
	OutcomeReplaced = "replaced"
	OutcomeSkipped  = "skipped"
	OutcomeFailed   = "failed"
)

// collectKeywordLimit bounds the keyword label cardinality exported per scrape.
const collectKeywordLimit = 100

var (
	keywordSearchDesc = prometheus.NewDesc(
		"melonrank_keyword_searches_total",
		"Total searches per keyword (top keywords only)",
		[]string{"keyword"},
		nil,
	)

	chartRefreshes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "melonrank_chart_refreshes_total",
		Help: "Chart refresh attempts by outcome",
	}, []string{"outcome"})

	chartEntries = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "melonrank_chart_entries",
		Help: "Number of entries in the current chart snapshot",
	})

	chartLastRefresh = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "melonrank_chart_last_refresh_timestamp_seconds",
		Help: "Unix time of the last snapshot replacement",
	})

	blogSearchErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "melonrank_blog_search_errors_total",
		Help: "Blog searches that returned an error message",
	})
)

// KeywordCollector is a custom Prometheus collector that reads keyword
// search counts from the store on each scrape.
type KeywordCollector struct {
	keywords store.KeywordCounter
}

// NewKeywordCollector creates a collector over keywords.
func NewKeywordCollector(keywords store.KeywordCounter) *KeywordCollector {
	return &KeywordCollector{keywords: keywords}
}

// Describe sends the metric descriptor to the channel.
func (c *KeywordCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- keywordSearchDesc
}

// Collect queries the store for the top keywords and emits them as counters.
func (c *KeywordCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	keywords, err := c.keywords.TopKeywords(ctx, collectKeywordLimit)
	if err != nil {
		slog.Error("failed to collect keyword search metrics", "error", err)
		return
	}
	for _, k := range keywords {
		ch <- prometheus.MustNewConstMetric(
			keywordSearchDesc,
			prometheus.CounterValue,
			float64(k.Count),
			k.Keyword,
		)
	}
}

var initOnce sync.Once

// Init registers the keyword collector and the refresh metrics with the
// default registry. Must be called once at startup.
func Init(keywords store.KeywordCounter) {
	initOnce.Do(func() {
		prometheus.MustRegister(
			NewKeywordCollector(keywords),
			chartRefreshes,
			chartEntries,
			chartLastRefresh,
			blogSearchErrors,
		)
	})
}

// RecordChartRefresh counts a refresh attempt. For OutcomeReplaced, entries
// is the size of the new snapshot.
func RecordChartRefresh(outcome string, entries int) {
	chartRefreshes.WithLabelValues(outcome).Inc()
	if outcome == OutcomeReplaced {
		chartEntries.Set(float64(entries))
		chartLastRefresh.SetToCurrentTime()
	}
}

// RecordBlogSearchError counts a blog search that surfaced an error message.
func RecordBlogSearchError() {
	blogSearchErrors.Inc()
}
