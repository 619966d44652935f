// Package melon fetches and parses the Melon music chart page.
package melon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"melonrank/internal/models"
)

const (
	// DefaultURL is the Melon real-time top 100 chart.
	DefaultURL = "https://www.melon.com/chart/"

	defaultUserAgent = "Mozilla/5.0"
	defaultTimeout   = 10 * time.Second
)

// ErrFetch wraps every failure to obtain chart rows: transport errors,
// timeouts, non-200 responses and unparsable pages.
var ErrFetch = errors.New("chart fetch failed")

// Fetcher retrieves the current chart.
type Fetcher struct {
	httpClient *http.Client
	url        string
	userAgent  string
	selectors  Selectors
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.httpClient.Timeout = d
	}
}

// WithURL sets the chart page URL.
func WithURL(url string) Option {
	return func(f *Fetcher) {
		f.url = url
	}
}

// WithUserAgent sets the User-Agent header sent with the request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithSelectors overrides the CSS selectors used to parse the page.
func WithSelectors(sel Selectors) Option {
	return func(f *Fetcher) {
		f.selectors = sel
	}
}

// WithTransport replaces the HTTP transport, keeping the configured timeout.
func WithTransport(rt http.RoundTripper) Option {
	return func(f *Fetcher) {
		f.httpClient.Transport = rt
	}
}

// NewFetcher creates a chart fetcher with a 10 second timeout.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		httpClient: &http.Client{Timeout: defaultTimeout},
		url:        DefaultURL,
		userAgent:  defaultUserAgent,
		selectors:  DefaultSelectors,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch returns the current chart, or an empty slice when it cannot be
// fetched for any reason. The failure is logged.
func (f *Fetcher) Fetch(ctx context.Context) []models.ChartEntry {
	entries, err := f.FetchChart(ctx)
	if err != nil {
		slog.Warn("chart fetch failed", "url", f.url, "error", err)
		return []models.ChartEntry{}
	}
	return entries
}

// FetchChart is Fetch with the failure reason. Every error wraps ErrFetch.
func (f *Fetcher) FetchChart(ctx context.Context) ([]models.ChartEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", ErrFetch, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status: %d", ErrFetch, resp.StatusCode)
	}

	entries, err := Parse(resp.Body, f.selectors)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	return entries, nil
}
