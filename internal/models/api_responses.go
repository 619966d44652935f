package models

import "time"

// RefreshResponse reports the outcome of a chart refresh.
type RefreshResponse struct {
	Entries     int       `json:"entries"`
	Skipped     bool      `json:"skipped"`
	RefreshedAt time.Time `json:"refreshed_at,omitzero"`
}

// ArtistSearchResponse contains chart entries whose artist matched a query.
type ArtistSearchResponse struct {
	Query   string       `json:"query"`
	Results []ChartEntry `json:"results"`
}

// BlogSearchResponse wraps a blog search for the JSON API.
type BlogSearchResponse struct {
	Query string     `json:"query"`
	Items []BlogItem `json:"items"`
	Error string     `json:"error,omitempty"`
}
