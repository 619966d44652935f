package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"melonrank/internal/models"
	"melonrank/internal/store"
	"melonrank/internal/validation"
)

// ChartHandler serves the chart snapshot as JSON.
type ChartHandler struct {
	chart     store.ChartStore
	refresher Refresher
}

// NewChartHandler creates a new API chart handler.
func NewChartHandler(chart store.ChartStore, refresher Refresher) *ChartHandler {
	return &ChartHandler{chart: chart, refresher: refresher}
}

// List returns the current snapshot ordered by rank.
func (h *ChartHandler) List(c fiber.Ctx) error {
	entries, err := h.chart.ListChart(c.Context())
	if err != nil {
		slog.Error("failed to list chart", "error", err)
		return fail(c, fiber.StatusInternalServerError, "failed to fetch chart")
	}
	return respond(c, entries)
}

// Refresh fetches the chart and replaces the snapshot. A skipped refresh
// is still a success; the response says so.
func (h *ChartHandler) Refresh(c fiber.Ctx) error {
	result, err := h.refresher.Refresh(c.Context())
	if err != nil {
		slog.Error("chart refresh failed", "error", err)
		return fail(c, fiber.StatusInternalServerError, "failed to refresh chart")
	}

	return respond(c, models.RefreshResponse{
		Entries:     result.Entries,
		Skipped:     result.Skipped,
		RefreshedAt: result.RefreshedAt,
	})
}

// ArtistSearch returns chart entries whose artist contains artist_query.
func (h *ChartHandler) ArtistSearch(c fiber.Ctx) error {
	query := validation.NormalizeQuery(c.Query("artist_query"))

	results := []models.ChartEntry{}
	if query != "" {
		if err := validation.ValidateQuery(query); err != nil {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}

		var err error
		results, err = h.chart.SearchChartByArtist(c.Context(), query)
		if err != nil {
			slog.Error("artist search failed", "query", query, "error", err)
			return fail(c, fiber.StatusInternalServerError, "failed to search chart")
		}
	}

	return respond(c, models.ArtistSearchResponse{Query: query, Results: results})
}
