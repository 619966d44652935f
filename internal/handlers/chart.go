package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"melonrank/internal/config"
	"melonrank/internal/models"
	"melonrank/internal/store"
	"melonrank/internal/validation"
)

// ChartHandler handles the chart snapshot views.
type ChartHandler struct {
	chart     store.ChartStore
	refresher Refresher
	cfg       *config.Config
}

// NewChartHandler creates a new chart handler.
func NewChartHandler(chart store.ChartStore, refresher Refresher, cfg *config.Config) *ChartHandler {
	return &ChartHandler{chart: chart, refresher: refresher, cfg: cfg}
}

// Chart renders the current snapshot ordered by rank.
func (h *ChartHandler) Chart(c fiber.Ctx) error {
	entries, err := h.chart.ListChart(c.Context())
	if err != nil {
		return err
	}

	return render(c, h.cfg, "melon_chart", "멜론 차트", fiber.Map{
		"ChartList": entries,
	})
}

// Update refreshes the snapshot and redirects to the chart view whatever
// the outcome.
func (h *ChartHandler) Update(c fiber.Ctx) error {
	if _, err := h.refresher.Refresh(c.Context()); err != nil {
		slog.Error("chart refresh failed", "error", err)
	}
	return c.Redirect().To("/melon-chart")
}

// ArtistSearch renders chart entries whose artist contains the query.
// An empty query renders an empty result without touching the store.
func (h *ChartHandler) ArtistSearch(c fiber.Ctx) error {
	query := validation.NormalizeQuery(c.Query("artist_query"))

	results := []models.ChartEntry{}
	if query != "" {
		if err := validation.ValidateQuery(query); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		var err error
		results, err = h.chart.SearchChartByArtist(c.Context(), query)
		if err != nil {
			return err
		}
	}

	return render(c, h.cfg, "artist_search", "아티스트 검색", fiber.Map{
		"ArtistQuery": query,
		"Results":     results,
	})
}
