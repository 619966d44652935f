package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
)

// RankingHandler serves keyword and artist rankings as JSON.
type RankingHandler struct {
	ranker Ranker
}

// NewRankingHandler creates a new API ranking handler.
func NewRankingHandler(ranker Ranker) *RankingHandler {
	return &RankingHandler{ranker: ranker}
}

// Keywords returns the most searched keywords.
func (h *RankingHandler) Keywords(c fiber.Ctx) error {
	keywords, err := h.ranker.TopKeywords(c.Context(), limitParam(c))
	if err != nil {
		slog.Error("failed to fetch top keywords", "error", err)
		return fail(c, fiber.StatusInternalServerError, "failed to fetch keyword ranking")
	}
	return respond(c, keywords)
}

// Artists returns artists ordered by their song count in the current chart.
func (h *RankingHandler) Artists(c fiber.Ctx) error {
	artists, err := h.ranker.ArtistSongCounts(c.Context(), limitParam(c))
	if err != nil {
		slog.Error("failed to count artists", "error", err)
		return fail(c, fiber.StatusInternalServerError, "failed to fetch artist ranking")
	}
	return respond(c, artists)
}
