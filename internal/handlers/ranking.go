package handlers

import (
	"github.com/gofiber/fiber/v3"

	"melonrank/internal/config"
)

// RankingHandler renders keyword and artist rankings.
type RankingHandler struct {
	ranker Ranker
	cfg    *config.Config
}

// NewRankingHandler creates a new ranking handler.
func NewRankingHandler(ranker Ranker, cfg *config.Config) *RankingHandler {
	return &RankingHandler{ranker: ranker, cfg: cfg}
}

// Keywords renders the top searched keywords.
func (h *RankingHandler) Keywords(c fiber.Ctx) error {
	top, err := h.ranker.TopKeywords(c.Context(), rankingLimit)
	if err != nil {
		return err
	}

	return render(c, h.cfg, "ranking", "검색어 순위", fiber.Map{
		"TopKeywords": top,
	})
}

// Artists renders artists ranked by songs in the current chart.
func (h *RankingHandler) Artists(c fiber.Ctx) error {
	top, err := h.ranker.ArtistSongCounts(c.Context(), rankingLimit)
	if err != nil {
		return err
	}

	return render(c, h.cfg, "artist_ranking", "아티스트 순위", fiber.Map{
		"TopArtists": top,
	})
}
