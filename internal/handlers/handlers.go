package handlers

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"melonrank/internal/config"
	"melonrank/internal/jobs"
	"melonrank/internal/models"
)

// Result sizes used by the HTML views.
const (
	rankingLimit   = 10
	blogResultSize = 10
)

// BlogSearcher proxies a blog search to an external API.
type BlogSearcher interface {
	SearchBlog(ctx context.Context, query string, display int, sort string) models.BlogResult
}

// Ranker computes keyword and artist rankings.
type Ranker interface {
	TopKeywords(ctx context.Context, limit int) ([]models.KeywordCount, error)
	ArtistSongCounts(ctx context.Context, limit int) ([]models.ArtistCount, error)
}

// Refresher refreshes the chart snapshot from its source.
type Refresher interface {
	Refresh(ctx context.Context) (jobs.RefreshResult, error)
}

// render renders view into the main layout with the page title and the
// site branding added to data.
func render(c fiber.Ctx, cfg *config.Config, view, title string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Title"] = title
	data["SiteTitle"] = cfg.SiteTitle
	data["SiteTagline"] = cfg.SiteTagline
	return c.Render(view, data)
}
