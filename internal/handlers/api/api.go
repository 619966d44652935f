// Package api serves the JSON counterparts of the HTML views under /api.
package api

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"melonrank/internal/jobs"
	"melonrank/internal/models"
	"melonrank/internal/validation"
)

const (
	defaultLimit = 10
	maxLimit     = 100
	blogDisplay  = 10
)

// Ranker computes keyword and artist rankings.
type Ranker interface {
	TopKeywords(ctx context.Context, limit int) ([]models.KeywordCount, error)
	ArtistSongCounts(ctx context.Context, limit int) ([]models.ArtistCount, error)
}

// Refresher refreshes the chart snapshot from its source.
type Refresher interface {
	Refresh(ctx context.Context) (jobs.RefreshResult, error)
}

// BlogSearcher proxies a blog search to an external API.
type BlogSearcher interface {
	SearchBlog(ctx context.Context, query string, display int, sort string) models.BlogResult
}

// limitParam reads ?limit= and clamps it to [1, maxLimit].
func limitParam(c fiber.Ctx) int {
	return validation.ClampLimit(fiber.Query[int](c, "limit", defaultLimit), defaultLimit, maxLimit)
}

// okResponse is the body of every successful /api response.
type okResponse[T any] struct {
	Status string `json:"status"`
	Data   T      `json:"data"`
}

// errorResponse is the body of every failed /api response.
type errorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// respond writes data in the success envelope with status 200.
func respond[T any](c fiber.Ctx, data T) error {
	return c.JSON(okResponse[T]{Status: "ok", Data: data})
}

// fail writes message in the error envelope with the given status.
func fail(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(errorResponse{Status: "error", Error: message})
}
