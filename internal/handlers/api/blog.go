package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"melonrank/internal/metrics"
	"melonrank/internal/models"
	"melonrank/internal/naver"
	"melonrank/internal/store"
	"melonrank/internal/validation"
)

// BlogHandler serves the blog search proxy as JSON.
type BlogHandler struct {
	keywords store.KeywordCounter
	blog     BlogSearcher
}

// NewBlogHandler creates a new API blog handler.
func NewBlogHandler(keywords store.KeywordCounter, blog BlogSearcher) *BlogHandler {
	return &BlogHandler{keywords: keywords, blog: blog}
}

// Search counts the query and proxies it to the blog search API. Upstream
// failures are reported in the payload, not as an HTTP error.
func (h *BlogHandler) Search(c fiber.Ctx) error {
	query := validation.NormalizeQuery(c.Query("query"))
	if err := validation.ValidateQuery(query); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.keywords.RecordSearch(c.Context(), query); err != nil {
		slog.Error("failed to record search", "keyword", query, "error", err)
	}

	result := h.blog.SearchBlog(c.Context(), query, blogDisplay, naver.SortSimilarity)
	if result.Error != "" {
		metrics.RecordBlogSearchError()
	}

	items := result.Items
	if items == nil {
		items = []models.BlogItem{}
	}
	return respond(c, models.BlogSearchResponse{Query: query, Items: items, Error: result.Error})
}
