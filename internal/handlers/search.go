package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"melonrank/internal/config"
	"melonrank/internal/metrics"
	"melonrank/internal/models"
	"melonrank/internal/naver"
	"melonrank/internal/store"
	"melonrank/internal/validation"
)

// SearchHandler handles the home page and blog search.
type SearchHandler struct {
	keywords store.KeywordCounter
	blog     BlogSearcher
	cfg      *config.Config
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(keywords store.KeywordCounter, blog BlogSearcher, cfg *config.Config) *SearchHandler {
	return &SearchHandler{keywords: keywords, blog: blog, cfg: cfg}
}

// Index renders the home page.
func (h *SearchHandler) Index(c fiber.Ctx) error {
	return render(c, h.cfg, "index", "", nil)
}

// Blog counts the query as a search and renders blog results for it.
// A failed count is logged and does not block the search itself.
func (h *SearchHandler) Blog(c fiber.Ctx) error {
	query := validation.NormalizeQuery(c.Query("query"))

	results := []models.BlogItem{}
	errMsg := ""

	if query != "" {
		if err := validation.ValidateQuery(query); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if err := h.keywords.RecordSearch(c.Context(), query); err != nil {
			slog.Error("failed to record search", "keyword", query, "error", err)
		}

		resp := h.blog.SearchBlog(c.Context(), query, blogResultSize, naver.SortSimilarity)
		results = resp.Items
		errMsg = resp.Error
		if errMsg != "" {
			metrics.RecordBlogSearchError()
		}
	}

	return render(c, h.cfg, "search_blog", "블로그 검색", fiber.Map{
		"Query":   query,
		"Results": results,
		"Error":   errMsg,
	})
}
