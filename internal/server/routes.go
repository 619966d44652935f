package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"melonrank/internal/handlers"
	"melonrank/internal/handlers/api"
	"melonrank/internal/store"
)

// Deps are the services the routes are served from.
type Deps struct {
	Store     store.Store
	Ranker    handlers.Ranker
	Refresher handlers.Refresher
	Blog      handlers.BlogSearcher
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(d Deps) {
	// Initialize handlers
	searchHandler := handlers.NewSearchHandler(d.Store, d.Blog, s.Cfg)
	chartHandler := handlers.NewChartHandler(d.Store, d.Refresher, s.Cfg)
	rankingHandler := handlers.NewRankingHandler(d.Ranker, s.Cfg)
	probeHandler := handlers.NewProbeHandler(d.Store)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Frontend routes
	s.App.Get("/", searchHandler.Index)
	s.App.Get("/blog", searchHandler.Blog)
	s.App.Get("/ranking", rankingHandler.Keywords)
	s.App.Get("/artist-ranking", rankingHandler.Artists)
	s.App.Get("/melon-chart", chartHandler.Chart)
	s.App.Get("/update-chart-db", chartHandler.Update)
	s.App.Get("/artist-search", chartHandler.ArtistSearch)

	// JSON API
	apiRanking := api.NewRankingHandler(d.Ranker)
	apiChart := api.NewChartHandler(d.Store, d.Refresher)
	apiBlog := api.NewBlogHandler(d.Store, d.Blog)

	v1 := s.App.Group("/api")
	v1.Get("/ranking", apiRanking.Keywords)
	v1.Get("/artist-ranking", apiRanking.Artists)
	v1.Get("/chart", apiChart.List)
	v1.Post("/chart/refresh", apiChart.Refresh)
	v1.Get("/artist-search", apiChart.ArtistSearch)
	v1.Get("/blog", apiBlog.Search)
}
