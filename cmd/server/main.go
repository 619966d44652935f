package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"melonrank/internal/config"
	"melonrank/internal/jobs"
	"melonrank/internal/melon"
	"melonrank/internal/metrics"
	"melonrank/internal/naver"
	"melonrank/internal/ranking"
	"melonrank/internal/server"
	"melonrank/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	yamlCfg, err := config.LoadYAMLConfig()
	if err != nil {
		log.Fatalf("Failed to load config file: %v", err)
	}

	// Initialize storage; Postgres migrations run inside store.Open
	st, err := store.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer st.Close()

	metrics.Init(st)

	fetcher := melon.NewFetcher(cfg.FetcherOptions(yamlCfg)...)
	refresher := jobs.NewChartRefresher(fetcher, st)
	blog := naver.NewClient(cfg.NaverClientID, cfg.NaverClientSecret, naver.WithTimeout(cfg.FetchTimeout))
	if !blog.HasCredentials() {
		slog.Warn("NAVER_CLIENT_ID or NAVER_CLIENT_SECRET not set, blog search will report an error")
	}

	srv := server.New(cfg)
	srv.RegisterRoutes(server.Deps{
		Store:     st,
		Ranker:    ranking.NewEngine(st, st),
		Refresher: refresher,
		Blog:      blog,
	})

	// Scheduled chart refresh
	go func() {
		if err := refresher.Start(ctx, cfg.ChartRefreshSchedule, cfg.ChartRefreshOnStart); err != nil {
			slog.Error("chart refresher stopped", "error", err)
		}
	}()

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
			stop()
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	<-ctx.Done()

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
