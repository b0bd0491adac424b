// Command api is the HoopSight API server.
//
// Usage:
//
//	hoopsight-api
//	API_PORT=8080 hoopsight-api
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/hoopsight/hoopsight/internal/anthropic"
	"github.com/hoopsight/hoopsight/internal/api"
	"github.com/hoopsight/hoopsight/internal/config"
	"github.com/hoopsight/hoopsight/internal/httpcache"
	"github.com/hoopsight/hoopsight/internal/injury"
	"github.com/hoopsight/hoopsight/internal/kenpom"
	"github.com/hoopsight/hoopsight/internal/news"
	"github.com/hoopsight/hoopsight/internal/roster"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if cfg.Debug {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
		slog.SetDefault(logger)
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Upstream stats client
	kp := kenpom.NewClient(cfg.KenpomBaseURL, cfg.KenpomAPIKey, cfg.KenpomRPM, logger)

	// Response cache for the stats proxy
	appCache := httpcache.New(cfg.CacheEnabled)
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled)

	// Injury intelligence (optional)
	var injuries injury.Service = injury.Disabled{}
	if cfg.InjuryEnabled() {
		llm := anthropic.NewClient(cfg.AnthropicAPIKey, cfg.AnthropicModel, logger)
		fetcher := news.NewFetcher(cfg.SeasonYear, logger)
		diskCache := injury.NewCache(cfg.InjuryCacheDir, logger)
		injuries = injury.NewAnalyzer(fetcher, llm, diskCache, roster.Default(), logger)
		logger.Info("Injury analysis enabled", "model", cfg.AnthropicModel, "season", cfg.SeasonYear)
	} else {
		logger.Info("Injury analysis disabled (no ANTHROPIC_API_KEY)")
	}

	// Create router
	router := api.NewRouter(kp, appCache, injuries, cfg)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting HoopSight API",
			"addr", addr,
			"environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
