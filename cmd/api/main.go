// Command api is the Courtside API server.
//
// Usage:
//
//	courtside-api
//	API_PORT=8080 courtside-api

// @title Courtside API
// @version 1.0.0
// @description Basketball data aggregation API serving games, teams, players, and statistics from multiple upstream providers behind one canonical model.
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
// @contact.name Courtside
// @license.name MIT
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

	"github.com/albapepper/courtside/internal/api"
	"github.com/albapepper/courtside/internal/cache"
	"github.com/albapepper/courtside/internal/config"
	"github.com/albapepper/courtside/internal/orchestrator"
	"github.com/albapepper/courtside/internal/poll"
	"github.com/albapepper/courtside/internal/wiring"

	_ "github.com/albapepper/courtside/docs" // swagger docs
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

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Initialize cache
	appCache := cache.New(cfg.CacheEnabled)
	defer appCache.Close()
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled)

	// Build provider clients and the orchestrator
	orc := orchestrator.New(appCache, logger)
	wiring.RegisterLeagues(orc, cfg, logger)
	logger.Info("Providers registered",
		"leagues", orc.Leagues(),
		"bdl_configured", cfg.BDLAPIKey != "")

	// Start the live-game poller
	if cfg.PollEnabled {
		go poll.Start(ctx, orc, cfg.PollInterval, logger)
	}

	// Create router
	router := api.NewRouter(orc, appCache, cfg)

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
		logger.Info("Starting Courtside API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
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
