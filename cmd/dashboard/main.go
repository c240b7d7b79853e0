// Command dashboard serves the OctoFit views over HTTP.
//
// Usage:
//
//	octofit-dashboard
//	CODESPACE_NAME=my-space DASHBOARD_PORT=8080 octofit-dashboard

// @title OctoFit Dashboard API
// @version 1.0.0
// @description Read-only views over the OctoFit fitness API: activities, leaderboard, teams, users and workouts, each with its own load lifecycle.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
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

	"github.com/albapepper/octofit-dashboard/internal/api"
	"github.com/albapepper/octofit-dashboard/internal/collection"
	"github.com/albapepper/octofit-dashboard/internal/config"
	"github.com/albapepper/octofit-dashboard/internal/view"

	_ "github.com/albapepper/octofit-dashboard/docs" // swagger docs
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	client := collection.NewClient(cfg.APIBaseURL,
		collection.WithTimeout(cfg.FetchTimeout),
		collection.WithRequestsPerMinute(cfg.FetchRequestsPerMinute),
		collection.WithLogger(logger),
	)
	dash := view.NewDashboard(ctx, client, cfg.APIBaseURL, logger)
	defer dash.Close()

	if cfg.ActivateOnStart {
		done := dash.ActivateAll()
		go func() {
			<-done
			logger.Info("Initial load settled")
		}()
	}

	router := api.NewRouter(dash, cfg, logger)

	addr := fmt.Sprintf("%s:%d", cfg.DashboardHost, cfg.DashboardPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting OctoFit dashboard",
			"addr", addr,
			"api_base_url", cfg.APIBaseURL,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.DashboardPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
