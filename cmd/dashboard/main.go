package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/trip-risk-dashboard/internal/adapter/httpadapter"
	"github.com/couchcryptid/trip-risk-dashboard/internal/adapter/riskapi"
	"github.com/couchcryptid/trip-risk-dashboard/internal/config"
	"github.com/couchcryptid/trip-risk-dashboard/internal/dashboard"
	"github.com/couchcryptid/trip-risk-dashboard/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	client := riskapi.NewClient(cfg.APIBaseURL, cfg.FetchTimeout, logger, metrics)

	state := dashboard.New(client, logger, metrics, dashboard.Options{
		InitialHour:     cfg.InitialHour,
		TopZonesLimit:   cfg.TopZonesLimit,
		StaleGuard:      cfg.StaleGuard,
		HourScopedCache: cfg.HourScopedCache,
		BoundariesPath:  cfg.ZonesGeoJSONPath,
	})

	srv := httpadapter.NewServer(cfg.HTTPAddr, state, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Initial loads run in the background so the service can report
	// liveness while a slow analytics API delays the first panels.
	go func() {
		state.Start(ctx)
		logger.Info("initial dashboard load complete", "hour", state.CurrentHour())
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
