package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"sales-dashboard/internal/config"
	"sales-dashboard/internal/middleware"
	"sales-dashboard/internal/observability"
	"sales-dashboard/internal/report"
	"sales-dashboard/internal/server"
	"sales-dashboard/internal/services"
)

const version = "1.0.0"

type app struct {
	analyzer *services.Analyzer
	library  *services.Library
	handler  http.Handler
}

func newApp(cfg *config.Config, logger *slog.Logger) (*app, error) {
	loader, err := report.NewLoader(cfg.LoaderOptions()...)
	if err != nil {
		return nil, fmt.Errorf("build report loader: %w", err)
	}

	analyzer := services.NewAnalyzer(loader, logger)
	library := services.NewLibrary(cfg.Reports.DataDir, loader, logger)
	srv := server.NewServer(analyzer, library, logger)

	rateLimiter := middleware.NewRateLimiter(cfg.Security)

	middlewareChain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Tracing(logger),
		middleware.SecurityHeaders(),
		middleware.CORS(cfg.Security),
		middleware.TrustedProxy(cfg.Security),
		middleware.RateLimit(rateLimiter, logger),
		middleware.BodyLimit(cfg.Reports.MaxUploadBytes, logger),
	)

	return &app{
		analyzer: analyzer,
		library:  library,
		handler:  middlewareChain(srv),
	}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.Logger, nil)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"version", version,
		"data_dir", cfg.Reports.DataDir,
		"max_upload_bytes", cfg.Reports.MaxUploadBytes,
	)

	a, err := newApp(cfg, logger)
	if err != nil {
		logger.Error("failed to initialise application", "error", err)
		os.Exit(1)
	}
	logger.Info("monthly reports available", "months", a.library.List())

	httpServer := &http.Server{
		Addr:         cfg.Address(),
		Handler:      a.handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	gracefulServer := server.NewGracefulServer(httpServer, logger, cfg.Server)

	gracefulServer.RegisterShutdownHook(func(ctx context.Context) error {
		logger.Info("analyzer final stats", "stats", a.analyzer.Stats())
		return nil
	})

	if err := gracefulServer.ListenAndServe(); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}

	logger.Info("application stopped gracefully")
}
