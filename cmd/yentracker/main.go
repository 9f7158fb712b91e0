package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ceugb69-B/yen-tracker2/internal/api"
	"github.com/ceugb69-B/yen-tracker2/internal/backend"
	"github.com/ceugb69-B/yen-tracker2/internal/config"
	applog "github.com/ceugb69-B/yen-tracker2/internal/log"
	"github.com/ceugb69-B/yen-tracker2/internal/scan"
	"github.com/ceugb69-B/yen-tracker2/internal/services"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(slog.LevelInfo)
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	factory := backend.NewFactory(logger.Logger)
	result, err := factory.CreateBackend(ctx, backend.Config{
		Type:         backend.Type(cfg.DataBackend),
		SQLiteDBPath: cfg.SQLiteDBPath,
		AMQPURL:      cfg.AMQPURL,
		AMQPExchange: cfg.AMQPExchange,
		AMQPQueue:    cfg.AMQPQueue,
	})
	if err != nil {
		logger.Error("Failed to initialize backend", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	defer func() {
		if err := result.Cleanup(); err != nil {
			logger.Error("Backend cleanup error", "error", err)
		}
	}()

	ledgerSvc := services.NewLedgerService(result.Backend, result.Publisher)

	// Receipt scanning is optional and degrades cleanly when unconfigured.
	var classifier scan.Classifier
	if cfg.ScanEnabled() {
		classifier, err = scan.NewClient(scan.Config{
			APIKey:      cfg.ScanAPIKey,
			BaseURL:     cfg.ScanBaseURL,
			Model:       cfg.ScanModel,
			MaxTokens:   cfg.ScanMaxTokens,
			Temperature: cfg.ScanTemperature,
		})
		if err != nil {
			logger.Warn("Failed to initialize receipt classifier, scanning disabled", "error", err)
			classifier = nil
		} else {
			logger.Info("Receipt scanning enabled", "model", cfg.ScanModel)
		}
	}
	scanSvc := services.NewScanService(classifier)

	srv := api.NewServer(":"+cfg.Port, ledgerSvc, scanSvc, logger)

	// Graceful shutdown handling
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting yentracker server", "port", cfg.Port, "backend", cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
