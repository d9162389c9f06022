package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"safety-dashboard-go/internal/alerts"
	"safety-dashboard-go/internal/api"
	"safety-dashboard-go/internal/config"
	"safety-dashboard-go/internal/hub"
	"safety-dashboard-go/internal/logging"
	"safety-dashboard-go/internal/messaging"
)

// @title Safety Dashboard API
// @version 1.0
// @description Real-time safety alert ingestion and broadcast backend
func main() {
	// Setup structured logging
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configuration
	cfg := config.Load()

	// Set log level
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Str("level", cfg.LogLevel).Msg("Invalid log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Optional embedded log viewer
	if cfg.LogdyEnabled {
		if writer, _, err := logging.StartLogdy(cfg); err == nil {
			log.Logger = log.Output(io.MultiWriter(zerolog.ConsoleWriter{Out: os.Stderr}, writer))
		} else {
			log.Warn().Err(err).Msg("Failed to start Logdy, continuing without it")
		}
	}

	log.Info().
		Str("version", cfg.Version).
		Str("environment", cfg.Environment).
		Int("port", cfg.Port).
		Int("max_alerts", cfg.MaxAlerts).
		Bool("nats_enabled", cfg.NatsEnabled).
		Msg("Starting safety dashboard backend")

	// Alert pipeline: store + broadcast hub
	store := alerts.NewStore(cfg.MaxAlerts)
	gateway := hub.New()
	service := alerts.NewService(store, gateway)

	// Optional NATS ingestion bridge. Losing the bridge is not fatal:
	// producers can always fall back to the HTTP endpoint.
	var broker *messaging.Service
	if cfg.NatsEnabled {
		broker, err = messaging.NewService(cfg)
		if err != nil {
			log.Warn().Err(err).Msg("NATS unavailable, continuing with HTTP ingestion only")
		} else if err := broker.SubscribeAlerts(service); err != nil {
			log.Warn().Err(err).Msg("Failed to subscribe to NATS alerts")
		}
	}

	// Create and start server
	server := api.NewServer(cfg, service)

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutdown signal received")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if broker != nil {
		if err := broker.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("NATS shutdown error")
		}
	}

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	} else {
		log.Info().Msg("Server shutdown complete")
	}
}
