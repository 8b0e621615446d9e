package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"undercover/internal/app"
	"undercover/internal/config"
	"undercover/internal/domain"
	"undercover/internal/materials"
	"undercover/internal/preset"
	httpTransport "undercover/internal/transport/http"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg := config.Load()

	logger := newLogger(os.Stdout, cfg.Logging)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting undercover game server",
		"env", cfg.Server.Env,
		"addr", cfg.GetAddr(),
		"model", cfg.Generator.Model,
		"generatorConfigured", cfg.Generator.APIKey != "",
	)

	presets := preset.New(domain.DefaultRand())
	provider, err := materials.NewGeminiProvider(ctx, cfg.GeminiConfig(), logger)
	if err != nil {
		return fmt.Errorf("create generator: %w", err)
	}

	hub := app.NewGameHub(materials.NewService(provider, presets, logger), app.Options{
		Settings:     cfg.SessionSettings(),
		RevealDelay:  cfg.Game.RevealDelay,
		TickInterval: cfg.Game.TickInterval,
	}, cfg.Game.StaleSessionTimeout, logger)
	defer hub.Close()

	server := httpTransport.NewServer(cfg, hub, presets, logger)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Start()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// newLogger builds the process logger from LOG_LEVEL and LOG_FORMAT
func newLogger(w io.Writer, cfg config.LoggingConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLogLevel(cfg.Level)}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// parseLogLevel accepts debug, info, warn or error; anything else is info
func parseLogLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
