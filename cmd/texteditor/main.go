package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/darrylwongqz/ai-text-editor/internal/adapter"
	"github.com/darrylwongqz/ai-text-editor/internal/config"
	"github.com/darrylwongqz/ai-text-editor/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	envFile := flag.String("env-file", ".env", "dotenv file to load before reading the environment")
	useMock := flag.Bool("mock", false, "use mock adapter instead of the OpenAI API")
	port := flag.Int("port", 0, "override listen port")
	flag.Parse()

	// A missing .env is normal outside development.
	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		fatal("dotenv", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal("config", err)
	}
	if *port > 0 {
		cfg.Port = *port
	}

	slog.SetDefault(newLogger(cfg))

	t := buildTransformer(cfg, *useMock)
	handler := server.SetupMux(t, cfg)

	if cfg.APIKey != "" {
		slog.Info("auth: API key required (X-API-Key header)")
	} else {
		slog.Info("auth: disabled (no api_key configured)")
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("text editor api listening", "addr", addr, "adapter", t.Name())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fatal("server", err)
		}
	}()

	<-done
	slog.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		fatal("shutdown", err)
	}
	slog.Info("server stopped")
}

func buildTransformer(cfg config.Config, useMock bool) adapter.Transformer {
	if useMock {
		slog.Info("mode: mock adapter enabled")
		return &adapter.MockAdapter{Delay: 500 * time.Millisecond}
	}

	if _, ok := os.LookupEnv(adapter.EnvAPIKey); !ok {
		// The key is read per request; transforms fail until it is set.
		slog.Warn("mode: openai enabled but " + adapter.EnvAPIKey + " is not set")
	}
	base := os.Getenv(adapter.EnvBaseURL)
	if base == "" {
		base = "default"
	}
	slog.Info("mode: openai", "base_url", base, "timeout", cfg.UpstreamTimeout())

	return &adapter.OpenAIAdapter{
		Client: &http.Client{Timeout: cfg.UpstreamTimeout()},
	}
}

func newLogger(cfg config.Config) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func fatal(stage string, err error) {
	slog.Error(stage, "error", err)
	os.Exit(1)
}
