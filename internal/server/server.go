package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/darrylwongqz/ai-text-editor/internal/adapter"
	"github.com/darrylwongqz/ai-text-editor/internal/config"
	"github.com/darrylwongqz/ai-text-editor/internal/handler"
	"github.com/darrylwongqz/ai-text-editor/internal/middleware"
)

// SetupMux wires handlers with the full middleware chain.
func SetupMux(t adapter.Transformer, cfg config.Config) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", handler.Health())
	mux.HandleFunc("/api/transform", handler.Transform(t))
	mux.Handle("/metrics", promhttp.Handler())

	return middleware.Chain(mux, middleware.Options{
		APIKey:         cfg.APIKey,
		AllowedOrigins: cfg.AllowedOrigins,
		RateLimiter:    middleware.NewRateLimiter(cfg.RateLimit, time.Minute),
		MaxBodyBytes:   cfg.MaxBodyBytes,
		RequestTimeout: cfg.RequestTimeout(),
	})
}
