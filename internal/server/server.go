// Package server wires handlers and middleware into a configured
// http.Server.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/phonetrace/phonetrace/internal/auth"
	"github.com/phonetrace/phonetrace/internal/config"
	"github.com/phonetrace/phonetrace/internal/geocode"
	"github.com/phonetrace/phonetrace/internal/http/handlers"
	"github.com/phonetrace/phonetrace/internal/metrics"
	"github.com/phonetrace/phonetrace/internal/middleware"
	"github.com/phonetrace/phonetrace/internal/phone"
	"github.com/phonetrace/phonetrace/internal/service"
	"github.com/phonetrace/phonetrace/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New constructs every component explicitly and wires the routes. All
// dependencies flow through constructors; nothing hangs off package globals.
func New(cfg config.Config, store storage.Store, m *metrics.Metrics, logger *slog.Logger) *Server {
	parser := phone.NewParser(cfg.DefaultRegion)
	geocoder := geocode.NewOpenCage(cfg.OpenCageAPIKey)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
	authenticator := auth.NewPasswordAuthenticator(store)

	resolver := service.NewResolver(parser, geocoder, m, logger)
	history := service.NewHistoryService(store, logger)

	mux := http.NewServeMux()
	handlers.NewHealthHandler(time.Now()).Register(mux)
	handlers.NewAuthHandler(authenticator, jwtManager, m, logger).Register(mux)
	handlers.NewTrackHandler(resolver, history, jwtManager, logger).Register(mux)
	handlers.NewHistoryHandler(history, jwtManager, logger).Register(mux)
	handlers.NewValidateHandler(parser).Register(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	handler := middleware.Logging(middleware.CORS(mux))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
