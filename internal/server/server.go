// Package server exposes the prediction engine over a small JSON API.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Satayu47/Thai-Lottery-Prediction/internal/config"
	"github.com/Satayu47/Thai-Lottery-Prediction/internal/logger"
	"github.com/Satayu47/Thai-Lottery-Prediction/internal/predict"
)

// Version reported by the health endpoint.
const Version = "1.0.0"

const shutdownTimeout = 10 * time.Second

// Server wires the prediction service into HTTP handlers with its own
// metrics registry, so tests can run several instances side by side.
type Server struct {
	service  *predict.Service
	backfill config.BackfillConfig
	metrics  *Metrics
	registry *prometheus.Registry
}

// New assembles the HTTP surface around svc.
func New(svc *predict.Service, backfill config.BackfillConfig) *Server {
	registry := prometheus.NewRegistry()
	return &Server{
		service:  svc,
		backfill: backfill,
		metrics:  NewMetrics(registry),
		registry: registry,
	}
}

// Router mounts every endpoint and returns the handler tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/prediction", s.handlePrediction)
		r.Post("/sync", s.handleSync)
		r.Post("/backfill", s.handleBackfill)
		r.Get("/history", s.handleHistory)
		r.Get("/stats/digits", s.handleDigits)
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	return r
}

// Run serves the API on addr until ctx is cancelled, then drains open
// connections before returning.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP API listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP API")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
