// Package server exposes estimation over HTTP.
//
// Endpoints:
//
//	GET /v1/pi/estimate?samples=&seed=&workers= - run one estimation
//	GET /v1/pi/runs?limit=                      - list stored runs, newest first
//	GET /v1/pi/runs/:id                         - fetch one stored run
//	GET /health                                 - liveness
//	GET /metrics                                - Prometheus exposition
//
// A seed of 0 selects the default seed and -1 a clock-derived one; the
// seed actually used is returned in the response.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/katalvlaran/lvmc/metrics"
	"github.com/katalvlaran/lvmc/montecarlo"
	"github.com/katalvlaran/lvmc/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultMaxSamples bounds a single HTTP estimation request.
const DefaultMaxSamples = 100_000_000

const shutdownTimeout = 5 * time.Second

// Deps are the collaborators of a Server. Store may be nil, in which case
// runs are not recorded and the /v1/pi/runs endpoints answer 503.
type Deps struct {
	Logger     *slog.Logger
	Store      *store.Repository
	Registry   *prometheus.Registry
	Defaults   montecarlo.Options // Seed, Workers and ChunkSize used when a query omits them
	Samples    int                // default sample count
	MaxSamples int                // 0 means DefaultMaxSamples
}

// Server wires handlers, middleware and metrics onto a gin engine.
type Server struct {
	logger     *slog.Logger
	store      *store.Repository
	metrics    *metrics.Metrics
	defaults   montecarlo.Options
	samples    int
	maxSamples int
	engine     *gin.Engine
}

// New builds a Server and registers its metrics on d.Registry, or on a
// fresh registry when d.Registry is nil.
func New(d Deps) *Server {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Registry == nil {
		d.Registry = prometheus.NewRegistry()
	}
	if d.MaxSamples <= 0 {
		d.MaxSamples = DefaultMaxSamples
	}
	if d.Samples <= 0 {
		d.Samples = 1000
	}

	s := &Server{
		logger:     d.Logger,
		store:      d.Store,
		metrics:    metrics.New(d.Registry),
		defaults:   d.Defaults,
		samples:    d.Samples,
		maxSamples: d.MaxSamples,
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(d.Logger))
	engine.GET("/health", s.handleHealth)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))

	v1 := engine.Group("/v1/pi")
	v1.GET("/estimate", s.handleEstimate)
	v1.GET("/runs", s.handleListRuns)
	v1.GET("/runs/:id", s.handleGetRun)

	s.engine = engine
	return s
}

// Handler returns the HTTP handler, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listening on %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("HTTP server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	return nil
}
