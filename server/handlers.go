package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/katalvlaran/lvmc/config"
	"github.com/katalvlaran/lvmc/export"
	"github.com/katalvlaran/lvmc/montecarlo"
	"github.com/katalvlaran/lvmc/store"
)

// Error codes carried in ErrorResponse.Code.
const (
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeInvalidID       = "INVALID_ID"
	CodeRunNotFound     = "RUN_NOT_FOUND"
	CodeStoreDisabled   = "STORE_DISABLED"
	CodeEstimateFailed  = "ESTIMATE_FAILED"
	CodeStoreFailed     = "STORE_FAILED"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
	Store  bool   `json:"store"`
}

// RunsResponse is the body of GET /v1/pi/runs.
type RunsResponse struct {
	Runs  []store.Record `json:"runs"`
	Count int            `json:"count"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "healthy", Store: s.store != nil})
}

// handleEstimate handles GET /v1/pi/estimate.
//
// Response:
//
//	200 OK: export.Summary (with id when the run was recorded)
//	400 Bad Request: malformed or out-of-range query parameter
//	500 Internal Server Error: estimation or storage failure
//
// seed=-1 derives the seed from the clock, as on the command line.
// Rejected requests are not counted in lvmc_runs_total.
func (s *Server) handleEstimate(c *gin.Context) {
	logger := loggerFrom(c, s.logger).With("handler", "handleEstimate")

	samples, err := intQuery(c, "samples", s.samples)
	if err == nil && (samples <= 0 || samples > s.maxSamples) {
		err = errors.New("samples must be in [1, " + strconv.Itoa(s.maxSamples) + "]")
	}
	opts := s.defaults
	if err == nil {
		opts.Seed, err = int64Query(c, "seed", s.defaults.Seed)
		if err == nil && opts.Seed < config.RandomSeed {
			err = errors.New("seed must be ≥ -1")
		}
		if opts.Seed == config.RandomSeed {
			opts.Seed = time.Now().UnixNano()
		}
	}
	if err == nil {
		opts.Workers, err = intQuery(c, "workers", s.defaults.Workers)
	}
	if err != nil {
		logger.Warn("Invalid estimate request", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: CodeInvalidArgument})
		return
	}
	opts.KeepPoints = false
	opts.OnChunk = nil

	est, err := montecarlo.NewEstimator(opts)
	if err != nil {
		logger.Warn("Invalid estimator options", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: CodeInvalidArgument})
		return
	}

	start := time.Now()
	run, err := est.Estimate(c.Request.Context(), samples)
	took := time.Since(start)
	if err != nil {
		s.metrics.ObserveFailure()
		status, code := http.StatusInternalServerError, CodeEstimateFailed
		if errors.Is(err, montecarlo.ErrInvalidArgument) {
			status, code = http.StatusBadRequest, CodeInvalidArgument
		}
		logger.Error("Estimate failed", "error", err)
		c.JSON(status, ErrorResponse{Error: err.Error(), Code: code})
		return
	}
	s.metrics.ObserveRun(run, took)

	used := est.Options()
	summary := export.Summarize(run)
	summary.Seed = used.Seed
	summary.Workers = used.Workers
	summary.DurationMS = float64(took.Microseconds()) / 1000

	if s.store != nil {
		rec, err := s.store.SaveRun(c.Request.Context(), store.Record{
			Samples:  run.N,
			Inside:   run.Inside,
			Estimate: run.Estimate,
			AbsError: run.AbsError(),
			Seed:     used.Seed,
			Workers:  used.Workers,
			Duration: took,
		})
		if err != nil {
			logger.Error("Recording run failed", "error", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: CodeStoreFailed})
			return
		}
		summary.ID = rec.ID.String()
	}

	logger.Info("Estimate completed",
		"samples", run.N,
		"estimate", run.Estimate,
		"duration", took)
	c.JSON(http.StatusOK, summary)
}

// handleListRuns handles GET /v1/pi/runs.
func (s *Server) handleListRuns(c *gin.Context) {
	if !s.requireStore(c) {
		return
	}
	limit, err := intQuery(c, "limit", store.DefaultListLimit)
	if err == nil && limit <= 0 {
		err = errors.New("limit must be positive")
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: CodeInvalidArgument})
		return
	}

	runs, err := s.store.ListRuns(c.Request.Context(), limit)
	if err != nil {
		loggerFrom(c, s.logger).Error("Listing runs failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: CodeStoreFailed})
		return
	}
	c.JSON(http.StatusOK, RunsResponse{Runs: runs, Count: len(runs)})
}

// handleGetRun handles GET /v1/pi/runs/:id.
func (s *Server) handleGetRun(c *gin.Context) {
	if !s.requireStore(c) {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid run id", Code: CodeInvalidID})
		return
	}

	rec, err := s.store.GetRun(c.Request.Context(), id)
	if errors.Is(err, store.ErrRunNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: CodeRunNotFound})
		return
	}
	if err != nil {
		loggerFrom(c, s.logger).Error("Getting run failed", "error", err, "run_id", id)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: CodeStoreFailed})
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) requireStore(c *gin.Context) bool {
	if s.store != nil {
		return true
	}
	c.JSON(http.StatusServiceUnavailable, ErrorResponse{
		Error: "run history is disabled",
		Code:  CodeStoreDisabled,
	})
	return false
}

func intQuery(c *gin.Context, key string, def int) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(key + " must be an integer")
	}
	return v, nil
}

func int64Query(c *gin.Context, key string, def int64) (int64, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.New(key + " must be an integer")
	}
	return v, nil
}

func loggerFrom(c *gin.Context, fallback *slog.Logger) *slog.Logger {
	if l, ok := c.Get(loggerKey); ok {
		if logger, ok := l.(*slog.Logger); ok {
			return logger
		}
	}
	return fallback
}
