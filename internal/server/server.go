// Package server exposes the Case API: a thin synchronous HTTP surface
// over the pipeline. No state persists between requests.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/avetrov/kyclens/internal/metrics"
	"github.com/avetrov/kyclens/internal/model"
	"github.com/avetrov/kyclens/internal/pipeline"
)

// Checker runs a compliance case. Implemented by the pipeline.
type Checker interface {
	Check(ctx context.Context, profile model.UserProfile, hits []model.MediaHit, progress pipeline.Progress) (*model.ComplianceResult, error)
}

// Server is the Case API HTTP server.
type Server struct {
	checker Checker
	logger  *slog.Logger
	metrics *metrics.Metrics
	http    *http.Server
}

// New constructs the server and its router.
func New(cfg model.ServerConfig, checker Checker, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	registry := prometheus.NewRegistry()
	s := &Server{
		checker: checker,
		logger:  logger,
		metrics: metrics.New(registry),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Post("/case/check", s.handleCheck)
	r.Get("/case/sample", s.handleSample)
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	s.http = &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// ListenAndServe runs the server until Shutdown.
func (s *Server) ListenAndServe() error {
	s.logger.Info("case api listening", "addr", s.http.Addr)
	return s.http.ListenAndServe()
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Handler returns the HTTP handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// CheckRequest is the POST /case/check payload.
type CheckRequest struct {
	UserProfile model.UserProfile `json:"user_profile"`
	MediaHits   []model.MediaHit  `json:"media_hits"`
}

// CheckResponse is the POST /case/check response envelope.
type CheckResponse struct {
	Success        bool                    `json:"success"`
	Message        string                  `json:"message"`
	Result         *model.ComplianceResult `json:"result,omitempty"`
	ProcessingSecs float64                 `json:"processing_time_seconds,omitempty"`
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetReqID(r.Context())

	var req CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.UserProfile.FullName == "" {
		s.writeError(w, http.StatusBadRequest, "user_profile.full_name is required")
		return
	}

	start := time.Now()
	result, err := s.checker.Check(r.Context(), req.UserProfile, req.MediaHits, nil)
	if err != nil {
		s.logger.Error("compliance check failed", "request_id", requestID, "error", err)
		s.writeError(w, http.StatusInternalServerError, "compliance check failed: "+err.Error())
		return
	}
	elapsed := time.Since(start)

	s.metrics.CasesTotal.WithLabelValues(string(result.FinalDecision)).Inc()
	s.metrics.ArticlesAnalyzed.Add(float64(result.TotalHits))
	s.metrics.CaseDuration.Observe(elapsed.Seconds())
	if result.Partial {
		s.metrics.PartialCases.Inc()
	}

	s.logger.Info("compliance check completed",
		"request_id", requestID,
		"case_id", result.CaseID,
		"decision", result.FinalDecision,
		"score", result.DecisionScore,
		"hits", result.TotalHits,
		"partial", result.Partial,
		"duration", elapsed,
	)

	s.writeJSON(w, http.StatusOK, CheckResponse{
		Success:        true,
		Message:        "Compliance check completed successfully",
		Result:         result,
		ProcessingSecs: elapsed.Seconds(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleSample(w http.ResponseWriter, _ *http.Request) {
	profile, hits := SampleCase()
	s.writeJSON(w, http.StatusOK, CheckRequest{UserProfile: profile, MediaHits: hits})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("write response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, CheckResponse{Success: false, Message: message})
}
