package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/Satayu47/Thai-Lottery-Prediction/internal/logger"
	"github.com/Satayu47/Thai-Lottery-Prediction/internal/stats"
)

const maxBackfillYears = 50

// HealthResponse is the payload returned by the health endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// APIError is the JSON envelope for every non-2xx response.
type APIError struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, APIError{Error: msg})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   Version,
	})
}

func (s *Server) handlePrediction(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	report := s.service.Predict(r.Context())

	s.metrics.ObserveSync(string(report.Sync.Outcome))
	s.metrics.ObservePrediction(string(report.DrawKind), time.Since(start).Seconds())
	s.metrics.SetHistorySize(report.HistorySize)

	logger.Info("Prediction served",
		"request_id", middleware.GetReqID(r.Context()),
		"run_id", report.RunID,
		"target", report.TargetDate.String(),
		"sync", report.Sync.Outcome,
		"elapsed", time.Since(start))
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleSync(w http.ResponseWriter, r *http.Request) {
	status := s.service.Sync(r.Context())
	s.metrics.ObserveSync(string(status.Outcome))
	s.metrics.SetHistorySize(s.service.Store().Len())
	writeJSON(w, http.StatusOK, status)
}

func (s *Server) handleBackfill(w http.ResponseWriter, r *http.Request) {
	years := s.backfill.Years
	if v := r.URL.Query().Get("years"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 || parsed > maxBackfillYears {
			writeError(w, http.StatusBadRequest, "years must be a positive integer up to 50")
			return
		}
		years = parsed
	}

	summary, err := s.service.Backfill(r.Context(), years, s.backfill.Concurrency)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.metrics.SetHistorySize(s.service.Store().Len())
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	records := s.service.Store().Records()
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		if limit < len(records) {
			records = records[:limit]
		}
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleDigits(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, stats.DigitFrequency(s.service.Store().Records()))
}
