package main

import (
	"net/http"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/rshade/footprint-engine/internal/calc"
	"github.com/rshade/footprint-engine/internal/engine"
	"github.com/rshade/footprint-engine/internal/report"
)

// traceHeader carries the request correlation ID. Incoming values are
// reused; absent ones are generated.
const traceHeader = "X-Trace-Id"

type server struct {
	engine *engine.Engine
	store  *engine.Store
	logger zerolog.Logger

	computations prometheus.Counter
	diagnostics  prometheus.Counter
}

// newServer wires the engine behind an HTTP mux. Each server registers
// its metrics on the given registry so tests can run servers in parallel.
func newServer(eng *engine.Engine, logger zerolog.Logger, reg *prometheus.Registry) (*server, *http.ServeMux) {
	s := &server{
		engine: eng,
		store:  engine.NewStore(),
		logger: logger,
		computations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "footprint_computations_total",
			Help: "Number of footprint snapshots computed.",
		}),
		diagnostics: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "footprint_diagnostics_total",
			Help: "Number of per-category diagnostics recorded.",
		}),
	}
	reg.MustRegister(s.computations, s.diagnostics)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/footprint", s.handleCompute)
	mux.HandleFunc("GET /v1/footprint", s.handleCurrent)
	mux.HandleFunc("POST /v1/report", s.handleReport)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return s, mux
}

// traceID extracts the request's trace ID or generates a UUID.
func traceID(r *http.Request) string {
	if id := r.Header.Get(traceHeader); id != "" {
		return id
	}
	return uuid.New().String()
}

func (s *server) handleCompute(w http.ResponseWriter, r *http.Request) {
	trace := traceID(r)

	var input calc.ActivityInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.logger.Warn().Str("trace_id", trace).Err(err).Msg("malformed activity input")
		s.writeError(w, trace, http.StatusBadRequest, "malformed activity input")
		return
	}

	snap := s.engine.Compute(input)
	s.store.Publish(snap)

	s.computations.Inc()
	s.diagnostics.Add(float64(len(snap.Diagnostics)))

	s.logger.Info().
		Str("trace_id", trace).
		Float64("total_tonnes", snap.TotalTonnes).
		Int("diagnostics", len(snap.Diagnostics)).
		Msg("footprint computed")

	s.writeJSON(w, trace, http.StatusOK, snap)
}

func (s *server) handleCurrent(w http.ResponseWriter, r *http.Request) {
	trace := traceID(r)

	snap, ok := s.store.Load()
	if !ok {
		s.writeError(w, trace, http.StatusNotFound, "no footprint computed yet")
		return
	}
	s.writeJSON(w, trace, http.StatusOK, snap)
}

// reportRequest is the optional body of POST /v1/report.
type reportRequest struct {
	Meta report.Meta `json:"meta"`
}

func (s *server) handleReport(w http.ResponseWriter, r *http.Request) {
	trace := traceID(r)

	snap, ok := s.store.Load()
	if !ok {
		s.writeError(w, trace, http.StatusNotFound, "no footprint computed yet")
		return
	}

	var req reportRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, trace, http.StatusBadRequest, "malformed report request")
			return
		}
	}

	s.writeJSON(w, trace, http.StatusOK, report.Build(snap, req.Meta))
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *server) writeJSON(w http.ResponseWriter, trace string, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(traceHeader, trace)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Str("trace_id", trace).Err(err).Msg("encoding response")
	}
}

type errorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"traceId"`
}

func (s *server) writeError(w http.ResponseWriter, trace string, status int, msg string) {
	s.writeJSON(w, trace, status, errorResponse{Error: msg, TraceID: trace})
}
