package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/footprint-engine/internal/engine"
	"github.com/rshade/footprint-engine/internal/report"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	eng := engine.New(engine.DefaultPolicy())
	_, mux := newServer(eng, zerolog.Nop(), prometheus.NewRegistry())
	return mux
}

func TestHandleCompute(t *testing.T) {
	mux := newTestMux(t)

	body := `{
		"electricity": {"usage": 1000, "unit": "kWh", "gridFactor": 0.5},
		"combustion": {"fuelType": "natural-gas", "consumption": 100, "period": "annually"}
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1/footprint", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Trace-Id"))

	var snap engine.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.InDelta(t, 2.9, snap.TotalTonnes, 1e-9)
	assert.InDelta(t, 0.87, snap.ReductionPotentialTonnes, 1e-9)
	assert.Len(t, snap.PerCategory, 5)
}

func TestHandleComputeMalformed(t *testing.T) {
	mux := newTestMux(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/footprint", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error   string `json:"error"`
		TraceID string `json:"traceId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
	assert.NotEmpty(t, resp.TraceID)
}

func TestHandleComputePropagatesTraceID(t *testing.T) {
	mux := newTestMux(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/footprint", strings.NewReader("{}"))
	req.Header.Set("X-Trace-Id", "trace-123")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "trace-123", rec.Header().Get("X-Trace-Id"))
}

func TestHandleCurrent(t *testing.T) {
	mux := newTestMux(t)

	// Nothing computed yet.
	req := httptest.NewRequest(http.MethodGet, "/v1/footprint", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)

	// Compute, then the snapshot is retrievable.
	req = httptest.NewRequest(http.MethodPost, "/v1/footprint",
		strings.NewReader(`{"electricity": {"usage": 1000}}`))
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/v1/footprint", nil)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var snap engine.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.InDelta(t, 0.5, snap.TotalTonnes, 1e-9)
}

func TestHandleReport(t *testing.T) {
	mux := newTestMux(t)

	// No snapshot yet.
	req := httptest.NewRequest(http.MethodPost, "/v1/report", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/v1/footprint",
		strings.NewReader(`{"electricity": {"usage": 1000}}`))
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/v1/report",
		strings.NewReader(`{"meta": {"company": "Acme"}}`))
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload report.Payload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "Acme", payload.Meta.Company)
	require.NotEmpty(t, payload.Rows)
	assert.Equal(t, "Total Emissions (tCO2e)", payload.Rows[0].Label)
	assert.Equal(t, "0.500", payload.Rows[0].Value)
	assert.NotEmpty(t, payload.Recommendations)
}

func TestHandleHealth(t *testing.T) {
	mux := newTestMux(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	mux := newTestMux(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/footprint", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "footprint_computations_total 1")
}

func TestParseOptions(t *testing.T) {
	opts, err := parseOptions([]string{"-listen", ":9000", "-config", "engine.yaml"})
	require.NoError(t, err)
	assert.Equal(t, ":9000", opts.ListenAddr)
	assert.Equal(t, "engine.yaml", opts.ConfigPath)

	opts, err = parseOptions(nil)
	require.NoError(t, err)
	assert.Equal(t, ":8080", opts.ListenAddr)
	assert.Empty(t, opts.ConfigPath)

	_, err = parseOptions([]string{"-timeout", "banana"})
	require.Error(t, err)
}
