package collab

import (
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/footprint-engine/internal/calc"
	"github.com/rshade/footprint-engine/internal/engine"
	"github.com/rshade/footprint-engine/internal/report"
)

// fakeInsightService echoes the dominant category back, standing in for
// the external model-backed implementation.
type fakeInsightService struct{}

func (fakeInsightService) GenerateInsights(_ context.Context, req InsightRequest) (Insights, error) {
	cat, _ := req.Snapshot.DominantCategory()
	return Insights{Summary: "focus on " + string(cat)}, nil
}

// jsonExporter serializes the payload as JSON, the simplest possible
// exporter implementation.
type jsonExporter struct{}

func (jsonExporter) Export(_ context.Context, payload report.Payload) ([]byte, string, error) {
	data, err := json.Marshal(payload)
	return data, "application/json", err
}

type memoryStore struct {
	saved map[string]engine.Snapshot
}

func (m *memoryStore) Save(_ context.Context, key string, snap engine.Snapshot) error {
	m.saved[key] = snap
	return nil
}

func TestCollaboratorsConsumeSnapshots(t *testing.T) {
	e := engine.New(engine.DefaultPolicy())
	snap := e.Compute(calc.ActivityInput{
		Combustion: calc.CombustionInput{FuelType: "coal", Consumption: 500},
	})

	var insight InsightService = fakeInsightService{}
	out, err := insight.GenerateInsights(context.Background(), InsightRequest{
		Snapshot: snap,
		Industry: "manufacturing",
	})
	require.NoError(t, err)
	assert.Equal(t, "focus on combustion", out.Summary)

	var exporter ReportExporter = jsonExporter{}
	data, contentType, err := exporter.Export(context.Background(), report.Build(snap, report.Meta{}))
	require.NoError(t, err)
	assert.Equal(t, "application/json", contentType)

	var decoded report.Payload
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Total Emissions (tCO2e)", decoded.Rows[0].Label)

	var store SnapshotStore = &memoryStore{saved: make(map[string]engine.Snapshot)}
	require.NoError(t, store.Save(context.Background(), "org-1", snap))
}
