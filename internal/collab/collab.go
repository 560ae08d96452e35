// Package collab declares the interfaces of the external collaborators
// that consume footprint snapshots: the AI insight service, the report
// exporter, and the snapshot store. The engine owns none of them; hosts
// inject implementations at the boundary.
package collab

import (
	"context"

	"github.com/rshade/footprint-engine/internal/engine"
	"github.com/rshade/footprint-engine/internal/report"
)

// InsightRequest carries a snapshot plus the organizational context the
// insight service tailors its recommendations to.
type InsightRequest struct {
	Snapshot engine.Snapshot `json:"snapshot"`

	// Industry is the organization's industry sector, free text.
	Industry string `json:"industry,omitempty"`

	// CompanySize describes the organization's size, free text.
	CompanySize string `json:"companySize,omitempty"`
}

// Insights is the insight service's free-text response. The engine never
// parses or interprets it.
type Insights struct {
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// InsightService generates natural-language recommendations from a
// category breakdown. Implementations typically call an external model.
type InsightService interface {
	GenerateInsights(ctx context.Context, req InsightRequest) (Insights, error)
}

// ReportExporter turns a report payload into a downloadable document.
// It returns the document bytes and their content type.
type ReportExporter interface {
	Export(ctx context.Context, payload report.Payload) ([]byte, string, error)
}

// SnapshotStore persists snapshots under an identifying key. Persistence
// is entirely the collaborator's concern; the engine only hands the
// snapshot over.
type SnapshotStore interface {
	Save(ctx context.Context, key string, snap engine.Snapshot) error
}
