// Package report builds the exportable payload for a footprint snapshot:
// ordered, labelled rows plus the static recommendation templates. Actual
// file formats (spreadsheet, CSV, PDF) are the external exporter's job;
// this package only fixes the content and its order.
package report

import (
	"github.com/rshade/footprint-engine/internal/calc"
	"github.com/rshade/footprint-engine/internal/engine"
	"github.com/rshade/footprint-engine/internal/factors"
	"github.com/rshade/footprint-engine/internal/recommend"
)

// categoryLabels are the human-readable row labels per category.
var categoryLabels = map[factors.Category]string{
	factors.Electricity:    "Electricity Emissions (tCO2e)",
	factors.Transportation: "Transportation Emissions (tCO2e)",
	factors.Refrigerants:   "Refrigerant Emissions (tCO2e)",
	factors.Mobile:         "Mobile Emissions (tCO2e)",
	factors.Combustion:     "Combustion Emissions (tCO2e)",
}

// Meta carries the organizational context attached to a report.
type Meta struct {
	Company  string `json:"company,omitempty"`
	UserName string `json:"userName,omitempty"`
	Email    string `json:"email,omitempty"`
}

// Row is one labelled report line.
type Row struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Payload is the complete exportable content for one snapshot.
type Payload struct {
	Meta            Meta                 `json:"meta"`
	Rows            []Row                `json:"rows"`
	Recommendations []recommend.Template `json:"recommendations"`
	Diagnostics     []calc.Diagnostic    `json:"diagnostics,omitempty"`
}

// Build assembles the report payload for a snapshot. Rows come in a fixed
// order: total, the five categories, then the derived metrics.
// Recommendations are ordered by the snapshot's category emissions.
func Build(snap engine.Snapshot, meta Meta) Payload {
	rows := make([]Row, 0, len(factors.Categories)+3)

	rows = append(rows, Row{Label: "Total Emissions (tCO2e)", Value: FormatTonnes(snap.TotalTonnes)})
	for _, cat := range factors.Categories {
		rows = append(rows, Row{
			Label: categoryLabels[cat],
			Value: FormatTonnes(snap.Category(cat).EmissionsTonnes),
		})
	}
	rows = append(rows,
		Row{Label: "Reduction Potential (tCO2e)", Value: FormatTonnes(snap.ReductionPotentialTonnes)},
		Row{Label: "Annual Projection (tCO2e)", Value: FormatTonnes(snap.AnnualProjectionTonnes)},
	)

	return Payload{
		Meta:            meta,
		Rows:            rows,
		Recommendations: recommend.ForSnapshot(snap),
		Diagnostics:     snap.Diagnostics,
	}
}
