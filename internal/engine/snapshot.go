package engine

import (
	"github.com/rshade/footprint-engine/internal/calc"
	"github.com/rshade/footprint-engine/internal/factors"
)

// Snapshot is the immutable result of one full calculation pass. It is an
// ephemeral value object: the engine never retains one, and any storage is
// an external collaborator's responsibility.
type Snapshot struct {
	// PerCategory holds one result per footprint category, always all five.
	PerCategory map[factors.Category]calc.CategoryResult `json:"perCategory"`

	// TotalTonnes is the exact sum of the five category values in tonnes
	// CO2e.
	TotalTonnes float64 `json:"total"`

	// ReductionPotentialTonnes is TotalTonnes scaled by the policy's
	// reduction rate.
	ReductionPotentialTonnes float64 `json:"reductionPotential"`

	// AnnualProjectionTonnes is TotalTonnes scaled by the policy's
	// projection months.
	AnnualProjectionTonnes float64 `json:"annualProjection"`

	// Diagnostics lists the warnings recorded during the pass: validation
	// findings first, then calculator diagnostics in category order.
	Diagnostics []calc.Diagnostic `json:"diagnostics,omitempty"`
}

// Category returns the result for one category. Missing entries (only
// possible on a zero-valued Snapshot) come back as an empty result.
func (s Snapshot) Category(cat factors.Category) calc.CategoryResult {
	if r, ok := s.PerCategory[cat]; ok {
		return r
	}
	return calc.CategoryResult{Category: cat}
}

// DominantCategory returns the category with the largest emissions and its
// share of the total. Ties resolve to the earlier category in the fixed
// order; a zero total reports the first category with share 0.
func (s Snapshot) DominantCategory() (factors.Category, float64) {
	dominant := factors.Categories[0]
	var max float64
	for _, cat := range factors.Categories {
		if v := s.Category(cat).EmissionsTonnes; v > max {
			dominant = cat
			max = v
		}
	}
	if s.TotalTonnes <= 0 {
		return dominant, 0
	}
	return dominant, max / s.TotalTonnes
}
