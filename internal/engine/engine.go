package engine

import (
	"github.com/rs/zerolog"

	"github.com/rshade/footprint-engine/internal/calc"
	"github.com/rshade/footprint-engine/internal/factors"
)

// Engine computes footprint snapshots from activity input. It carries no
// mutable state; the policy and logger are fixed at construction.
type Engine struct {
	policy Policy
	logger zerolog.Logger
}

// New creates an engine with the given policy. Zero-valued policy fields
// resolve to the defaults.
func New(policy Policy) *Engine {
	return &Engine{policy: policy.normalized(), logger: zerolog.Nop()}
}

// WithLogger returns a copy of the engine that logs fallback and
// unknown-factor diagnostics through the given logger. The calculators
// themselves never log; diagnostics stay data either way.
func (e *Engine) WithLogger(logger zerolog.Logger) *Engine {
	clone := *e
	clone.logger = logger
	return &clone
}

// Policy returns the engine's effective policy constants.
func (e *Engine) Policy() Policy {
	return e.policy
}

// Compute runs all five category calculators over the input and
// aggregates the results into a fresh snapshot. Input validation
// diagnostics are included alongside calculator diagnostics.
func (e *Engine) Compute(in calc.ActivityInput) Snapshot {
	in = e.applyPolicy(in)

	diags := in.Validate()
	results := make(map[factors.Category]calc.CategoryResult, len(factors.Categories))
	for _, cat := range factors.Categories {
		result, categoryDiags := calc.CategoryEmissions(cat, in)
		results[cat] = result
		diags = append(diags, categoryDiags...)
	}

	return e.Aggregate(results, diags)
}

// ComputeCategory recomputes a single category from the input. Callers
// tracking per-field mutations use this to refresh only the affected
// category, then rebuild the snapshot with Aggregate.
func (e *Engine) ComputeCategory(category factors.Category, in calc.ActivityInput) (calc.CategoryResult, []calc.Diagnostic) {
	return calc.CategoryEmissions(category, e.applyPolicy(in))
}

// Aggregate builds a snapshot from the current set of category results.
// The total is the exact sum of the five category values; missing
// categories contribute zero. The results map is copied, never retained.
func (e *Engine) Aggregate(results map[factors.Category]calc.CategoryResult, diags []calc.Diagnostic) Snapshot {
	perCategory := make(map[factors.Category]calc.CategoryResult, len(factors.Categories))

	var total float64
	for _, cat := range factors.Categories {
		result, ok := results[cat]
		if !ok {
			result = calc.CategoryResult{Category: cat}
		}
		perCategory[cat] = result
		total += result.EmissionsTonnes
	}

	for _, d := range diags {
		e.logger.Warn().
			Str("category", string(d.Category)).
			Str("code", string(d.Code)).
			Str("field", d.Field).
			Msg(d.Message)
	}

	return Snapshot{
		PerCategory:              perCategory,
		TotalTonnes:              total,
		ReductionPotentialTonnes: total * e.policy.ReductionRate,
		AnnualProjectionTonnes:   total * e.policy.ProjectionMonths,
		Diagnostics:              diags,
	}
}

// applyPolicy fills the policy-level grid factor into the input when the
// caller did not override it, keeping the calculators policy-unaware.
func (e *Engine) applyPolicy(in calc.ActivityInput) calc.ActivityInput {
	if in.Electricity.GridFactor <= 0 {
		in.Electricity.GridFactor = e.policy.GridFactor
	}
	return in
}
