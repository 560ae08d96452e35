// Package engine aggregates per-category emission results into an
// immutable FootprintSnapshot and derives the summary metrics. The engine
// is stateless and synchronous: identical activity input always yields an
// identical snapshot, and a category-level failure degrades that category
// to zero with a diagnostic instead of aborting the snapshot.
package engine

const (
	// DefaultReductionRate is the assumed achievable reduction share of
	// the total footprint. It is a flat policy constant, not derived from
	// category-specific abatement curves.
	DefaultReductionRate = 0.30

	// DefaultProjectionMonths is the multiplier turning the current total
	// into an annual projection. The total is treated as a monthly figure
	// regardless of each category's actual reporting period; combined
	// with the combustion period multiplier this can double-count annual
	// combustion input. The behavior is kept literally for compatibility
	// with existing reports.
	DefaultProjectionMonths = 12.0
)

// Policy holds the externally configurable calculation constants.
type Policy struct {
	// GridFactor is the grid emission factor in kg CO2e per kWh applied
	// when the activity input does not carry its own override.
	GridFactor float64 `yaml:"grid_factor" json:"gridFactor"`

	// ReductionRate is the reduction-potential share of the total.
	ReductionRate float64 `yaml:"reduction_rate" json:"reductionRate"`

	// ProjectionMonths is the annual-projection multiplier.
	ProjectionMonths float64 `yaml:"projection_months" json:"projectionMonths"`
}

// DefaultPolicy returns the standard policy constants.
func DefaultPolicy() Policy {
	return Policy{
		GridFactor:       0.5,
		ReductionRate:    DefaultReductionRate,
		ProjectionMonths: DefaultProjectionMonths,
	}
}

// normalized fills zero-valued fields with their defaults so a partially
// populated Policy (e.g. from a config file) behaves sanely.
func (p Policy) normalized() Policy {
	def := DefaultPolicy()
	if p.GridFactor <= 0 {
		p.GridFactor = def.GridFactor
	}
	if p.ReductionRate <= 0 {
		p.ReductionRate = def.ReductionRate
	}
	if p.ProjectionMonths <= 0 {
		p.ProjectionMonths = def.ProjectionMonths
	}
	return p
}
