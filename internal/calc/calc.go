package calc

import (
	"fmt"

	"github.com/rshade/footprint-engine/internal/factors"
)

// CategoryEmissions dispatches to the calculator for the given category.
// This is the single-category entry point used for incremental
// recomputation when one field of the activity input changes.
func CategoryEmissions(category factors.Category, in ActivityInput) (CategoryResult, []Diagnostic) {
	switch category {
	case factors.Electricity:
		return ElectricityEmissions(in.Electricity)
	case factors.Transportation:
		return TransportationEmissions(in.Transportation)
	case factors.Refrigerants:
		return RefrigerantEmissions(in.Refrigerants)
	case factors.Mobile:
		return DigitalEmissions(in.Digital)
	case factors.Combustion:
		return CombustionEmissions(in.Combustion)
	default:
		return CategoryResult{Category: category}, []Diagnostic{{
			Category: category,
			Code:     CodeUnknownFactor,
			Message:  fmt.Sprintf("unknown category %q", category),
		}}
	}
}
