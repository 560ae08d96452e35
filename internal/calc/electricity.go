package calc

import (
	"fmt"

	"github.com/rshade/footprint-engine/internal/factors"
	"github.com/rshade/footprint-engine/internal/units"
)

// ElectricityEmissions converts grid electricity consumption to tonnes CO2e.
//
// The calculation:
//  1. usageKWh = usage converted to kWh
//  2. base (kg) = usageKWh × grid factor
//  3. offset (kg) = base × renewablePercentage / 100
//  4. net tonnes = (base − offset) / 1000
//
// The renewable percentage is clamped to [0,100], so the offset can never
// exceed the base. A conversion failure zeroes the category and records an
// unsupported-unit diagnostic.
func ElectricityEmissions(in ElectricityInput) (CategoryResult, []Diagnostic) {
	result := CategoryResult{Category: factors.Electricity}

	usage := sanitize(in.Usage)
	if usage == 0 {
		return result, nil
	}

	unit := units.KWh
	if in.Unit != "" {
		parsed, ok := units.ParseUnit(in.Unit)
		if !ok {
			return result, []Diagnostic{{
				Category: factors.Electricity,
				Code:     CodeUnsupportedUnit,
				Field:    "unit",
				Message:  fmt.Sprintf("unsupported electricity unit %q", in.Unit),
			}}
		}
		unit = parsed
	}

	usageKWh, err := units.Convert(usage, unit, units.KWh)
	if err != nil {
		return result, []Diagnostic{{
			Category: factors.Electricity,
			Code:     CodeUnsupportedUnit,
			Field:    "unit",
			Message:  fmt.Sprintf("cannot convert %q to kWh", in.Unit),
		}}
	}

	gridFactor := sanitize(in.GridFactor)
	if gridFactor == 0 {
		gridFactor = factors.DefaultGridFactor
	}

	baseKg := usageKWh * gridFactor
	offsetKg := baseKg * clampPercent(in.RenewablePercentage) / 100

	result.EmissionsTonnes = (baseKg - offsetKg) / 1000
	result.Breakdown = map[string]float64{
		"base_tonnes":   baseKg / 1000,
		"offset_tonnes": offsetKg / 1000,
	}
	return result, nil
}
