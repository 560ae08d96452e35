package calc

import (
	"fmt"

	"github.com/rshade/footprint-engine/internal/factors"
)

// periodFactors multiplies the reported consumption up by the number of
// months covered. The figure deliberately grows with longer reporting
// periods rather than normalizing to a monthly rate; see Policy in the
// engine package for how this interacts with the annual projection.
var periodFactors = map[string]float64{
	PeriodMonthly:   1,
	PeriodQuarterly: 3,
	PeriodAnnually:  12,
}

// CombustionEmissions converts stationary fuel combustion to tonnes CO2e.
//
// emissions = consumption × fuel factor × period factor / 1000.
// Fuel quantities stay in their fuel-specific units (m³, L, kg) and are
// never unit-converted. Zero if no fuel type is set or consumption is not
// positive; unknown fuels zero the category with an unknown-factor
// diagnostic. Unknown periods fall back to monthly with a diagnostic.
func CombustionEmissions(in CombustionInput) (CategoryResult, []Diagnostic) {
	result := CategoryResult{Category: factors.Combustion}

	consumption := sanitize(in.Consumption)
	if in.FuelType == "" || consumption == 0 {
		return result, nil
	}

	factor, ok := factors.FuelFactor(in.FuelType)
	if !ok {
		return result, []Diagnostic{{
			Category: factors.Combustion,
			Code:     CodeUnknownFactor,
			Field:    "fuelType",
			Message:  fmt.Sprintf("unknown fuel type %q", in.FuelType),
		}}
	}

	var diags []Diagnostic

	period := in.Period
	if period == "" {
		period = PeriodMonthly
	}
	periodFactor, ok := periodFactors[period]
	if !ok {
		periodFactor = periodFactors[PeriodMonthly]
		diags = append(diags, Diagnostic{
			Category: factors.Combustion,
			Code:     CodeFactorFallback,
			Field:    "period",
			Message:  fmt.Sprintf("unknown period %q, using %s", in.Period, PeriodMonthly),
		})
	}

	monthlyTonnes := consumption * factor / 1000

	result.EmissionsTonnes = monthlyTonnes * periodFactor
	result.Breakdown = map[string]float64{
		"monthly_tonnes": monthlyTonnes,
		"period_factor":  periodFactor,
	}
	return result, diags
}
