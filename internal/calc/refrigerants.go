package calc

import (
	"fmt"

	"github.com/rshade/footprint-engine/internal/factors"
)

// RefrigerantEmissions converts refrigerant leakage to tonnes CO2e.
//
// leaked (kg) = charge × leakRate / 100; emissions = leaked × GWP / 1000.
// The leak rate defaults to 5% and is clamped to [0,100], so the leaked
// mass never exceeds the charge. Zero if no type is set or the charge is
// not positive; unknown refrigerants zero the category with an
// unknown-factor diagnostic (there is no GWP fallback).
func RefrigerantEmissions(in RefrigerantInput) (CategoryResult, []Diagnostic) {
	result := CategoryResult{Category: factors.Refrigerants}

	charge := sanitize(in.ChargeAmountKg)
	if in.RefrigerantType == "" || charge == 0 {
		return result, nil
	}

	gwp, ok := factors.RefrigerantGWP(in.RefrigerantType)
	if !ok {
		return result, []Diagnostic{{
			Category: factors.Refrigerants,
			Code:     CodeUnknownFactor,
			Field:    "type",
			Message:  fmt.Sprintf("unknown refrigerant type %q", in.RefrigerantType),
		}}
	}

	leakRate := DefaultLeakRatePercentage
	if in.LeakRatePercentage != nil {
		leakRate = clampPercent(*in.LeakRatePercentage)
	}

	leakedKg := charge * leakRate / 100

	result.EmissionsTonnes = leakedKg * gwp / 1000
	result.Breakdown = map[string]float64{
		"leaked_kg": leakedKg,
		"gwp":       gwp,
	}
	return result, nil
}
