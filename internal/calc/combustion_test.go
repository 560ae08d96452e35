package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/footprint-engine/internal/factors"
)

func TestCombustionEmissions(t *testing.T) {
	tests := []struct {
		name       string
		in         CombustionInput
		wantTonnes float64
	}{
		{
			name:       "natural gas 100 m3 monthly",
			in:         CombustionInput{FuelType: "natural-gas", Consumption: 100, Period: PeriodMonthly},
			wantTonnes: 0.2,
		},
		{
			name:       "missing period defaults to monthly",
			in:         CombustionInput{FuelType: "natural-gas", Consumption: 100},
			wantTonnes: 0.2,
		},
		{
			name:       "natural gas 100 m3 quarterly triples",
			in:         CombustionInput{FuelType: "natural-gas", Consumption: 100, Period: PeriodQuarterly},
			wantTonnes: 0.6,
		},
		{
			// The annual figure is the monthly figure multiplied up by 12,
			// not normalized down. This is deliberate, compatibility-bound
			// behavior; see engine.Policy.
			name:       "natural gas 100 m3 annually multiplies by 12",
			in:         CombustionInput{FuelType: "natural-gas", Consumption: 100, Period: PeriodAnnually},
			wantTonnes: 2.4,
		},
		{
			name:       "heating oil 200 L monthly",
			in:         CombustionInput{FuelType: "heating-oil", Consumption: 200},
			wantTonnes: 0.54,
		},
		{
			name:       "wood 50 kg monthly",
			in:         CombustionInput{FuelType: "wood", Consumption: 50},
			wantTonnes: 0.09,
		},
		{
			name:       "no fuel type",
			in:         CombustionInput{Consumption: 100},
			wantTonnes: 0,
		},
		{
			name:       "zero consumption",
			in:         CombustionInput{FuelType: "coal"},
			wantTonnes: 0,
		},
		{
			name:       "negative consumption treated as absent",
			in:         CombustionInput{FuelType: "coal", Consumption: -10},
			wantTonnes: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := CombustionEmissions(tt.in)
			assert.Equal(t, factors.Combustion, got.Category)
			assert.InDelta(t, tt.wantTonnes, got.EmissionsTonnes, 1e-9)
			assert.GreaterOrEqual(t, got.EmissionsTonnes, 0.0)
		})
	}
}

func TestCombustionEmissionsUnknownFuel(t *testing.T) {
	got, diags := CombustionEmissions(CombustionInput{FuelType: "peat", Consumption: 100})
	assert.Zero(t, got.EmissionsTonnes)
	require.Len(t, diags, 1)
	assert.Equal(t, CodeUnknownFactor, diags[0].Code)
	assert.Equal(t, factors.Combustion, diags[0].Category)
}

func TestCombustionEmissionsUnknownPeriod(t *testing.T) {
	got, diags := CombustionEmissions(CombustionInput{FuelType: "propane", Consumption: 100, Period: "weekly"})
	assert.InDelta(t, 0.15, got.EmissionsTonnes, 1e-9, "unknown period falls back to monthly")
	require.Len(t, diags, 1)
	assert.Equal(t, CodeFactorFallback, diags[0].Code)
	assert.Equal(t, "period", diags[0].Field)
}

func TestCombustionEmissionsBreakdown(t *testing.T) {
	got, diags := CombustionEmissions(CombustionInput{FuelType: "natural-gas", Consumption: 100, Period: PeriodAnnually})
	require.Empty(t, diags)
	assert.InDelta(t, 0.2, got.Breakdown["monthly_tonnes"], 1e-9)
	assert.InDelta(t, 12, got.Breakdown["period_factor"], 1e-9)
}
