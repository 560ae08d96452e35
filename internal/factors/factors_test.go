package factors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicleFactor(t *testing.T) {
	tests := []struct {
		name        string
		vehicleType string
		wantFactor  float64
		wantExact   bool
	}{
		{"sedan", "sedan", 0.192, true},
		{"suv", "suv", 0.251, true},
		{"truck", "truck", 0.314, true},
		{"hybrid", "hybrid", 0.120, true},
		{"electric", "electric", 0.053, true},
		{"diesel", "diesel", 0.171, true},
		{"unknown falls back to sedan", "hovercraft", 0.192, false},
		{"empty falls back to sedan", "", 0.192, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factor, exact := VehicleFactor(tt.vehicleType)
			assert.InDelta(t, tt.wantFactor, factor, 1e-12)
			assert.Equal(t, tt.wantExact, exact)
		})
	}
}

func TestFlightFactor(t *testing.T) {
	factor, exact := FlightFactor("business")
	assert.InDelta(t, 0.382, factor, 1e-12)
	assert.True(t, exact)

	factor, exact = FlightFactor("premium-economy")
	assert.InDelta(t, 0.255, factor, 1e-12, "unknown class uses economy")
	assert.False(t, exact)
}

func TestTransitFactor(t *testing.T) {
	tests := []struct {
		mode       string
		wantFactor float64
		wantExact  bool
	}{
		{"bus", 0.089, true},
		{"train", 0.041, true},
		{"metro", 0.027, true},
		{"tram", 0.022, true},
		{"ferry", 0.089, false}, // falls back to bus
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			factor, exact := TransitFactor(tt.mode)
			assert.InDelta(t, tt.wantFactor, factor, 1e-12)
			assert.Equal(t, tt.wantExact, exact)
		})
	}
}

func TestDeviceFactor(t *testing.T) {
	factor, exact := DeviceFactor("desktop")
	assert.InDelta(t, 0.0005, factor, 1e-12)
	assert.True(t, exact)

	factor, exact = DeviceFactor("smartwatch")
	assert.InDelta(t, 0.0001, factor, 1e-12, "unknown device uses smartphone")
	assert.False(t, exact)
}

func TestRefrigerantGWP(t *testing.T) {
	tests := []struct {
		refrigerant string
		wantGWP     float64
		wantOK      bool
	}{
		{"r22", 1810, true},
		{"r134a", 1430, true},
		{"r410a", 2088, true},
		{"r404a", 3922, true},
		{"r507", 3985, true},
		{"r600a", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.refrigerant, func(t *testing.T) {
			gwp, ok := RefrigerantGWP(tt.refrigerant)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.wantGWP, gwp, 1e-12)
		})
	}
}

func TestFuelFactor(t *testing.T) {
	tests := []struct {
		fuel       string
		wantFactor float64
		wantOK     bool
	}{
		{"natural-gas", 2.0, true},
		{"propane", 1.5, true},
		{"heating-oil", 2.7, true},
		{"coal", 2.4, true},
		{"wood", 1.8, true},
		{"kerosene", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.fuel, func(t *testing.T) {
			factor, ok := FuelFactor(tt.fuel)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.wantFactor, factor, 1e-12)
		})
	}
}

func TestLookup(t *testing.T) {
	t.Run("electricity grid factor", func(t *testing.T) {
		f, err := Lookup(Electricity, "")
		require.NoError(t, err)
		assert.InDelta(t, DefaultGridFactor, f.Value, 1e-12)
		assert.Equal(t, "kWh", f.Unit)
	})

	t.Run("transportation fallback is observable", func(t *testing.T) {
		f, err := Lookup(Transportation, "rickshaw")
		require.NoError(t, err)
		assert.True(t, f.Fallback)
		assert.Equal(t, DefaultVehicleType, f.Subtype)
		assert.InDelta(t, 0.192, f.Value, 1e-12)
	})

	t.Run("refrigerant has no fallback", func(t *testing.T) {
		_, err := Lookup(Refrigerants, "r600a")
		require.ErrorIs(t, err, ErrUnknownFactor)
	})

	t.Run("fuel has no fallback", func(t *testing.T) {
		_, err := Lookup(Combustion, "peat")
		require.ErrorIs(t, err, ErrUnknownFactor)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := Lookup(Category("water"), "tap")
		require.ErrorIs(t, err, ErrUnknownFactor)
	})
}

func TestCategories(t *testing.T) {
	require.Len(t, Categories, 5)
	for _, c := range Categories {
		assert.True(t, c.Valid())
	}
	assert.False(t, Category("water").Valid())
}
