// Package calc implements the five category calculators that turn
// user-supplied activity data into tonnes of CO2e. Every calculator is a
// pure, total function: malformed numeric input defaults to 0, unknown
// enum subtypes resolve through the factor table's fallback policy, and
// failures surface as diagnostics on the result, never as errors.
package calc

import (
	"math"

	"github.com/rshade/footprint-engine/internal/factors"
)

// Reporting periods for combustion input.
const (
	PeriodMonthly   = "monthly"
	PeriodQuarterly = "quarterly"
	PeriodAnnually  = "annually"
)

// ActivityInput is the full set of user-supplied activity data, one
// sub-input per category. Every field is optional; zero values mean
// "not provided" and resolve to the documented defaults.
type ActivityInput struct {
	Electricity    ElectricityInput    `json:"electricity"`
	Transportation TransportationInput `json:"transportation"`
	Refrigerants   RefrigerantInput    `json:"refrigerants"`
	Digital        DigitalInput        `json:"digital"`
	Combustion     CombustionInput     `json:"combustion"`
}

// ElectricityInput describes grid electricity consumption.
type ElectricityInput struct {
	// Usage is the consumption amount in Unit.
	Usage float64 `json:"usage" validate:"omitempty,gte=0"`

	// Unit is "kWh" (default) or "MWh".
	Unit string `json:"unit" validate:"omitempty,oneof=kWh MWh"`

	// GridFactor is the grid emission factor in kg CO2e per kWh. Values
	// <= 0 resolve to factors.DefaultGridFactor (0.5). This is the only
	// user-overridable emission factor.
	GridFactor float64 `json:"gridFactor" validate:"omitempty,gte=0"`

	// RenewablePercentage is the share of usage covered by renewables,
	// expected in [0,100]. Out-of-range values are clamped.
	RenewablePercentage float64 `json:"renewablePercentage" validate:"omitempty,gte=0,lte=100"`
}

// TransportationInput combines three independent, additive sub-inputs:
// personal vehicle, flights, and public transport.
type TransportationInput struct {
	// VehicleType defaults to "sedan" for unknown or empty values when a
	// vehicle distance is present.
	VehicleType string `json:"vehicleType" validate:"omitempty,oneof=sedan suv truck hybrid electric diesel"`

	// Distance is the vehicle distance travelled in DistanceUnit.
	Distance float64 `json:"distance" validate:"omitempty,gte=0"`

	// DistanceUnit is "km" (default) or "miles".
	DistanceUnit string `json:"unit" validate:"omitempty,oneof=km miles"`

	// FlightDistance is flight distance in kilometres.
	FlightDistance float64 `json:"flightDistance" validate:"omitempty,gte=0"`

	// FlightClass defaults to "economy".
	FlightClass string `json:"flightClass" validate:"omitempty,oneof=economy business first"`

	// Passengers defaults to 1.
	Passengers int `json:"passengers" validate:"omitempty,gte=0"`

	// TransitMode is the public-transport mode. The transit term is only
	// computed when a mode is set and both distance and trips are positive.
	TransitMode string `json:"publicTransportType" validate:"omitempty,oneof=bus train metro tram"`

	// TransitDistancePerTrip is the one-way distance per trip in km.
	TransitDistancePerTrip float64 `json:"distancePerTrip" validate:"omitempty,gte=0"`

	// TransitTrips is the number of trips taken.
	TransitTrips int `json:"trips" validate:"omitempty,gte=0"`
}

// RefrigerantInput describes refrigerant leakage.
type RefrigerantInput struct {
	// RefrigerantType selects the GWP. No fallback exists for unknown
	// refrigerants; the category result is zero with a diagnostic.
	RefrigerantType string `json:"type" validate:"omitempty,oneof=r22 r134a r410a r404a r507"`

	// ChargeAmountKg is the system charge in kilograms.
	ChargeAmountKg float64 `json:"chargeAmount" validate:"omitempty,gte=0"`

	// LeakRatePercentage is the annual leak rate; nil means the default 5%.
	// Clamped to [0,100] so leaked mass never exceeds the charge.
	LeakRatePercentage *float64 `json:"leakRatePercentage" validate:"omitempty,gte=0,lte=100"`
}

// DigitalInput describes mobile and digital data use.
type DigitalInput struct {
	// DataUsage is the data volume in Unit.
	DataUsage float64 `json:"dataUsage" validate:"omitempty,gte=0"`

	// Unit is "GB" (default) or "TB".
	Unit string `json:"unit" validate:"omitempty,oneof=GB TB"`

	// DeviceType defaults to "smartphone" for unknown or empty values.
	DeviceType string `json:"deviceType" validate:"omitempty,oneof=smartphone tablet laptop desktop"`

	// DeviceCount defaults to 1.
	DeviceCount int `json:"deviceCount" validate:"omitempty,gte=0"`
}

// CombustionInput describes stationary fuel combustion.
type CombustionInput struct {
	// FuelType selects the emission factor. No fallback exists for
	// unknown fuels; the category result is zero with a diagnostic.
	FuelType string `json:"fuelType" validate:"omitempty,oneof=natural-gas propane heating-oil coal wood"`

	// Consumption is the fuel amount in the fuel's own unit (m³, L, kg).
	Consumption float64 `json:"consumption" validate:"omitempty,gte=0"`

	// Period is "monthly" (default), "quarterly", or "annually". The
	// reported figure is multiplied up by 1, 3, or 12 respectively.
	Period string `json:"period" validate:"omitempty,oneof=monthly quarterly annually"`
}

// CategoryResult is one category's contribution to the footprint.
type CategoryResult struct {
	// Category identifies the footprint category.
	Category factors.Category `json:"category"`

	// EmissionsTonnes is the category's emissions in tonnes CO2e, >= 0.
	EmissionsTonnes float64 `json:"emissionsTonnes"`

	// Breakdown holds category-specific intermediate values, keyed by
	// stable names (e.g. "base_tonnes" and "offset_tonnes" for
	// electricity). Nil when the category computed to zero with no work.
	Breakdown map[string]float64 `json:"breakdown,omitempty"`
}

// DefaultLeakRatePercentage is the annual refrigerant leak rate assumed
// when the input does not provide one.
const DefaultLeakRatePercentage = 5.0

// sanitize maps malformed numeric input to 0. NaN, infinities, and
// negative values are all treated as "not provided".
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// clampPercent restricts a percentage to [0,100] after sanitizing.
func clampPercent(v float64) float64 {
	v = sanitize(v)
	if v > 100 {
		return 100
	}
	return v
}

// positiveCount returns n as a float64 count, defaulting to 1 when n <= 0.
func positiveCount(n int) float64 {
	if n <= 0 {
		return 1
	}
	return float64(n)
}
