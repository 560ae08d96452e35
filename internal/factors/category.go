// Package factors holds the static emission-factor tables used by the
// category calculators. Factors are kg CO2e per activity unit unless noted
// otherwise. Lookups for vehicle, flight, public-transport, and device
// subtypes never fail: an unknown subtype resolves to the documented
// default subtype's factor, and the caller is told so it can surface a
// fallback diagnostic instead of masking the typo.
package factors

// Category identifies one of the five fixed footprint categories.
type Category string

const (
	// Electricity covers grid electricity consumption.
	Electricity Category = "electricity"

	// Transportation covers vehicle, flight, and public-transport travel.
	Transportation Category = "transportation"

	// Refrigerants covers refrigerant leakage converted via GWP.
	Refrigerants Category = "refrigerants"

	// Mobile covers mobile and digital data use.
	Mobile Category = "mobile"

	// Combustion covers stationary fuel combustion.
	Combustion Category = "combustion"
)

// Categories lists the five categories in their fixed reporting order.
// Aggregation iterates this slice so snapshots are deterministic.
var Categories = []Category{
	Electricity,
	Transportation,
	Refrigerants,
	Mobile,
	Combustion,
}

// Valid reports whether c is one of the five fixed categories.
func (c Category) Valid() bool {
	switch c {
	case Electricity, Transportation, Refrigerants, Mobile, Combustion:
		return true
	default:
		return false
	}
}
