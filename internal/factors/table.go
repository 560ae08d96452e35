package factors

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrUnknownFactor indicates a lookup for a category or subtype that is not
// covered by the fallback policy (refrigerants, fuels, or a category the
// table does not hold at all).
var ErrUnknownFactor = constError("unknown emission factor")

// EmissionFactor is one immutable row of the factor table.
type EmissionFactor struct {
	// Category is the footprint category the factor belongs to.
	Category Category `json:"category"`

	// Subtype is the resolved subtype. When a fallback was taken this is
	// the default subtype, not the one requested.
	Subtype string `json:"subtype"`

	// Value is the factor in kg CO2e per Unit.
	Value float64 `json:"value"`

	// Unit is the activity unit the factor applies to.
	Unit string `json:"unit"`

	// Fallback is true when the requested subtype was unknown and the
	// documented default subtype's factor was returned instead.
	Fallback bool `json:"fallback,omitempty"`
}

// Lookup resolves (category, subtype) to an emission factor. For the
// transportation sub-tables the subtype is a vehicle type; flight classes
// and transit modes are resolved through their typed helpers. Categories
// under the fallback policy never fail; refrigerants and fuels return
// ErrUnknownFactor for unknown subtypes.
func Lookup(category Category, subtype string) (EmissionFactor, error) {
	switch category {
	case Electricity:
		return EmissionFactor{Category: category, Subtype: "grid", Value: DefaultGridFactor, Unit: "kWh"}, nil
	case Transportation:
		f, exact := VehicleFactor(subtype)
		return EmissionFactor{Category: category, Subtype: resolved(subtype, DefaultVehicleType, exact), Value: f, Unit: "km", Fallback: !exact}, nil
	case Mobile:
		f, exact := DeviceFactor(subtype)
		return EmissionFactor{Category: category, Subtype: resolved(subtype, DefaultDeviceType, exact), Value: f, Unit: "GB", Fallback: !exact}, nil
	case Refrigerants:
		gwp, ok := RefrigerantGWP(subtype)
		if !ok {
			return EmissionFactor{}, ErrUnknownFactor
		}
		return EmissionFactor{Category: category, Subtype: subtype, Value: gwp, Unit: "kg"}, nil
	case Combustion:
		f, ok := FuelFactor(subtype)
		if !ok {
			return EmissionFactor{}, ErrUnknownFactor
		}
		return EmissionFactor{Category: category, Subtype: subtype, Value: f, Unit: "fuel-unit"}, nil
	default:
		return EmissionFactor{}, ErrUnknownFactor
	}
}

func resolved(requested, fallback string, exact bool) string {
	if exact {
		return requested
	}
	return fallback
}
