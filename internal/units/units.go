// Package units normalizes activity measurements to each emission
// category's canonical unit. Only three pairs are convertible: energy
// (kWh/MWh), distance (km/miles), and data volume (GB/TB). Fuel and mass
// quantities are category-local and never pass through the converter.
package units

import "strings"

// Unit identifies a supported measurement unit.
type Unit string

const (
	// KWh is the canonical energy unit (kilowatt-hours).
	KWh Unit = "kWh"

	// MWh is megawatt-hours (1 MWh = 1000 kWh).
	MWh Unit = "MWh"

	// Km is the canonical distance unit (kilometres).
	Km Unit = "km"

	// Miles is statute miles (1 mile = 1.60934 km).
	Miles Unit = "miles"

	// GB is the canonical data unit (gigabytes).
	GB Unit = "GB"

	// TB is terabytes (1 TB = 1024 GB).
	TB Unit = "TB"
)

const (
	// KWhPerMWh converts megawatt-hours to kilowatt-hours.
	KWhPerMWh = 1000.0

	// KmPerMile converts statute miles to kilometres.
	KmPerMile = 1.60934

	// GBPerTB converts terabytes to gigabytes.
	GBPerTB = 1024.0
)

// ParseUnit maps a unit string to a Unit. Matching is case-insensitive.
// Returns (unit, true) for recognized strings, ("", false) otherwise.
func ParseUnit(s string) (Unit, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kwh":
		return KWh, true
	case "mwh":
		return MWh, true
	case "km":
		return Km, true
	case "miles", "mi":
		return Miles, true
	case "gb":
		return GB, true
	case "tb":
		return TB, true
	default:
		return "", false
	}
}

// toCanonical returns the factor converting u into its category's canonical
// unit, plus that canonical unit. Returns ("", 0, false) for unknown units.
func toCanonical(u Unit) (Unit, float64, bool) {
	switch u {
	case KWh:
		return KWh, 1, true
	case MWh:
		return KWh, KWhPerMWh, true
	case Km:
		return Km, 1, true
	case Miles:
		return Km, KmPerMile, true
	case GB:
		return GB, 1, true
	case TB:
		return GB, GBPerTB, true
	default:
		return "", 0, false
	}
}

// Convert converts value from one unit to another. Conversion is only
// defined within a measurement family (energy, distance, data); any other
// pairing returns ErrUnsupportedUnit. Equal units are an identity.
func Convert(value float64, from, to Unit) (float64, error) {
	if from == to {
		if _, _, ok := toCanonical(from); !ok {
			return 0, ErrUnsupportedUnit
		}
		return value, nil
	}

	fromBase, fromFactor, ok := toCanonical(from)
	if !ok {
		return 0, ErrUnsupportedUnit
	}
	toBase, toFactor, ok := toCanonical(to)
	if !ok {
		return 0, ErrUnsupportedUnit
	}
	if fromBase != toBase {
		return 0, ErrUnsupportedUnit
	}

	return value * fromFactor / toFactor, nil
}
