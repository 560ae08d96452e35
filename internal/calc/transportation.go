package calc

import (
	"fmt"

	"github.com/rshade/footprint-engine/internal/factors"
	"github.com/rshade/footprint-engine/internal/units"
)

// TransportationEmissions sums three independent travel terms:
// personal vehicle, flights, and public transport. Each term is optional
// and contributes zero when its driving quantity is absent.
func TransportationEmissions(in TransportationInput) (CategoryResult, []Diagnostic) {
	result := CategoryResult{Category: factors.Transportation}
	var diags []Diagnostic

	vehicleKg, vehicleDiags := vehicleTerm(in)
	diags = append(diags, vehicleDiags...)

	flightKg, flightDiags := flightTerm(in)
	diags = append(diags, flightDiags...)

	transitKg, transitDiags := transitTerm(in)
	diags = append(diags, transitDiags...)

	totalKg := vehicleKg + flightKg + transitKg
	if totalKg == 0 {
		return result, diags
	}

	result.EmissionsTonnes = totalKg / 1000
	result.Breakdown = map[string]float64{
		"vehicle_tonnes": vehicleKg / 1000,
		"flight_tonnes":  flightKg / 1000,
		"transit_tonnes": transitKg / 1000,
	}
	return result, diags
}

func vehicleTerm(in TransportationInput) (float64, []Diagnostic) {
	distance := sanitize(in.Distance)
	if distance == 0 {
		return 0, nil
	}

	var diags []Diagnostic

	unit := units.Km
	if in.DistanceUnit != "" {
		parsed, ok := units.ParseUnit(in.DistanceUnit)
		if !ok {
			return 0, []Diagnostic{{
				Category: factors.Transportation,
				Code:     CodeUnsupportedUnit,
				Field:    "unit",
				Message:  fmt.Sprintf("unsupported distance unit %q", in.DistanceUnit),
			}}
		}
		unit = parsed
	}

	distanceKm, err := units.Convert(distance, unit, units.Km)
	if err != nil {
		return 0, []Diagnostic{{
			Category: factors.Transportation,
			Code:     CodeUnsupportedUnit,
			Field:    "unit",
			Message:  fmt.Sprintf("cannot convert %q to km", in.DistanceUnit),
		}}
	}

	factor, exact := factors.VehicleFactor(in.VehicleType)
	if !exact && in.VehicleType != "" {
		diags = append(diags, Diagnostic{
			Category: factors.Transportation,
			Code:     CodeFactorFallback,
			Field:    "vehicleType",
			Message:  fmt.Sprintf("unknown vehicle type %q, using %s factor", in.VehicleType, factors.DefaultVehicleType),
		})
	}

	return distanceKm * factor, diags
}

func flightTerm(in TransportationInput) (float64, []Diagnostic) {
	// Flight distances are always kilometres; there is no flight unit field.
	distanceKm := sanitize(in.FlightDistance)
	if distanceKm == 0 {
		return 0, nil
	}

	var diags []Diagnostic

	factor, exact := factors.FlightFactor(in.FlightClass)
	if !exact && in.FlightClass != "" {
		diags = append(diags, Diagnostic{
			Category: factors.Transportation,
			Code:     CodeFactorFallback,
			Field:    "flightClass",
			Message:  fmt.Sprintf("unknown flight class %q, using %s factor", in.FlightClass, factors.DefaultFlightClass),
		})
	}

	return distanceKm * factor * positiveCount(in.Passengers), diags
}

func transitTerm(in TransportationInput) (float64, []Diagnostic) {
	// The transit term requires an explicit mode plus positive distance
	// and trip count; anything less contributes zero.
	distancePerTrip := sanitize(in.TransitDistancePerTrip)
	if in.TransitMode == "" || distancePerTrip == 0 || in.TransitTrips <= 0 {
		return 0, nil
	}

	var diags []Diagnostic

	factor, exact := factors.TransitFactor(in.TransitMode)
	if !exact {
		diags = append(diags, Diagnostic{
			Category: factors.Transportation,
			Code:     CodeFactorFallback,
			Field:    "publicTransportType",
			Message:  fmt.Sprintf("unknown public transport mode %q, using %s factor", in.TransitMode, factors.DefaultTransitMode),
		})
	}

	return distancePerTrip * float64(in.TransitTrips) * factor, diags
}
