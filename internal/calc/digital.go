package calc

import (
	"fmt"

	"github.com/rshade/footprint-engine/internal/factors"
	"github.com/rshade/footprint-engine/internal/units"
)

// DigitalEmissions converts mobile and digital data use to tonnes CO2e.
//
// usageGB = dataUsage converted to GB;
// emissions = usageGB × device factor × deviceCount / 1000.
// Zero if the data usage is not positive. Unknown device types resolve to
// the smartphone factor with a fallback diagnostic.
func DigitalEmissions(in DigitalInput) (CategoryResult, []Diagnostic) {
	result := CategoryResult{Category: factors.Mobile}

	usage := sanitize(in.DataUsage)
	if usage == 0 {
		return result, nil
	}

	unit := units.GB
	if in.Unit != "" {
		parsed, ok := units.ParseUnit(in.Unit)
		if !ok {
			return result, []Diagnostic{{
				Category: factors.Mobile,
				Code:     CodeUnsupportedUnit,
				Field:    "unit",
				Message:  fmt.Sprintf("unsupported data unit %q", in.Unit),
			}}
		}
		unit = parsed
	}

	usageGB, err := units.Convert(usage, unit, units.GB)
	if err != nil {
		return result, []Diagnostic{{
			Category: factors.Mobile,
			Code:     CodeUnsupportedUnit,
			Field:    "unit",
			Message:  fmt.Sprintf("cannot convert %q to GB", in.Unit),
		}}
	}

	var diags []Diagnostic

	factor, exact := factors.DeviceFactor(in.DeviceType)
	if !exact && in.DeviceType != "" {
		diags = append(diags, Diagnostic{
			Category: factors.Mobile,
			Code:     CodeFactorFallback,
			Field:    "deviceType",
			Message:  fmt.Sprintf("unknown device type %q, using %s factor", in.DeviceType, factors.DefaultDeviceType),
		})
	}

	deviceCount := positiveCount(in.DeviceCount)

	result.EmissionsTonnes = usageGB * factor * deviceCount / 1000
	result.Breakdown = map[string]float64{
		"usage_gb":      usageGB,
		"device_factor": factor,
		"device_count":  deviceCount,
	}
	return result, diags
}
