package factors

const (
	// DefaultGridFactor is the grid emission factor applied when the caller
	// does not supply one, in kg CO2e per kWh. It is the only factor a user
	// may override per input.
	DefaultGridFactor = 0.5

	// DefaultVehicleType is the fallback subtype for unknown vehicle types.
	DefaultVehicleType = "sedan"

	// DefaultFlightClass is the fallback subtype for unknown flight classes.
	DefaultFlightClass = "economy"

	// DefaultTransitMode is the fallback subtype for unknown public-transport
	// modes. The mode list has no documented default, so the first listed
	// mode is used.
	DefaultTransitMode = "bus"

	// DefaultDeviceType is the fallback subtype for unknown device types.
	DefaultDeviceType = "smartphone"
)

// VehicleFactors maps vehicle types to kg CO2e per km.
var VehicleFactors = map[string]float64{
	"sedan":    0.192,
	"suv":      0.251,
	"truck":    0.314,
	"hybrid":   0.120,
	"electric": 0.053,
	"diesel":   0.171,
}

// FlightFactors maps flight classes to kg CO2e per km per passenger.
var FlightFactors = map[string]float64{
	"economy":  0.255,
	"business": 0.382,
	"first":    0.510,
}

// TransitFactors maps public-transport modes to kg CO2e per km per passenger.
var TransitFactors = map[string]float64{
	"bus":   0.089,
	"train": 0.041,
	"metro": 0.027,
	"tram":  0.022,
}

// RefrigerantGWPs maps refrigerant types to their Global Warming Potential
// (kg CO2e per kg of leaked refrigerant).
var RefrigerantGWPs = map[string]float64{
	"r22":   1810,
	"r134a": 1430,
	"r410a": 2088,
	"r404a": 3922,
	"r507":  3985,
}

// DeviceFactors maps device types to kg CO2e per GB of data transferred.
var DeviceFactors = map[string]float64{
	"smartphone": 0.0001,
	"tablet":     0.0002,
	"laptop":     0.0003,
	"desktop":    0.0005,
}

// FuelFactors maps fuel types to kg CO2e per consumption unit. The unit is
// fuel-specific (m³ for natural gas, litres for propane and heating oil,
// kg for coal and wood) and never cross-converted.
var FuelFactors = map[string]float64{
	"natural-gas": 2.0,
	"propane":     1.5,
	"heating-oil": 2.7,
	"coal":        2.4,
	"wood":        1.8,
}

// VehicleFactor returns the emission factor for the given vehicle type in
// kg CO2e per km. Unknown types resolve to DefaultVehicleType; exact is
// false when that fallback was taken.
func VehicleFactor(vehicleType string) (factor float64, exact bool) {
	if f, ok := VehicleFactors[vehicleType]; ok {
		return f, true
	}
	return VehicleFactors[DefaultVehicleType], false
}

// FlightFactor returns the emission factor for the given flight class in
// kg CO2e per km per passenger, falling back to DefaultFlightClass.
func FlightFactor(flightClass string) (factor float64, exact bool) {
	if f, ok := FlightFactors[flightClass]; ok {
		return f, true
	}
	return FlightFactors[DefaultFlightClass], false
}

// TransitFactor returns the emission factor for the given public-transport
// mode in kg CO2e per km per passenger, falling back to DefaultTransitMode.
func TransitFactor(mode string) (factor float64, exact bool) {
	if f, ok := TransitFactors[mode]; ok {
		return f, true
	}
	return TransitFactors[DefaultTransitMode], false
}

// DeviceFactor returns the emission factor for the given device type in
// kg CO2e per GB, falling back to DefaultDeviceType.
func DeviceFactor(deviceType string) (factor float64, exact bool) {
	if f, ok := DeviceFactors[deviceType]; ok {
		return f, true
	}
	return DeviceFactors[DefaultDeviceType], false
}

// RefrigerantGWP returns the GWP for the given refrigerant type. There is
// no fallback: unknown refrigerants return (0, false) and the caller
// records an unknown-factor diagnostic.
func RefrigerantGWP(refrigerantType string) (gwp float64, ok bool) {
	gwp, ok = RefrigerantGWPs[refrigerantType]
	return gwp, ok
}

// FuelFactor returns the emission factor for the given fuel type in kg CO2e
// per fuel unit. There is no fallback: unknown fuels return (0, false).
func FuelFactor(fuelType string) (factor float64, ok bool) {
	factor, ok = FuelFactors[fuelType]
	return factor, ok
}
