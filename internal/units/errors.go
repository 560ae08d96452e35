package units

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrUnsupportedUnit indicates a conversion outside the supported pairs
// (kWh/MWh, km/miles, GB/TB). Cross-family conversions such as km→GB are
// always unsupported.
var ErrUnsupportedUnit = constError("unsupported unit conversion")
