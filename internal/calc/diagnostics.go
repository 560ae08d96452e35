package calc

import "github.com/rshade/footprint-engine/internal/factors"

// DiagnosticCode classifies a per-category warning.
type DiagnosticCode string

const (
	// CodeUnsupportedUnit records a unit conversion outside the supported
	// pairs. The category result is zeroed.
	CodeUnsupportedUnit DiagnosticCode = "unsupported_unit"

	// CodeFactorFallback records that an unknown subtype resolved to the
	// documented default subtype's factor. The result is still computed.
	CodeFactorFallback DiagnosticCode = "factor_fallback"

	// CodeUnknownFactor records a subtype with no factor and no fallback
	// (refrigerants, fuels). The category result is zeroed.
	CodeUnknownFactor DiagnosticCode = "unknown_factor"

	// CodeInvalidInput records a field that failed construction-time
	// validation. Calculation still proceeds with sanitized values.
	CodeInvalidInput DiagnosticCode = "invalid_input"
)

// Diagnostic is one observable warning attached to a snapshot. Failures
// are always category-local; a diagnostic never aborts the computation.
type Diagnostic struct {
	Category factors.Category `json:"category"`
	Code     DiagnosticCode   `json:"code"`
	Field    string           `json:"field,omitempty"`
	Message  string           `json:"message"`
}
