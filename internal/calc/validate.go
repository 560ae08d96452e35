package calc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/rshade/footprint-engine/internal/factors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the input against its struct tags and reports every
// out-of-range number and unknown enum value as an invalid_input
// diagnostic. Validation never blocks calculation: the calculators
// sanitize and fall back on their own, so a caller may skip Validate
// entirely and still get a complete result.
func (in ActivityInput) Validate() []Diagnostic {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []Diagnostic{{
			Code:    CodeInvalidInput,
			Message: err.Error(),
		}}
	}

	diags := make([]Diagnostic, 0, len(verrs))
	for _, fe := range verrs {
		diags = append(diags, Diagnostic{
			Category: categoryForNamespace(fe.StructNamespace()),
			Code:     CodeInvalidInput,
			Field:    fe.Field(),
			Message:  fmt.Sprintf("%s failed %q validation", fe.StructNamespace(), fe.Tag()),
		})
	}
	return diags
}

// categoryForNamespace maps a validator struct namespace like
// "ActivityInput.Electricity.Usage" to its footprint category.
func categoryForNamespace(ns string) factors.Category {
	parts := strings.Split(ns, ".")
	if len(parts) < 2 {
		return ""
	}
	switch parts[1] {
	case "Electricity":
		return factors.Electricity
	case "Transportation":
		return factors.Transportation
	case "Refrigerants":
		return factors.Refrigerants
	case "Digital":
		return factors.Mobile
	case "Combustion":
		return factors.Combustion
	default:
		return ""
	}
}
