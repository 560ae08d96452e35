package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// English locale keeps thousand separators consistent across hosts.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// tonnesPrecision is the decimal precision for tonnes CO2e values in
// report rows.
const tonnesPrecision = 3

// FormatTonnes formats a tonnes CO2e value for a report row.
// Example: FormatTonnes(1234.5678) returns "1,234.568".
func FormatTonnes(v float64) string {
	return FormatFloat(v, tonnesPrecision)
}

// FormatFloat formats a float with the given precision and thousand
// separators. Example: FormatFloat(1234.567, 2) returns "1,234.57".
func FormatFloat(f float64, precision int) string {
	multiplier := math.Pow(10, float64(precision))
	rounded := math.Round(f*multiplier) / multiplier

	if precision == 0 {
		return printer.Sprintf("%d", int64(rounded))
	}

	formatted := fmt.Sprintf("%.*f", precision, rounded)
	if dot := strings.IndexByte(formatted, '.'); dot >= 0 {
		intPart, err := strconv.ParseInt(formatted[:dot], 10, 64)
		if err == nil {
			return printer.Sprintf("%d", intPart) + formatted[dot:]
		}
	}
	return formatted
}
