// Package recommend holds the static recommendation template list the
// report exporter serializes alongside a snapshot. Templates are fixed
// content, not AI output; the insight collaborator produces free-text
// recommendations separately.
package recommend

import (
	"sort"

	"github.com/rshade/footprint-engine/internal/engine"
	"github.com/rshade/footprint-engine/internal/factors"
)

const (
	// confidenceHigh marks measures with well-established reduction data.
	confidenceHigh = 0.9
	// confidenceMedium marks measures whose savings depend heavily on the
	// organization's circumstances.
	confidenceMedium = 0.7
)

// Template is one static recommendation tied to a footprint category.
type Template struct {
	// Category is the footprint category the measure addresses.
	Category factors.Category `json:"category"`

	// Title is the short measure name.
	Title string `json:"title"`

	// Description explains the measure in one or two sentences.
	Description string `json:"description"`

	// Confidence expresses how reliably the measure reduces emissions,
	// in (0,1].
	Confidence float64 `json:"confidence"`
}

// templates is the fixed recommendation list, two measures per category.
var templates = []Template{
	{
		Category:    factors.Electricity,
		Title:       "Switch to a renewable electricity tariff",
		Description: "Contract green power or on-site solar to offset grid emissions; every percentage point of renewable share reduces the electricity footprint proportionally.",
		Confidence:  confidenceHigh,
	},
	{
		Category:    factors.Electricity,
		Title:       "Reduce baseline consumption",
		Description: "LED lighting, efficient HVAC scheduling, and equipment shutdown policies typically cut office electricity use by 10-20%.",
		Confidence:  confidenceHigh,
	},
	{
		Category:    factors.Transportation,
		Title:       "Shift fleet to hybrid or electric vehicles",
		Description: "Replacing sedan-class vehicles with hybrids cuts per-km emissions by roughly 40%; full electrification by over 70%.",
		Confidence:  confidenceHigh,
	},
	{
		Category:    factors.Transportation,
		Title:       "Substitute rail for short-haul flights",
		Description: "Train travel emits about a sixth of economy-class flying per passenger-km on comparable routes.",
		Confidence:  confidenceMedium,
	},
	{
		Category:    factors.Refrigerants,
		Title:       "Tighten refrigerant leak management",
		Description: "Regular leak inspections and prompt repairs keep annual leak rates well below the 5% default; high-GWP refrigerants make every avoided kilogram count.",
		Confidence:  confidenceHigh,
	},
	{
		Category:    factors.Refrigerants,
		Title:       "Migrate to low-GWP refrigerants",
		Description: "Replacing R-404A or R-507 systems with low-GWP alternatives reduces leakage emissions by an order of magnitude.",
		Confidence:  confidenceMedium,
	},
	{
		Category:    factors.Mobile,
		Title:       "Consolidate device fleets",
		Description: "Fewer, longer-lived devices and Wi-Fi offloading reduce per-GB transfer emissions across the device fleet.",
		Confidence:  confidenceMedium,
	},
	{
		Category:    factors.Combustion,
		Title:       "Electrify heating",
		Description: "Heat pumps replace on-site fuel combustion with grid electricity, shifting emissions to a category that can be offset with renewables.",
		Confidence:  confidenceHigh,
	},
	{
		Category:    factors.Combustion,
		Title:       "Improve combustion efficiency",
		Description: "Boiler tuning, insulation, and heat recovery reduce fuel consumption directly, typically by 5-15%.",
		Confidence:  confidenceMedium,
	},
}

// Templates returns the full static template list in its fixed order.
func Templates() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

// ForCategory returns the templates for one category.
func ForCategory(cat factors.Category) []Template {
	var out []Template
	for _, tmpl := range templates {
		if tmpl.Category == cat {
			out = append(out, tmpl)
		}
	}
	return out
}

// ForSnapshot orders the template list so the categories contributing the
// most emissions come first. Within a category the fixed order is kept;
// the sort is stable, so a zero snapshot yields the fixed order.
func ForSnapshot(snap engine.Snapshot) []Template {
	out := Templates()
	sort.SliceStable(out, func(i, j int) bool {
		return snap.Category(out[i].Category).EmissionsTonnes >
			snap.Category(out[j].Category).EmissionsTonnes
	})
	return out
}
