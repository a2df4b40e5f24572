package pricing

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mbeaudry/quotient/internal/compose"
	"github.com/mbeaudry/quotient/internal/domain/quote"
)

// Share of total hours attributed to each labor phase.
const (
	prepShare    = 0.2
	primaryShare = 0.6
	cleanupShare = 0.2
)

// laborSection itemizes the estimated hours into crew phases at the
// configured hourly rate.
func laborSection(hours float64, hourlyRate float64) quote.BreakdownSection {
	section := quote.BreakdownSection{Computed: true}
	if hours <= 0 {
		return section
	}

	rate := decimal.NewFromFloat(hourlyRate)
	phases := []struct {
		label string
		share float64
	}{
		{label: "site preparation", share: prepShare},
		{label: "primary work", share: primaryShare},
		{label: "cleanup and haul-off", share: cleanupShare},
	}

	for _, phase := range phases {
		phaseHours := hours * phase.share
		section.Entries = append(section.Entries, quote.CostEntry{
			Label:    phase.label,
			UnitCost: rate,
			Quantity: phaseHours,
			Total:    rate.Mul(decimal.NewFromFloat(phaseHours)).Round(2),
		})
	}

	return section
}

// categorySection itemizes one factor category's cost shares as breakdown
// lines. Material adjustments and equipment costs are both views onto the
// composed factors; the invariant price formula never double-counts them.
func categorySection(composition compose.Composition, category quote.Category) quote.BreakdownSection {
	section := quote.BreakdownSection{Computed: true}
	for _, factor := range composition.Factors {
		if factor.Category != category {
			continue
		}
		section.Entries = append(section.Entries, quote.CostEntry{
			Label:    factorLabel(factor.Name),
			UnitCost: factor.CostDelta,
			Quantity: 1,
			Total:    factor.CostDelta,
		})
	}
	return section
}

func factorLabel(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}
