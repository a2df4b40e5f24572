package quote

import "github.com/shopspring/decimal"

// CostEntry is one categorized cost line in a breakdown section.
type CostEntry struct {
	Label    string          `json:"label"`
	UnitCost decimal.Decimal `json:"unit_cost"`
	Quantity float64         `json:"quantity"`
	Total    decimal.Decimal `json:"total"`
}

// BreakdownSection holds one categorized list of cost lines. Computed
// distinguishes "this section was skipped" from "this section computed to
// empty"; callers must not treat a skipped section as zero cost.
type BreakdownSection struct {
	Computed bool        `json:"computed"`
	Entries  []CostEntry `json:"entries,omitempty"`
}

// Total sums the section's entry totals. A skipped section totals to zero,
// which is why callers should check Computed first.
func (s BreakdownSection) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range s.Entries {
		total = total.Add(e.Total)
	}
	return total
}

// ConfidenceScore is the result-level accuracy estimate.
type ConfidenceScore struct {
	Score float64    `json:"score"`
	Level Confidence `json:"level"`
}

// PricingResult is the assembled output of one pricing calculation. Immutable
// once produced; repeated identical inputs yield an equal (or cached
// identical) result.
type PricingResult struct {
	BasePrice       decimal.Decimal     `json:"base_price"`
	TotalMultiplier float64             `json:"total_multiplier"`
	Adjustments     []AdjustmentFactor  `json:"adjustments"`
	SuggestedItems  []SuggestedLineItem `json:"suggested_items"`

	CategorySubtotals []CategorySubtotal `json:"category_subtotals"`
	Labor             BreakdownSection   `json:"labor_breakdown"`
	Materials         BreakdownSection   `json:"material_adjustments"`
	Equipment         BreakdownSection   `json:"equipment_costs"`

	TotalLaborHours float64         `json:"total_labor_hours"`
	FinalPrice      decimal.Decimal `json:"final_price"`
	Confidence      ConfidenceScore `json:"confidence"`

	// Triggers names every rule that fired, including suggestion-only rules
	// that contribute no multiplier.
	Triggers []string `json:"triggers,omitempty"`

	// FlaggedFactors names adjustments that carried a non-positive
	// multiplier. They still participate in the product so the caller can
	// see exactly what happened.
	FlaggedFactors []string `json:"flagged_factors,omitempty"`
}

// SuggestedItemsCost sums the extended cost of all suggested line items.
func (r *PricingResult) SuggestedItemsCost() decimal.Decimal {
	total := decimal.Zero
	for _, item := range r.SuggestedItems {
		total = total.Add(item.Cost())
	}
	return total
}
