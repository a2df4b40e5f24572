package rules

import (
	"github.com/mbeaudry/quotient/internal/domain/quote"
)

// Firing records one rule that applied to an assessment. Factor is nil for
// suggestion-only rules.
type Firing struct {
	Rule   Rule
	Factor *quote.AdjustmentFactor
}

// Evaluate runs every table rule against the assessment independently and
// returns the firings in table order. Rules never suppress each other; absent
// or neutral field values simply fail their predicates.
func Evaluate(a *quote.Assessment) []Firing {
	return EvaluateTable(a, Table())
}

// EvaluateTable runs an explicit rule table, which keeps the evaluator
// testable against synthetic rules.
func EvaluateTable(a *quote.Assessment, table []Rule) []Firing {
	if a == nil {
		return nil
	}

	firings := make([]Firing, 0, len(table))
	for _, rule := range table {
		if !rule.AppliesTo(a) {
			continue
		}

		firing := Firing{Rule: rule}
		if !rule.SuggestionOnly() {
			firing.Factor = &quote.AdjustmentFactor{
				Name:       rule.Name,
				Category:   rule.Category,
				Multiplier: rule.Multiplier,
				Rationale:  rule.Rationale,
			}
		}
		firings = append(firings, firing)
	}

	return firings
}

// Factors extracts the adjustment factors from a firing list, skipping
// suggestion-only rules.
func Factors(firings []Firing) []quote.AdjustmentFactor {
	factors := make([]quote.AdjustmentFactor, 0, len(firings))
	for _, f := range firings {
		if f.Factor != nil {
			factors = append(factors, *f.Factor)
		}
	}
	return factors
}

// Names lists the fired rule names in evaluation order.
func Names(firings []Firing) []string {
	names := make([]string, 0, len(firings))
	for _, f := range firings {
		names = append(names, f.Rule.Name)
	}
	return names
}
