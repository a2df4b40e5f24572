// Package rules holds the declarative condition rule table and the evaluator
// that turns an assessment snapshot into adjustment factors and suggestion
// triggers. Rules are data, not control flow: adding or auditing one means
// editing the table, never the evaluator.
package rules

import (
	"github.com/mbeaudry/quotient/internal/domain/quote"
)

// Rule is one row of the condition table. A Multiplier of 0 marks a
// suggestion-only rule that fires a catalog search but contributes no pricing
// factor. Keywords drive the catalog search; an empty list means the rule
// never suggests an item.
type Rule struct {
	Name       string
	Category   quote.Category
	Multiplier float64
	Severe     bool
	Keywords   []string
	Rationale  string
	Predicate  func(*quote.Assessment) bool
}

// AppliesTo reports whether the rule fires for the given assessment.
func (r Rule) AppliesTo(a *quote.Assessment) bool {
	if r.Predicate == nil || a == nil {
		return false
	}
	return r.Predicate(a)
}

// SuggestionOnly reports whether the rule contributes no pricing factor.
func (r Rule) SuggestionOnly() bool {
	return r.Multiplier == 0
}

// Table returns the fixed business rule table in evaluation order. The
// multiplier constants are long-standing business parameters; they are not
// statistically derived and must not be "corrected".
func Table() []Rule {
	return []Rule{
		{
			Name:       "dead_lawn",
			Category:   quote.CategoryCondition,
			Multiplier: 1.4,
			Severe:     true,
			Keywords:   []string{"seed", "sod"},
			Rationale:  "Dead lawn requires full renovation before regular service",
			Predicate: func(a *quote.Assessment) bool {
				return a.LawnCondition == quote.LawnDead
			},
		},
		{
			Name:       "poor_lawn",
			Category:   quote.CategoryCondition,
			Multiplier: 1.3,
			Keywords:   []string{"seed", "sod"},
			Rationale:  "Poor lawn condition requires extensive restoration work",
			Predicate: func(a *quote.Assessment) bool {
				return a.LawnCondition == quote.LawnPoor
			},
		},
		{
			Name:     "patchy_lawn",
			Category: quote.CategoryCondition,
			Keywords: []string{"seed", "sod"},
			Rationale: "Patchy lawn benefits from overseeding; no price adjustment " +
				"beyond the suggested material",
			Predicate: func(a *quote.Assessment) bool {
				return a.LawnCondition == quote.LawnPatchy
			},
		},
		{
			Name:       "contaminated_soil",
			Category:   quote.CategoryCondition,
			Multiplier: 1.5,
			Severe:     true,
			Keywords:   []string{"soil", "remediation", "removal"},
			Rationale:  "Contaminated soil requires remediation and disposal handling",
			Predicate: func(a *quote.Assessment) bool {
				return a.SoilCondition == quote.SoilContaminated
			},
		},
		{
			Name:       "compacted_soil",
			Category:   quote.CategoryCondition,
			Multiplier: 1.2,
			Keywords:   []string{"aerat", "till"},
			Rationale:  "Compacted soil needs aeration or tilling before planting",
			Predicate: func(a *quote.Assessment) bool {
				return a.SoilCondition == quote.SoilCompacted
			},
		},
		{
			Name:       "heavy_weed_coverage",
			Category:   quote.CategoryCondition,
			Multiplier: 1.1,
			Severe:     true,
			Keywords:   []string{"weed", "herbicide"},
			Rationale:  "Weed coverage above 30% requires dedicated treatment passes",
			Predicate: func(a *quote.Assessment) bool {
				return a.WeedCoveragePercent > 30
			},
		},
		{
			Name:       "narrow_vehicle_access",
			Category:   quote.CategoryAccess,
			Multiplier: 1.2,
			Rationale:  "Access narrower than 8 feet rules out standard equipment",
			Predicate: func(a *quote.Assessment) bool {
				return a.VehicleAccessWidthFeet > 0 && a.VehicleAccessWidthFeet < 8
			},
		},
		{
			Name:       "no_dump_truck_access",
			Category:   quote.CategoryAccess,
			Multiplier: 1.15,
			Rationale:  "Material must be staged and moved by hand without dump truck access",
			Predicate: func(a *quote.Assessment) bool {
				value, recorded := quote.FlagRecorded(a.DumpTruckAccess)
				return recorded && !value
			},
		},
		{
			Name:       "difficult_property_access",
			Category:   quote.CategoryAccess,
			Multiplier: 1.2,
			Rationale:  "Difficult property access slows every crew movement",
			Predicate: func(a *quote.Assessment) bool {
				return a.PropertyAccess == quote.AccessDifficult
			},
		},
		{
			Name:       "high_complexity",
			Category:   quote.CategoryComplexity,
			Multiplier: 1.15,
			Rationale:  "Complexity score of 8 or above indicates dense obstacles and detail work",
			Predicate: func(a *quote.Assessment) bool {
				return a.ComplexityScore >= 8
			},
		},
		{
			Name:       "steep_slope",
			Category:   quote.CategoryAccess,
			Multiplier: 1.1,
			Rationale:  "Slopes above 15 degrees restrict riding equipment",
			Predicate: func(a *quote.Assessment) bool {
				return a.SlopeDegrees > 15
			},
		},
		{
			Name:       "no_water_access",
			Category:   quote.CategoryMaterial,
			Multiplier: 1.1,
			Keywords:   []string{"water"},
			Rationale:  "Water must be trucked in when no on-site access exists",
			Predicate: func(a *quote.Assessment) bool {
				value, recorded := quote.FlagRecorded(a.WaterAccess)
				return recorded && !value
			},
		},
		{
			Name:      "poor_drainage",
			Category:  quote.CategoryCondition,
			Keywords:  []string{"drain", "french"},
			Rationale: "Poor drainage suggests corrective drainage work",
			Predicate: func(a *quote.Assessment) bool {
				return a.DrainageQuality == quote.DrainagePoor
			},
		},
		{
			Name:      "unmarked_utilities",
			Category:  quote.CategoryAccess,
			Keywords:  []string{"locat", "utility"},
			Rationale: "Utility lines must be located before any digging",
			Predicate: func(a *quote.Assessment) bool {
				value, recorded := quote.FlagRecorded(a.UtilityLinesMarked)
				return recorded && !value
			},
		},
	}
}
