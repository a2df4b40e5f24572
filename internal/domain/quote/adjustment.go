package quote

import "github.com/shopspring/decimal"

// Category groups adjustment factors by the kind of cost they influence.
type Category string

const (
	CategoryCondition  Category = "condition"
	CategoryComplexity Category = "complexity"
	CategoryAccess     Category = "access"
	CategoryMaterial   Category = "material"
)

// Categories lists the known categories in presentation order.
func Categories() []Category {
	return []Category{CategoryCondition, CategoryComplexity, CategoryAccess, CategoryMaterial}
}

// AdjustmentFactor is one multiplicative pricing modifier produced by a fired
// condition rule. Multiplier is expected to be positive; the composer flags
// (but still composes) anything else.
type AdjustmentFactor struct {
	Name       string          `json:"name"`
	Category   Category        `json:"category"`
	Multiplier float64         `json:"multiplier"`
	CostDelta  decimal.Decimal `json:"cost_delta"`
	Rationale  string          `json:"rationale"`
}

// CategorySubtotal reports the composed multiplier and the share of the base
// price attributable to one category.
type CategorySubtotal struct {
	Category   Category        `json:"category"`
	Multiplier float64         `json:"multiplier"`
	Cost       decimal.Decimal `json:"cost"`
}
