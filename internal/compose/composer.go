// Package compose combines adjustment factors into one total multiplier plus
// a categorized cost breakdown of the base price.
package compose

import (
	"github.com/shopspring/decimal"

	"github.com/mbeaudry/quotient/internal/domain/quote"
)

// Composition is the composer output. Factors carries the input adjustments
// with their cost deltas filled in; Flagged names any factor supplied with a
// non-positive multiplier. Flagged factors still participate in the product
// so the caller can inspect exactly what an upstream defect produced.
type Composition struct {
	TotalMultiplier float64
	Factors         []quote.AdjustmentFactor
	Subtotals       []quote.CategorySubtotal
	Flagged         []string
}

// Compose multiplies all factor multipliers together (empty input composes to
// 1.0) and derives per-category subtotals as basePrice x (category product - 1).
// Composition is a pure product, so it is order independent.
func Compose(basePrice decimal.Decimal, factors []quote.AdjustmentFactor) Composition {
	composition := Composition{
		TotalMultiplier: 1.0,
		Factors:         make([]quote.AdjustmentFactor, 0, len(factors)),
	}

	categoryProducts := make(map[quote.Category]float64)

	for _, factor := range factors {
		if factor.Multiplier <= 0 {
			composition.Flagged = append(composition.Flagged, factor.Name)
		}

		composition.TotalMultiplier *= factor.Multiplier

		product, ok := categoryProducts[factor.Category]
		if !ok {
			product = 1.0
		}
		categoryProducts[factor.Category] = product * factor.Multiplier

		factor.CostDelta = costShare(basePrice, factor.Multiplier)
		composition.Factors = append(composition.Factors, factor)
	}

	for _, category := range quote.Categories() {
		product, ok := categoryProducts[category]
		if !ok {
			continue
		}
		composition.Subtotals = append(composition.Subtotals, quote.CategorySubtotal{
			Category:   category,
			Multiplier: product,
			Cost:       costShare(basePrice, product),
		})
	}

	return composition
}

// costShare converts a multiplier into the slice of the base price it adds
// (or removes, for multipliers below 1).
func costShare(basePrice decimal.Decimal, multiplier float64) decimal.Decimal {
	return basePrice.Mul(decimal.NewFromFloat(multiplier - 1)).Round(2)
}
