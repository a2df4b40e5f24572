// Package labor estimates crew hours for a property independently of pricing.
package labor

import (
	"github.com/mbeaudry/quotient/internal/config"
	"github.com/mbeaudry/quotient/internal/domain/quote"
)

// Estimator derives labor hours from area, complexity, and condition severity.
type Estimator struct {
	tunables config.Tunables
}

// NewEstimator creates an Estimator with the supplied tunables.
func NewEstimator(tunables config.Tunables) *Estimator {
	return &Estimator{tunables: tunables}
}

// Estimate returns the expected labor hours for the assessment. A missing area
// falls back to the configured default baseline instead of failing, and the
// result is never negative.
func (e *Estimator) Estimate(a *quote.Assessment) float64 {
	if a == nil {
		return 0
	}

	area, _ := a.Area(e.tunables.DefaultAreaSqFt)
	if area < 0 {
		area = 0
	}

	hours := area / 1000 * e.tunables.BaseHoursPerThousandSqFt
	hours *= complexityFactor(a.ComplexityScore)
	if hasSevereConditions(a) {
		hours *= e.tunables.SeverityLaborFactor
	}

	if hours < 0 {
		return 0
	}
	return hours
}

// complexityFactor scales hours linearly with the 1-10 complexity score. An
// unset score reads as the simplest property.
func complexityFactor(score int) float64 {
	if score < 1 {
		score = 1
	}
	if score > 10 {
		score = 10
	}
	return 1 + 0.1*float64(score-1)
}

func hasSevereConditions(a *quote.Assessment) bool {
	switch a.LawnCondition {
	case quote.LawnDead, quote.LawnPoor:
		return true
	}
	switch a.SoilCondition {
	case quote.SoilContaminated, quote.SoilCompacted:
		return true
	}
	return false
}
