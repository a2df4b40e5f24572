package pricing

import (
	"github.com/mbeaudry/quotient/internal/config"
	"github.com/mbeaudry/quotient/internal/domain/quote"
	"github.com/mbeaudry/quotient/pkg/confidence"
)

// Quality scores for the area figure by provenance. Heuristic business
// constants, tunable only through their aggregate thresholds.
const (
	qualityMeasuredVerified = 100.0
	qualityMeasured         = 85.0
	qualityEstimated        = 60.0
	qualityDefaulted        = 30.0
)

// scoreConfidence rates how trustworthy the result is: the average of data
// completeness and measurement quality, mapped to a level via the configured
// thresholds.
func scoreConfidence(a *quote.Assessment, tunables config.Tunables) quote.ConfidenceScore {
	completeness := completenessScore(a)
	quality := qualityScore(a)

	score := confidence.Clamp(confidence.Average([]float64{completeness, quality}))

	level := quote.ConfidenceLow
	switch {
	case confidence.AboveThreshold(score, tunables.ConfidenceHighThreshold):
		level = quote.ConfidenceHigh
	case confidence.AboveThreshold(score, tunables.ConfidenceMediumThreshold):
		level = quote.ConfidenceMedium
	}

	return quote.ConfidenceScore{Score: score, Level: level}
}

func completenessScore(a *quote.Assessment) float64 {
	recorded := 0
	total := 8

	if a.LawnCondition != "" {
		recorded++
	}
	if a.SoilCondition != "" {
		recorded++
	}
	if a.PropertyAccess != "" {
		recorded++
	}
	if a.DrainageQuality != "" {
		recorded++
	}
	if a.LawnAreaMeasuredSqFt > 0 || a.LawnAreaEstimatedSqFt > 0 {
		recorded++
	}
	if a.ComplexityScore > 0 {
		recorded++
	}
	if a.DumpTruckAccess != nil {
		recorded++
	}
	if a.WaterAccess != nil {
		recorded++
	}

	return float64(recorded) / float64(total) * 100
}

func qualityScore(a *quote.Assessment) float64 {
	_, source := a.Area(0)
	switch source {
	case quote.AreaMeasured:
		if a.MeasurementVerified {
			return qualityMeasuredVerified
		}
		return qualityMeasured
	case quote.AreaEstimated:
		return qualityEstimated
	default:
		return qualityDefaulted
	}
}
