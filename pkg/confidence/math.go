// Package confidence provides score math for pricing-result accuracy scoring.
// Scores are percentages in [0, 100].
package confidence

// WeightedAverage combines component scores using the supplied weights. A
// mismatched or empty input yields 0.
func WeightedAverage(scores []float64, weights []float64) float64 {
	if len(scores) == 0 || len(scores) != len(weights) {
		return 0
	}

	var sum, weightSum float64
	for i, s := range scores {
		sum += s * weights[i]
		weightSum += weights[i]
	}

	if weightSum == 0 {
		return 0
	}
	return sum / weightSum
}

// Average combines component scores with equal weight.
func Average(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

// Clamp bounds a score to the valid [0, 100] range.
func Clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// AboveThreshold reports whether a score meets a minimum requirement.
func AboveThreshold(score, threshold float64) bool {
	return score >= threshold
}
