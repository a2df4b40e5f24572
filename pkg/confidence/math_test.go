package confidence

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWeightedAverage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		scores   []float64
		weights  []float64
		expected float64
	}{
		{name: "equal weights", scores: []float64{80, 60}, weights: []float64{1, 1}, expected: 70},
		{name: "skewed weights", scores: []float64{100, 50}, weights: []float64{3, 1}, expected: 87.5},
		{name: "empty", scores: nil, weights: nil, expected: 0},
		{name: "mismatched lengths", scores: []float64{80}, weights: []float64{1, 2}, expected: 0},
		{name: "zero weight sum", scores: []float64{80, 60}, weights: []float64{0, 0}, expected: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.InDelta(t, tc.expected, WeightedAverage(tc.scores, tc.weights), 1e-9)
		})
	}
}

func TestAverage(t *testing.T) {
	t.Parallel()

	require.InDelta(t, 75, Average([]float64{100, 50}), 1e-9)
	require.Zero(t, Average(nil))
}

func TestClamp(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0.0, Clamp(-4))
	require.Equal(t, 100.0, Clamp(140))
	require.Equal(t, 82.5, Clamp(82.5))
}

func TestAboveThreshold(t *testing.T) {
	t.Parallel()

	require.True(t, AboveThreshold(80, 80))
	require.False(t, AboveThreshold(79.9, 80))
}
