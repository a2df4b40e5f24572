package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbeaudry/quotient/internal/config"
	"github.com/mbeaudry/quotient/internal/domain/quote"
)

func validResult() *quote.PricingResult {
	return &quote.PricingResult{
		BasePrice:       decimal.NewFromInt(1000),
		TotalMultiplier: 1.4,
		FinalPrice:      decimal.NewFromInt(1400),
		Triggers:        []string{"dead_lawn"},
		SuggestedItems: []quote.SuggestedLineItem{
			{Item: quote.CatalogItem{Name: "Premium Grass Seed"}, Quantity: 1, Confidence: quote.ConfidenceHigh},
		},
		Confidence: quote.ConfidenceScore{Score: 90, Level: quote.ConfidenceHigh},
	}
}

func TestValidateResultCleanPass(t *testing.T) {
	t.Parallel()

	report := ValidateResult(validResult(), config.DefaultTunables())
	assert.True(t, report.Valid)
	assert.Empty(t, report.Warnings)
	assert.Empty(t, report.Errors)
}

func TestValidateResultNegativePriceIsError(t *testing.T) {
	t.Parallel()

	result := validResult()
	result.FinalPrice = decimal.NewFromInt(-50)

	report := ValidateResult(result, config.DefaultTunables())
	assert.False(t, report.Valid)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "negative")
}

func TestValidateResultZeroMultiplierIsError(t *testing.T) {
	t.Parallel()

	result := validResult()
	result.TotalMultiplier = 0
	result.FinalPrice = decimal.Zero
	result.FlaggedFactors = []string{"broken_rule"}

	report := ValidateResult(result, config.DefaultTunables())
	assert.False(t, report.Valid)
	assert.Len(t, report.Errors, 2, "non-positive total and the flagged factor")
}

func TestValidateResultOutOfRangeMultiplierIsWarning(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		multiplier float64
	}{
		{name: "below range", multiplier: 0.5},
		{name: "above range", multiplier: 3.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			result := validResult()
			result.TotalMultiplier = tc.multiplier

			report := ValidateResult(result, config.DefaultTunables())
			assert.True(t, report.Valid, "range finding is advisory")
			require.NotEmpty(t, report.Warnings)
			assert.Contains(t, report.Warnings[0], "outside expected range")
		})
	}
}

func TestValidateResultUnmatchedTriggersWarn(t *testing.T) {
	t.Parallel()

	result := validResult()
	result.SuggestedItems = nil

	report := ValidateResult(result, config.DefaultTunables())
	assert.True(t, report.Valid)
	require.NotEmpty(t, report.Warnings)
	assert.Contains(t, report.Warnings[0], "no catalog items matched")
}

func TestValidateResultLowConfidenceItemWarns(t *testing.T) {
	t.Parallel()

	result := validResult()
	result.SuggestedItems[0].Confidence = quote.ConfidenceLow

	report := ValidateResult(result, config.DefaultTunables())
	assert.True(t, report.Valid)
	require.NotEmpty(t, report.Warnings)
	assert.Contains(t, report.Warnings[0], "low confidence")
}

func TestValidateResultNeverMutates(t *testing.T) {
	t.Parallel()

	result := validResult()
	result.TotalMultiplier = 5.0
	before := *result

	_ = ValidateResult(result, config.DefaultTunables())
	assert.Equal(t, before.TotalMultiplier, result.TotalMultiplier)
	assert.True(t, before.FinalPrice.Equal(result.FinalPrice))
}

func TestValidateResultNilResult(t *testing.T) {
	t.Parallel()

	report := ValidateResult(nil, config.DefaultTunables())
	assert.False(t, report.Valid)
}
