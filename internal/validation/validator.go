// Package validation inspects a completed pricing result for internal
// consistency and data-quality issues. It never mutates the result and never
// returns an error: findings land in the report and the caller decides.
package validation

import (
	"fmt"

	"github.com/mbeaudry/quotient/internal/config"
	"github.com/mbeaudry/quotient/internal/domain/quote"
)

// ValidateResult checks the result against the engine's consistency rules.
// Errors mark the result as non-authoritative for billing; warnings are
// surfaced to the user but do not block quote creation.
func ValidateResult(result *quote.PricingResult, tunables config.Tunables) *quote.ValidationReport {
	report := quote.NewValidationReport()
	if result == nil {
		report.AddError("no pricing result to validate")
		return report
	}

	if result.FinalPrice.IsNegative() {
		report.AddError(fmt.Sprintf("final price %s is negative", result.FinalPrice))
	}

	if result.TotalMultiplier <= 0 {
		report.AddError(fmt.Sprintf("total multiplier %.4f is non-positive", result.TotalMultiplier))
	}

	for _, name := range result.FlaggedFactors {
		report.AddError(fmt.Sprintf("adjustment %q carries a non-positive multiplier", name))
	}

	if result.TotalMultiplier > 0 &&
		(result.TotalMultiplier < tunables.MinSaneMultiplier || result.TotalMultiplier > tunables.MaxSaneMultiplier) {
		report.AddWarning(fmt.Sprintf(
			"total multiplier %.4f outside expected range [%.2f, %.2f]; check the rule table",
			result.TotalMultiplier, tunables.MinSaneMultiplier, tunables.MaxSaneMultiplier))
	}

	if len(result.Triggers) > 0 && len(result.SuggestedItems) == 0 {
		report.AddWarning(fmt.Sprintf(
			"%d condition trigger(s) fired but no catalog items matched; the catalog may be missing service items",
			len(result.Triggers)))
	}

	for _, item := range result.SuggestedItems {
		if item.Confidence == quote.ConfidenceLow {
			report.AddWarning(fmt.Sprintf(
				"suggested item %q has low confidence; verify measurements before quoting", item.Item.Name))
		}
	}

	if result.Confidence.Level == quote.ConfidenceLow {
		report.AddWarning(fmt.Sprintf(
			"overall confidence %.0f is low; the assessment is materially incomplete", result.Confidence.Score))
	}

	return report
}
