package quote

// ValidationReport collects consistency findings about a PricingResult.
// Warnings are advisory; a report with errors must not be used for billing.
type ValidationReport struct {
	Valid    bool     `json:"valid"`
	Warnings []string `json:"warnings,omitempty"`
	Errors   []string `json:"errors,omitempty"`
}

// NewValidationReport returns an empty, valid report.
func NewValidationReport() *ValidationReport {
	return &ValidationReport{Valid: true}
}

// AddWarning records an advisory finding.
func (r *ValidationReport) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// AddError records a fatal finding and marks the report invalid.
func (r *ValidationReport) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Valid = false
}

// HasWarnings reports whether any advisory findings were recorded.
func (r *ValidationReport) HasWarnings() bool {
	return len(r.Warnings) > 0
}
