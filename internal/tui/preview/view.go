package preview

import (
	"fmt"
	"strings"

	"github.com/mbeaudry/quotient/internal/domain/quote"
)

// View renders the current calculation state.
func (m Model) View() string {
	var content strings.Builder

	content.WriteString(titleStyle.Render("Quotient pricing preview"))
	content.WriteString("\n")

	if m.err != nil {
		content.WriteString(errorStyle.Render("calculation failed: " + m.err.Error()))
		content.WriteString("\n")
		content.WriteString(m.help.View(m.keys))
		return content.String()
	}
	if m.result == nil {
		return "Initializing..."
	}

	source := "computed"
	if m.fromCache {
		source = "cache hit"
	}
	content.WriteString(faintStyle.Render(fmt.Sprintf("base price %s | %s", m.basePrice.StringFixed(2), source)))
	content.WriteString("\n")

	content.WriteString(m.renderAdjustments())
	content.WriteString(m.renderSuggestions())
	content.WriteString(m.renderSections())
	content.WriteString(m.renderTotals())
	content.WriteString(m.renderFindings())

	content.WriteString("\n")
	content.WriteString(m.help.View(m.keys))
	return content.String()
}

func (m Model) renderAdjustments() string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Adjustments"))
	b.WriteString("\n")

	if len(m.result.Adjustments) == 0 {
		b.WriteString(faintStyle.Render("  none"))
		b.WriteString("\n")
		return b.String()
	}

	for _, factor := range m.result.Adjustments {
		b.WriteString(fmt.Sprintf("  %-28s x%.2f  %s\n", factor.Name, factor.Multiplier, factor.Rationale))
	}
	return b.String()
}

func (m Model) renderSuggestions() string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Suggested items"))
	b.WriteString("\n")

	if len(m.result.SuggestedItems) == 0 {
		b.WriteString(faintStyle.Render("  none"))
		b.WriteString("\n")
		return b.String()
	}

	for _, item := range m.result.SuggestedItems {
		b.WriteString(fmt.Sprintf("  %-32s x%d  %s  [%s/%s]\n",
			item.Item.Name, item.Quantity, item.Cost().StringFixed(2), item.Priority, item.Confidence))
	}
	return b.String()
}

func (m Model) renderSections() string {
	var b strings.Builder
	sections := []struct {
		name    string
		section quote.BreakdownSection
	}{
		{"Labor", m.result.Labor},
		{"Materials", m.result.Materials},
		{"Equipment", m.result.Equipment},
	}

	for _, s := range sections {
		b.WriteString(sectionStyle.Render(s.name))
		b.WriteString("\n")
		if !s.section.Computed {
			b.WriteString(skippedStyle.Render("  skipped"))
			b.WriteString("\n")
			continue
		}
		if len(s.section.Entries) == 0 {
			b.WriteString(faintStyle.Render("  no entries"))
			b.WriteString("\n")
			continue
		}
		for _, entry := range s.section.Entries {
			b.WriteString(fmt.Sprintf("  %-28s %8.2f @ %s = %s\n",
				entry.Label, entry.Quantity, entry.UnitCost.StringFixed(2), entry.Total.StringFixed(2)))
		}
	}
	return b.String()
}

func (m Model) renderTotals() string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Totals"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  multiplier %s  labor %.1fh  confidence %s (%.0f)\n",
		cacheStyle.Render(fmt.Sprintf("x%.3f", m.result.TotalMultiplier)),
		m.result.TotalLaborHours,
		m.result.Confidence.Level, m.result.Confidence.Score))
	b.WriteString("  final price ")
	b.WriteString(priceStyle.Render(m.result.FinalPrice.StringFixed(2)))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderFindings() string {
	if m.report == nil || (len(m.report.Warnings) == 0 && len(m.report.Errors) == 0) {
		return ""
	}

	var b strings.Builder
	b.WriteString(sectionStyle.Render("Findings"))
	b.WriteString("\n")
	for _, e := range m.report.Errors {
		b.WriteString(errorStyle.Render("  error: " + e))
		b.WriteString("\n")
	}
	for _, w := range m.report.Warnings {
		b.WriteString(warnStyle.Render("  warning: " + w))
		b.WriteString("\n")
	}
	return b.String()
}
