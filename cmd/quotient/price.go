package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mbeaudry/quotient/internal/domain/quote"
	"github.com/mbeaudry/quotient/internal/pricing"
	"github.com/mbeaudry/quotient/internal/validation"
)

type priceOptions struct {
	inputFlags
	JSON          bool
	SkipLabor     bool
	SkipMaterials bool
	SkipEquipment bool
}

var priceCmdRunner = runPrice

func newPriceCmd(root *rootFlags) *cobra.Command {
	opts := priceOptions{}

	cmd := &cobra.Command{
		Use:   "price",
		Short: "Price an assessment against a service catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !opts.JSON {
				opts.JSON = !term.IsTerminal(int(os.Stdout.Fd()))
			}
			return priceCmdRunner(root, opts, cmd.OutOrStdout())
		},
	}

	registerInputFlags(cmd, &opts.inputFlags)
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Emit the result as JSON")
	cmd.Flags().BoolVar(&opts.SkipLabor, "skip-labor", false, "Skip the labor breakdown")
	cmd.Flags().BoolVar(&opts.SkipMaterials, "skip-materials", false, "Skip the material adjustments")
	cmd.Flags().BoolVar(&opts.SkipEquipment, "skip-equipment", false, "Skip the equipment costs")

	return cmd
}

type priceOutput struct {
	Result *quote.PricingResult    `json:"result"`
	Report *quote.ValidationReport `json:"report"`
}

func runPrice(root *rootFlags, opts priceOptions, out io.Writer) error {
	app, err := newAppContext(root, opts.inputFlags)
	if err != nil {
		return err
	}

	result, err := app.engine.CalculateOptimized(app.assessment, app.catalog, app.basePrice, pricing.Options{
		SkipLaborBreakdown:       opts.SkipLabor,
		SkipMaterialCalculation:  opts.SkipMaterials,
		SkipEquipmentCalculation: opts.SkipEquipment,
	})
	if err != nil {
		return err
	}

	report := validation.ValidateResult(result, app.tunables)

	if opts.JSON {
		payload, err := json.MarshalIndent(priceOutput{Result: result, Report: report}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(payload))
		return nil
	}

	renderPriceSummary(out, result, report)
	return nil
}

var (
	summaryTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	summarySectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	summaryPriceStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	summaryWarnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	summaryErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

func renderPriceSummary(out io.Writer, result *quote.PricingResult, report *quote.ValidationReport) {
	fmt.Fprintln(out, summaryTitleStyle.Render("Pricing result"))
	fmt.Fprintf(out, "base price %s  multiplier x%.3f  labor %.1fh  confidence %s (%.0f)\n",
		result.BasePrice.StringFixed(2), result.TotalMultiplier, result.TotalLaborHours,
		result.Confidence.Level, result.Confidence.Score)

	if len(result.Adjustments) > 0 {
		fmt.Fprintln(out, summarySectionStyle.Render("Adjustments"))
		for _, factor := range result.Adjustments {
			fmt.Fprintf(out, "  %-28s x%.2f  %s\n", factor.Name, factor.Multiplier, factor.Rationale)
		}
	}

	if len(result.SuggestedItems) > 0 {
		fmt.Fprintln(out, summarySectionStyle.Render("Suggested items"))
		for _, item := range result.SuggestedItems {
			fmt.Fprintf(out, "  %-32s x%d  %s  [%s/%s]\n",
				item.Item.Name, item.Quantity, item.Cost().StringFixed(2), item.Priority, item.Confidence)
		}
	}

	renderSection(out, "Labor", result.Labor)
	renderSection(out, "Materials", result.Materials)
	renderSection(out, "Equipment", result.Equipment)

	fmt.Fprintf(out, "final price %s\n", summaryPriceStyle.Render(result.FinalPrice.StringFixed(2)))

	for _, e := range report.Errors {
		fmt.Fprintln(out, summaryErrorStyle.Render("error: "+e))
	}
	for _, w := range report.Warnings {
		fmt.Fprintln(out, summaryWarnStyle.Render("warning: "+w))
	}
}

func renderSection(out io.Writer, name string, section quote.BreakdownSection) {
	if !section.Computed {
		fmt.Fprintf(out, "%s: skipped\n", name)
		return
	}
	if len(section.Entries) == 0 {
		return
	}
	fmt.Fprintln(out, summarySectionStyle.Render(name))
	for _, entry := range section.Entries {
		fmt.Fprintf(out, "  %-28s %8.2f @ %s = %s\n",
			entry.Label, entry.Quantity, entry.UnitCost.StringFixed(2), entry.Total.StringFixed(2))
	}
}
