package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mbeaudry/quotient/internal/validation"
	"github.com/mbeaudry/quotient/pkg/diff"
)

var compareCmdRunner = runCompare

func newCompareCmd(root *rootFlags) *cobra.Command {
	opts := inputFlags{}
	var againstPath string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Price two assessments and show how the quotes differ",
		RunE: func(cmd *cobra.Command, args []string) error {
			return compareCmdRunner(root, opts, againstPath, cmd.OutOrStdout())
		},
	}

	registerInputFlags(cmd, &opts)
	cmd.Flags().StringVar(&againstPath, "against", "", "Path to the second assessment file")
	cmd.MarkFlagRequired("against") //nolint:errcheck

	return cmd
}

func runCompare(root *rootFlags, opts inputFlags, againstPath string, out io.Writer) error {
	before, err := renderQuote(root, opts)
	if err != nil {
		return err
	}

	afterOpts := opts
	afterOpts.AssessmentPath = againstPath
	after, err := renderQuote(root, afterOpts)
	if err != nil {
		return err
	}

	unified := diff.Unified(before, after, opts.AssessmentPath, againstPath)
	if unified == "" {
		fmt.Fprintln(out, "quotes are identical")
		return nil
	}

	fmt.Fprint(out, unified)
	return nil
}

// renderQuote prices one assessment and returns the plain-text summary used
// as diff input. Styling is disabled so the diff stays readable.
func renderQuote(root *rootFlags, opts inputFlags) ([]byte, error) {
	app, err := newAppContext(root, opts)
	if err != nil {
		return nil, err
	}

	result, err := app.engine.Calculate(app.assessment, app.catalog, app.basePrice)
	if err != nil {
		return nil, err
	}

	report := validation.ValidateResult(result, app.tunables)

	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "multiplier x%.3f\n", result.TotalMultiplier)
	fmt.Fprintf(buf, "labor %.1fh\n", result.TotalLaborHours)
	for _, factor := range result.Adjustments {
		fmt.Fprintf(buf, "adjustment %s x%.2f\n", factor.Name, factor.Multiplier)
	}
	for _, item := range result.SuggestedItems {
		fmt.Fprintf(buf, "item %s x%d %s\n", item.Item.Name, item.Quantity, item.Cost().StringFixed(2))
	}
	fmt.Fprintf(buf, "final price %s\n", result.FinalPrice.StringFixed(2))
	for _, w := range report.Warnings {
		fmt.Fprintf(buf, "warning %s\n", w)
	}
	for _, e := range report.Errors {
		fmt.Fprintf(buf, "error %s\n", e)
	}

	return buf.Bytes(), nil
}
