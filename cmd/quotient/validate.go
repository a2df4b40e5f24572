package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mbeaudry/quotient/internal/validation"
)

var validateCmdRunner = runValidate

func newValidateCmd(root *rootFlags) *cobra.Command {
	opts := inputFlags{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Price an assessment and fail on validation errors",
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateCmdRunner(root, opts, cmd.OutOrStdout())
		},
	}

	registerInputFlags(cmd, &opts)

	return cmd
}

func runValidate(root *rootFlags, opts inputFlags, out io.Writer) error {
	app, err := newAppContext(root, opts)
	if err != nil {
		return err
	}

	result, err := app.engine.Calculate(app.assessment, app.catalog, app.basePrice)
	if err != nil {
		return err
	}

	report := validation.ValidateResult(result, app.tunables)

	for _, w := range report.Warnings {
		fmt.Fprintf(out, "warning: %s\n", w)
	}
	for _, e := range report.Errors {
		fmt.Fprintf(out, "error: %s\n", e)
	}

	if !report.Valid {
		return fmt.Errorf("pricing result failed validation with %d error(s)", len(report.Errors))
	}

	fmt.Fprintln(out, "pricing result is valid")
	return nil
}
