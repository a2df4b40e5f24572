package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

type inputFlags struct {
	AssessmentPath string
	CatalogPath    string
	BasePrice      float64
}

func registerInputFlags(cmd *cobra.Command, opts *inputFlags) {
	cmd.Flags().StringVarP(&opts.AssessmentPath, "assessment", "a", "", "Path to the assessment snapshot file")
	cmd.Flags().StringVarP(&opts.CatalogPath, "catalog", "c", "", "Path to the service catalog file")
	cmd.Flags().Float64Var(&opts.BasePrice, "base-price", 0, "Base price before adjustments")
	cmd.MarkFlagRequired("assessment") //nolint:errcheck
	cmd.MarkFlagRequired("catalog")    //nolint:errcheck
}

func validateInputFlags(opts inputFlags) error {
	if err := requireFile("assessment", opts.AssessmentPath); err != nil {
		return err
	}
	if err := requireFile("catalog", opts.CatalogPath); err != nil {
		return err
	}
	if opts.BasePrice < 0 {
		return fmt.Errorf("base price must not be negative")
	}
	return nil
}

func requireFile(name, path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%s file is required", name)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s path: %w", name, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("%s file does not exist: %w", name, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s path %s is a directory", name, abs)
	}

	return nil
}
