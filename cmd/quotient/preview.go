package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mbeaudry/quotient/internal/tui/preview"
)

func newPreviewCmd(root *rootFlags) *cobra.Command {
	opts := inputFlags{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Interactively preview pricing while toggling calculation options",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("preview requires an interactive terminal; use 'quotient price' instead")
			}
			return runPreview(root, opts)
		},
	}

	registerInputFlags(cmd, &opts)

	return cmd
}

func runPreview(root *rootFlags, opts inputFlags) error {
	app, err := newAppContext(root, opts)
	if err != nil {
		return err
	}

	model := preview.NewModel(app.engine, app.tunables, app.assessment, app.catalog, app.basePrice)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}
