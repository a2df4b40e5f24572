package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose      bool
	tunablesPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "quotient",
		Short:         "Quotient turns property assessments into priced service quotes",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.tunablesPath, "tunables", "", "Path to a tunables override file")

	cmd.AddCommand(newPriceCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newCompareCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
