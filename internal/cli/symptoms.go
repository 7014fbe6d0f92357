package cli

import (
	"github.com/spf13/cobra"

	"github.com/machakos/malaria/pkg/report"
)

type SymptomsArgs struct {
	*RootArgs

	Output string
}

func NewSymptomsCmd(rootArgs *RootArgs) *cobra.Command {
	sa := &SymptomsArgs{RootArgs: rootArgs}

	cmd := &cobra.Command{
		Use:   "symptoms",
		Short: "List known symptoms and the phrases that detect them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := sa.newApp()
			if err != nil {
				return err
			}

			p, err := a.printer(cmd, sa.Output)
			if err != nil {
				return err
			}

			return p.PrintSymptoms(report.Symptoms(a.extractor.Dictionary())) //nolint:wrapcheck // Already descriptive.
		},
	}

	addOutputFlag(cmd, &sa.Output)

	bindEnvVars(cmd)

	return cmd
}
