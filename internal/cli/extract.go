package cli

import (
	"github.com/spf13/cobra"

	"github.com/machakos/malaria/pkg/report"
)

type ExtractArgs struct {
	*RootArgs

	Output string
}

func NewExtractCmd(rootArgs *RootArgs) *cobra.Command {
	ea := &ExtractArgs{RootArgs: rootArgs}

	cmd := &cobra.Command{
		Use:   "extract TEXT|-",
		Short: "Show which symptoms a description mentions",
		Example: `  malaria extract "high fever, shivering and a terrible headache"
  cat notes.txt | malaria extract -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ea.newApp()
			if err != nil {
				return err
			}

			p, err := a.printer(cmd, ea.Output)
			if err != nil {
				return err
			}

			text, err := readText(cmd, args)
			if err != nil {
				return err
			}

			return p.PrintDetection(report.NewDetection(a.extractor.Extract(text))) //nolint:wrapcheck // Already descriptive.
		},
	}

	addOutputFlag(cmd, &ea.Output)

	bindEnvVars(cmd)

	return cmd
}
