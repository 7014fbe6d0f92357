package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/machakos/malaria/api/v1beta1/configs"
	"github.com/machakos/malaria/pkg/report"
)

func NewConfigCmd(rootArgs *RootArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	cmd.AddCommand(
		newConfigWriteCmd(rootArgs),
		newConfigShowCmd(rootArgs),
		newConfigSchemaCmd(rootArgs),
	)

	return cmd
}

func newConfigWriteCmd(ra *RootArgs) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "write",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := ra.configPath()

			return configs.WriteDefault(path, force) //nolint:wrapcheck // Already descriptive.
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file, keeping a backup")

	bindEnvVars(cmd)

	return cmd
}

func newConfigShowCmd(ra *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the active configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := ra.newApp()
			if err != nil {
				return err
			}

			b, err := a.cfg.MarshalYAML()
			if err != nil {
				return fmt.Errorf("marshal config yaml: %w", err)
			}

			p := report.NewPrinter(cmd.OutOrStdout(), report.FormatYAML)

			return p.PrintSource(string(b), "YAML") //nolint:wrapcheck // Already descriptive.
		},
	}
}

func newConfigSchemaCmd(_ *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the configuration JSON schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := report.NewPrinter(cmd.OutOrStdout(), report.FormatJSON)

			return p.PrintSource(string(configs.Schema())+"\n", "JSON") //nolint:wrapcheck // Already descriptive.
		},
	}
}
