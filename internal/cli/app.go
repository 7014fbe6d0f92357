package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/machakos/malaria/api/v1beta1/configs"
	"github.com/machakos/malaria/pkg/config"
	"github.com/machakos/malaria/pkg/diagnosis"
	"github.com/machakos/malaria/pkg/extract"
	"github.com/machakos/malaria/pkg/report"
)

// app holds what every command needs once the configuration is loaded.
type app struct {
	cfg       *configs.Config
	engine    *diagnosis.Engine
	extractor *extract.Extractor
}

// configPath returns the configuration path and whether the file must exist.
// A path given explicitly must exist, the default one may not.
func (ra *RootArgs) configPath() (string, bool) {
	if ra.ConfigPath != "" {
		return ra.ConfigPath, true
	}

	return configs.GetPath(), false
}

func (ra *RootArgs) newApp() (*app, error) {
	path, required := ra.configPath()

	cfg, err := config.Load(path, required)
	if err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}

	dict, err := config.Dictionary(cfg)
	if err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}

	return &app{
		cfg:       cfg,
		engine:    diagnosis.Default(),
		extractor: extract.New(dict),
	}, nil
}

// printer returns a report printer for cmd's output. An empty format falls
// back to the configured one.
func (a *app) printer(cmd *cobra.Command, format string) (*report.Printer, error) {
	if format == "" {
		format = a.cfg.Output.Format
	}

	f, err := report.ParseFormat(format)
	if err != nil {
		return nil, err //nolint:wrapcheck // Already descriptive.
	}

	return report.NewPrinter(cmd.OutOrStdout(), f), nil
}

func addOutputFlag(cmd *cobra.Command, output *string) {
	cmd.Flags().StringVarP(output, "output", "o", "",
		fmt.Sprintf("Output format, one of: %s (default from config)", report.AllFormats))

	err := cmd.RegisterFlagCompletionFunc("output",
		cobra.FixedCompletions(report.AllFormats, cobra.ShellCompDirectiveNoFileComp),
	)
	if err != nil {
		panic(err)
	}
}

// readText joins args into one text, reading stdin when the only argument
// is "-".
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}

		return string(b), nil
	}

	return strings.Join(args, " "), nil
}
