package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/machakos/malaria/pkg/log"
	"github.com/machakos/malaria/pkg/tracing"
)

const (
	cmdName = "malaria"
	cmdDesc = `Rule-based malaria likelihood checker.`

	cmdExamples = `  # Diagnose from symptom names:
  malaria diagnose fever chills sweating fatigue

  # Diagnose from a description:
  malaria diagnose --text "high fever and chills, feeling very tired"

  # Show which symptoms a description mentions:
  malaria extract "I have been vomiting and feel dizzy"

  # Use the interactive checklist:
  malaria form

  # Serve the HTTP API:
  malaria serve --addr :8080`
)

type RootArgs struct {
	shutdownTracing tracing.ShutdownFunc

	LogLevel      string
	LogFormat     string
	ConfigPath    string
	TraceEndpoint string
	TraceInsecure bool
}

func NewRootArgs() *RootArgs {
	return &RootArgs{}
}

func (ra *RootArgs) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVar(&ra.LogLevel, "log-level", "info", fmt.Sprintf("Log level, one of: %s", log.AllLevels))
	cmd.PersistentFlags().
		StringVar(&ra.LogFormat, "log-format", "text", fmt.Sprintf("Log format, one of: %s", log.AllFormats))
	cmd.PersistentFlags().
		StringVar(&ra.ConfigPath, "config", "", "Path to the malaria configuration file")
	cmd.PersistentFlags().
		StringVar(&ra.TraceEndpoint, "trace-endpoint", "", "OTLP/gRPC endpoint to export traces to")
	cmd.PersistentFlags().
		BoolVar(&ra.TraceInsecure, "trace-insecure", false, "Disable TLS for the trace endpoint")

	var err error

	err = cmd.RegisterFlagCompletionFunc("log-format",
		cobra.FixedCompletions(log.AllFormats, cobra.ShellCompDirectiveNoFileComp),
	)
	if err != nil {
		panic(err)
	}

	err = cmd.RegisterFlagCompletionFunc("log-level",
		cobra.FixedCompletions(log.AllLevels, cobra.ShellCompDirectiveNoFileComp),
	)
	if err != nil {
		panic(err)
	}

	err = cmd.MarkPersistentFlagFilename("config", "yaml", "yml")
	if err != nil {
		panic(fmt.Errorf("mark config flag: %w", err))
	}
}

func NewRootCmd() *cobra.Command {
	args := NewRootArgs()

	cmd := &cobra.Command{
		Use:                cmdName,
		Short:              cmdDesc,
		Example:            cmdExamples,
		SilenceUsage:       true,
		PersistentPreRunE:  setup(args),
		PersistentPostRunE: teardown(args),
	}

	args.AddFlags(cmd)

	cmd.AddCommand(
		NewDiagnoseCmd(args),
		NewExtractCmd(args),
		NewSymptomsCmd(args),
		NewFormCmd(args),
		NewServeCmd(args),
		NewMCPCmd(args),
		NewConfigCmd(args),
	)

	bindEnvVars(cmd)

	return cmd
}

func setup(ra *RootArgs) func(cmd *cobra.Command, _ []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		err := log.Setup(cmd.ErrOrStderr(), ra.LogLevel, ra.LogFormat)
		if err != nil {
			return fmt.Errorf("create log handler: %w", err)
		}

		ra.shutdownTracing, err = tracing.Setup(cmd.Context(), tracing.Options{
			Endpoint: ra.TraceEndpoint,
			Insecure: ra.TraceInsecure,
		})
		if err != nil {
			return fmt.Errorf("setup tracing: %w", err)
		}

		return nil
	}
}

func teardown(ra *RootArgs) func(cmd *cobra.Command, _ []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if ra.shutdownTracing == nil {
			return nil
		}

		err := ra.shutdownTracing(cmd.Context())
		if err != nil {
			return fmt.Errorf("shutdown tracing: %w", err)
		}

		return nil
	}
}
