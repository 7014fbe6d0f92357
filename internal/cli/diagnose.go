package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/machakos/malaria/pkg/extract"
	"github.com/machakos/malaria/pkg/log"
	"github.com/machakos/malaria/pkg/report"
	"github.com/machakos/malaria/pkg/symptom"
	"github.com/machakos/malaria/pkg/tracing"
)

const diagnoseExamples = `  # By symptom name, in any case, with spaces or dashes:
  malaria diagnose fever "joint pain" loss-of-appetite

  # From a description ("-" reads stdin):
  echo "burning up, shivering and sweating at night" | malaria diagnose --text -

  # Both, as JSON:
  malaria diagnose fever --text "terrible headache" -o json`

type DiagnoseArgs struct {
	*RootArgs

	Text    string
	Output  string
	Lenient bool
}

func NewDiagnoseCmd(rootArgs *RootArgs) *cobra.Command {
	da := &DiagnoseArgs{RootArgs: rootArgs}

	cmd := &cobra.Command{
		Use:               "diagnose [symptom...]",
		Short:             "Estimate the likelihood of malaria from symptoms",
		Example:           diagnoseExamples,
		Args:              cobra.ArbitraryArgs,
		ValidArgsFunction: completeSymptoms,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiagnose(cmd, da, args)
		},
	}

	cmd.Flags().StringVarP(&da.Text, "text", "t", "", `Describe the symptoms in words ("-" reads stdin)`)
	cmd.Flags().BoolVar(&da.Lenient, "lenient", false, "Ignore unknown symptom names instead of failing")
	addOutputFlag(cmd, &da.Output)

	bindEnvVars(cmd)

	return cmd
}

func runDiagnose(cmd *cobra.Command, da *DiagnoseArgs, args []string) error {
	a, err := da.newApp()
	if err != nil {
		return err
	}

	p, err := a.printer(cmd, da.Output)
	if err != nil {
		return err
	}

	set, err := parseSymptoms(args, da.Lenient)
	if err != nil {
		return err
	}

	ctx, span := tracing.Tracer("cli").Start(cmd.Context(), "diagnose")
	defer span.End()

	var det *extract.Detection
	if da.Text != "" {
		text, err := readText(cmd, []string{da.Text})
		if err != nil {
			return err
		}

		d := a.extractor.Extract(text)
		det = &d
		set = set.With(d.Symptoms.Present()...)
	}

	res := a.engine.Diagnose(set)

	span.SetAttributes(
		attribute.String("diagnosis.rule", res.Rule),
		attribute.String("diagnosis.tier", string(res.Tier)),
	)

	log.WithContext(ctx).DebugContext(ctx, "diagnosed",
		slog.String("rule", res.Rule),
		slog.String("tier", string(res.Tier)),
		slog.Any("symptoms", set.Names()),
	)

	rep := report.NewDiagnosis(res, set)
	if det != nil {
		rep.Matches = det.Matches
	}

	return p.PrintDiagnosis(rep) //nolint:wrapcheck // Already descriptive.
}

// parseSymptoms parses symptom names. Unknown names fail unless lenient, in
// which case they are logged and skipped.
func parseSymptoms(names []string, lenient bool) (symptom.Set, error) {
	if !lenient {
		return symptom.FromNames(names) //nolint:wrapcheck // Includes suggestions.
	}

	var set symptom.Set
	for _, name := range names {
		s, err := symptom.Parse(name)
		if errors.Is(err, symptom.ErrUnknownSymptom) {
			slog.Warn("ignoring unknown symptom", slog.String("name", name), slog.Any("error", err))
			continue
		}
		if err != nil {
			return symptom.Set{}, fmt.Errorf("parse symptom: %w", err)
		}

		set = set.With(s)
	}

	return set, nil
}

func completeSymptoms(_ *cobra.Command, args []string, _ string) ([]cobra.Completion, cobra.ShellCompDirective) {
	completions := make([]cobra.Completion, 0, len(symptom.All))
	for _, s := range symptom.All {
		if slices.Contains(args, s.String()) {
			continue
		}

		completions = append(completions, cobra.CompletionWithDesc(s.String(), s.Title()))
	}

	return completions, cobra.ShellCompDirectiveNoFileComp
}
