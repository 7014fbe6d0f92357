package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/machakos/malaria/pkg/form"
	"github.com/machakos/malaria/pkg/log"
	"github.com/machakos/malaria/pkg/report"
)

type FormArgs struct {
	*RootArgs

	Output     string
	Accessible bool
}

func NewFormCmd(rootArgs *RootArgs) *cobra.Command {
	fa := &FormArgs{RootArgs: rootArgs}

	cmd := &cobra.Command{
		Use:   "form",
		Short: "Enter symptoms interactively, then diagnose",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runForm(cmd, fa)
		},
	}

	cmd.Flags().BoolVar(&fa.Accessible, "accessible", false, "Use plain prompts instead of the terminal UI")
	addOutputFlag(cmd, &fa.Output)

	bindEnvVars(cmd)

	return cmd
}

func runForm(cmd *cobra.Command, fa *FormArgs) error {
	a, err := fa.newApp()
	if err != nil {
		return err
	}

	p, err := a.printer(cmd, fa.Output)
	if err != nil {
		return err
	}

	// The form owns the terminal, so hold logs until it is done.
	logBuf := log.NewCircularBuffer(100)
	logHandler, err := log.CreateHandlerWithStrings(logBuf, fa.LogLevel, fa.LogFormat)
	if err != nil {
		return fmt.Errorf("create log handler: %w", err)
	}

	prev := slog.Default()
	slog.SetDefault(slog.New(logHandler))

	res, err := form.New(a.extractor, form.WithAccessible(fa.Accessible)).Run(cmd.Context())

	slog.SetDefault(prev)
	flushLogs(cmd.ErrOrStderr(), logBuf)

	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("form: %w", err)
	}

	if res.Detection != nil {
		err = p.PrintDetection(report.NewDetection(*res.Detection))
		if err != nil {
			return err //nolint:wrapcheck // Already descriptive.
		}
	}

	rep := report.NewDiagnosis(a.engine.Diagnose(res.Symptoms), res.Symptoms)
	if res.Detection != nil {
		rep.Matches = res.Detection.Matches
	}

	return p.PrintDiagnosis(rep) //nolint:wrapcheck // Already descriptive.
}

func flushLogs(w io.Writer, buf *log.CircularBuffer) {
	slog.Debug("flush logs to console",
		slog.Int("count", buf.Size()),
		slog.Int("max", buf.Capacity()),
		slog.Bool("truncated", buf.IsFull()),
	)

	_, err := buf.WriteTo(w)
	if err != nil {
		panic(err)
	}
}
