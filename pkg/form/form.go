// Package form asks for symptoms interactively, either as a checklist or as
// a free text description.
package form

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/machakos/malaria/pkg/extract"
	"github.com/machakos/malaria/pkg/symptom"
)

// ErrNotInteractive is returned by [Form.Run] when stdin is not a terminal.
var ErrNotInteractive = errors.New("not running interactively")

// Method is how symptoms are entered.
type Method string

const (
	// MethodChecklist picks symptoms from the list of known ones.
	MethodChecklist Method = "checklist"
	// MethodText extracts symptoms from a free text description.
	MethodText Method = "text"
)

// Input method labels.
const (
	LabelChecklist = "Select from List (Checkboxes)"
	LabelText      = "Describe Symptoms (Text Input)"
)

// Answers holds the raw values collected by the form.
type Answers struct {
	Method   Method
	Text     string
	Selected []string
}

// Result is what the form produced.
type Result struct {
	// Detection is set when symptoms were described as text.
	Detection *extract.Detection
	Symptoms  symptom.Set
}

// Resolve turns answers into a [Result], running text through ex.
func (a Answers) Resolve(ex *extract.Extractor) (Result, error) {
	switch a.Method {
	case MethodChecklist:
		set, err := symptom.FromNames(a.Selected)
		if err != nil {
			return Result{}, fmt.Errorf("resolve selection: %w", err)
		}

		return Result{Symptoms: set}, nil

	case MethodText:
		det := ex.Extract(a.Text)

		return Result{Symptoms: det.Symptoms, Detection: &det}, nil
	}

	return Result{}, fmt.Errorf("unknown input method %q", a.Method)
}

// MethodOptions returns the input method choices.
func MethodOptions() []huh.Option[Method] {
	return []huh.Option[Method]{
		huh.NewOption(LabelChecklist, MethodChecklist),
		huh.NewOption(LabelText, MethodText),
	}
}

// SymptomOptions returns one checklist option per known symptom, labeled
// with its display name.
func SymptomOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(symptom.All))
	for _, s := range symptom.All {
		opts = append(opts, huh.NewOption(s.Title(), s.String()))
	}

	return opts
}

// Form collects symptoms interactively.
type Form struct {
	extractor  *extract.Extractor
	theme      *huh.Theme
	input      io.Reader
	output     io.Writer
	accessible bool
}

// Opt configures a [Form].
type Opt func(*Form)

// WithTheme sets the huh theme.
func WithTheme(t *huh.Theme) Opt {
	return func(f *Form) {
		f.theme = t
	}
}

// WithAccessible enables huh's accessible mode, which uses plain prompts
// instead of a TUI.
func WithAccessible(accessible bool) Opt {
	return func(f *Form) {
		f.accessible = accessible
	}
}

// WithIO sets the form's input and output. Without it the form requires
// stdin to be a terminal.
func WithIO(in io.Reader, out io.Writer) Opt {
	return func(f *Form) {
		f.input = in
		f.output = out
	}
}

// New creates a [Form].
func New(ex *extract.Extractor, opts ...Opt) *Form {
	f := &Form{
		extractor: ex,
		theme:     Theme(),
	}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Run asks for the input method, then for the symptoms themselves.
func (f *Form) Run(ctx context.Context) (Result, error) {
	if f.input == nil && !term.IsTerminal(int(os.Stdin.Fd())) {
		return Result{}, ErrNotInteractive
	}

	var a Answers

	err := f.run(ctx, huh.NewGroup(
		huh.NewSelect[Method]().
			Title("How would you like to enter symptoms?").
			Options(MethodOptions()...).
			Value(&a.Method),
	))
	if err != nil {
		return Result{}, fmt.Errorf("choose input method: %w", err)
	}

	switch a.Method {
	case MethodChecklist:
		err = f.run(ctx, huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Symptoms").
				Description("Select every symptom that applies.").
				Options(SymptomOptions()...).
				Height(len(symptom.All)/2).
				Value(&a.Selected),
		))

	case MethodText:
		err = f.run(ctx, huh.NewGroup(
			huh.NewText().
				Title("Describe the symptoms").
				Placeholder("e.g. high fever and chills at night, feeling very tired").
				Value(&a.Text),
		))
	}

	if err != nil {
		return Result{}, fmt.Errorf("enter symptoms: %w", err)
	}

	return a.Resolve(f.extractor)
}

func (f *Form) run(ctx context.Context, group *huh.Group) error {
	form := huh.NewForm(group).
		WithShowHelp(false).
		WithTheme(f.theme).
		WithAccessible(f.accessible)

	if f.input != nil {
		form = form.WithInput(f.input)
	}
	if f.output != nil {
		form = form.WithOutput(f.output)
	}

	return form.RunWithContext(ctx) //nolint:wrapcheck // Wrapped by the caller.
}
