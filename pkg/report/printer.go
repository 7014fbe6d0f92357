package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/machakos/malaria/pkg/symptom"
	"github.com/machakos/malaria/pkg/yaml"
)

// Format is an output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

const (
	defaultWidth     = 80
	wrapOnCharacters = " /-"
	ellipsis         = "…"
)

// ErrUnknownFormat is returned by [ParseFormat].
var ErrUnknownFormat = errors.New("unknown output format")

// AllFormats lists every output format.
var AllFormats = []string{
	string(FormatText),
	string(FormatJSON),
	string(FormatYAML),
}

// ParseFormat parses an output format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(AllFormats, string(f)) {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}

	return f, nil
}

// Printer writes reports to a writer in a single [Format].
type Printer struct {
	w       io.Writer
	theme   *Theme
	format  Format
	style   string
	profile termenv.Profile
	width   int
}

// Opt configures a [Printer].
type Opt func(*Printer)

// WithProfile overrides the color profile. By default colors are used only
// when writing to a terminal.
func WithProfile(profile termenv.Profile) Opt {
	return func(p *Printer) {
		p.profile = profile
	}
}

// WithStyle sets the chroma style used for highlighting.
func WithStyle(style string) Opt {
	return func(p *Printer) {
		p.style = style
	}
}

// WithWidth sets the width text is wrapped to.
func WithWidth(width int) Opt {
	return func(p *Printer) {
		p.width = width
	}
}

// NewPrinter creates a [Printer] writing to w.
func NewPrinter(w io.Writer, format Format, opts ...Opt) *Printer {
	p := &Printer{
		w:       w,
		format:  format,
		style:   "auto",
		profile: termenv.Ascii,
		width:   defaultWidth,
	}

	if f, ok := w.(interface{ Fd() uintptr }); ok && term.IsTerminal(int(f.Fd())) {
		p.profile = termenv.EnvColorProfile()
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			p.width = min(width, defaultWidth)
		}
	}

	for _, opt := range opts {
		opt(p)
	}

	r := lipgloss.NewRenderer(w, termenv.WithProfile(p.profile))
	r.SetColorProfile(p.profile)
	p.theme = NewTheme(r, p.style)

	return p
}

// PrintDiagnosis writes d.
func (p *Printer) PrintDiagnosis(d Diagnosis) error {
	if p.format != FormatText {
		return p.encode(d)
	}

	var b strings.Builder

	b.WriteString(p.theme.BoxStyle(d.Tier).Render(d.Label))
	b.WriteString("\n")
	b.WriteString(p.theme.SubtleStyle.Render("Tier: " + string(d.Tier)))
	b.WriteString("\n")

	if len(d.Detected) > 0 {
		b.WriteString(p.theme.SubtleStyle.Render("Symptoms: " + titles(d.Detected)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(p.theme.HeadingStyle.Render("Reasoning"))
	b.WriteString("\n")

	for _, e := range d.Explanations {
		b.WriteString(p.bullet(e))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(p.theme.SubtleStyle.Render(cellbuf.Wrap(d.Disclaimer, p.width, wrapOnCharacters)))
	b.WriteString("\n")

	_, err := io.WriteString(p.w, b.String())
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// PrintDetection writes d.
func (p *Printer) PrintDetection(d Detection) error {
	if p.format != FormatText {
		return p.encode(d)
	}

	var b strings.Builder

	if len(d.Matches) == 0 {
		b.WriteString(d.Message)
		b.WriteString("\n")
	} else {
		b.WriteString(p.theme.HeadingStyle.Render("Symptoms detected from your description:"))
		b.WriteString("\n")

		for _, m := range d.Matches {
			b.WriteString(p.bullet(fmt.Sprintf("%s %s", m.Symptom.Title(),
				p.theme.SubtleStyle.Render(fmt.Sprintf("(%q)", m.Keyword)))))
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(p.w, b.String())
	if err != nil {
		return fmt.Errorf("write detection: %w", err)
	}

	return nil
}

// PrintSymptoms writes the symptom listing as three columns: identifier,
// display name and keywords.
func (p *Printer) PrintSymptoms(infos []SymptomInfo) error {
	if p.format != FormatText {
		return p.encode(infos)
	}

	idWidth, titleWidth := len("ID"), len("NAME")
	for _, info := range infos {
		idWidth = max(idWidth, lipgloss.Width(info.ID))
		titleWidth = max(titleWidth, lipgloss.Width(info.Title))
	}

	idWidth += 2
	titleWidth += 2
	kwWidth := max(p.width-idWidth-titleWidth, 20)

	idCol := p.theme.HeadingStyle.Width(idWidth)
	titleCol := p.theme.renderer.NewStyle().Width(titleWidth)
	kwCol := p.theme.SubtleStyle

	var b strings.Builder

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		idCol.Render("ID"), titleCol.Render("NAME"), kwCol.Render("KEYWORDS")))
	b.WriteString("\n")

	for _, info := range infos {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			idCol.Render(info.ID),
			titleCol.Render(info.Title),
			kwCol.Render(truncate.StringWithTail(strings.Join(info.Keywords, ", "), uint(kwWidth), ellipsis)),
		))
		b.WriteString("\n")
	}

	_, err := io.WriteString(p.w, b.String())
	if err != nil {
		return fmt.Errorf("write symptoms: %w", err)
	}

	return nil
}

// PrintSource writes src, highlighted as the given chroma language when
// colors are enabled.
func (p *Printer) PrintSource(src, language string) error {
	if p.profile == termenv.Ascii {
		_, err := io.WriteString(p.w, src)
		if err != nil {
			return fmt.Errorf("write: %w", err)
		}

		return nil
	}

	return Highlight(p.w, src, language, p.theme.ChromaStyle, p.profile)
}

func (p *Printer) encode(v any) error {
	switch p.format {
	case FormatJSON:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal json: %w", err)
		}

		return p.PrintSource(string(b)+"\n", "JSON")

	case FormatYAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}

		return p.PrintSource(string(b), "YAML")

	case FormatText:
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, p.format)
}

// bullet renders s as a list item, wrapped and indented to the printer's
// width.
func (p *Printer) bullet(s string) string {
	lines := strings.Split(cellbuf.Wrap(s, max(p.width-4, 10), wrapOnCharacters), "\n")
	for i, line := range lines {
		if i == 0 {
			lines[i] = "  - " + line
		} else {
			lines[i] = "    " + line
		}
	}

	return strings.Join(lines, "\n")
}

func titles(names []string) string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, symptom.Symptom(name).Title())
	}

	return strings.Join(out, ", ")
}
