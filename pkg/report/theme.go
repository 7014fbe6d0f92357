package report

import (
	"os"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/machakos/malaria/pkg/diagnosis"
)

// Tier colors.
const (
	ColorPositive  = lipgloss.Color("#d90000")
	ColorUncertain = lipgloss.Color("#856404")
	ColorNegative  = lipgloss.Color("#009900")
)

// Theme holds the styles used by a [Printer].
type Theme struct {
	HeadingStyle lipgloss.Style
	SubtleStyle  lipgloss.Style

	ChromaStyle *chroma.Style

	renderer *lipgloss.Renderer
}

// NewTheme creates a theme bound to r. The chroma style name may be "auto",
// "dark", "light" or any registered chroma style.
func NewTheme(r *lipgloss.Renderer, style string) *Theme {
	cs := styles.Get(getStyle(style))
	if cs == nil {
		cs = styles.Fallback
	}

	return &Theme{
		HeadingStyle: r.NewStyle().Bold(true),
		SubtleStyle: r.NewStyle().
			Foreground(lipgloss.Color(cs.Get(chroma.Comment).Colour.String())), //nolint:misspell // Chroma naming.
		ChromaStyle: cs,
		renderer:    r,
	}
}

// TierColor returns the color of a tier.
func TierColor(t diagnosis.Tier) lipgloss.Color {
	switch t {
	case diagnosis.TierPositive:
		return ColorPositive
	case diagnosis.TierUncertain:
		return ColorUncertain
	}

	return ColorNegative
}

// BoxStyle returns the bordered style for a result of tier t.
func (th *Theme) BoxStyle(t diagnosis.Tier) lipgloss.Style {
	c := TierColor(t)

	return th.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c).
		Foreground(c).
		Bold(true).
		Padding(0, 1)
}

func getStyle(style string) string {
	switch style {
	case "dark":
		return "github-dark"
	case "light":
		return "github"
	case "auto", "":
		return getDefaultStyle()
	default:
		return style
	}
}

func getDefaultStyle() string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ""
	}
	if termenv.HasDarkBackground() {
		return "github-dark"
	}

	return "github"
}
