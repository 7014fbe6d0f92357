package cli

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/x/exp/charmtone"

	"github.com/machakos/malaria/pkg/report"
)

// ColorScheme is the fang color scheme, built around the tier colors.
func ColorScheme(c lipgloss.LightDarkFunc) fang.ColorScheme {
	var (
		positive  = lipgloss.Color(string(report.ColorPositive))
		negative  = lipgloss.Color(string(report.ColorNegative))
		uncertain = lipgloss.Color(string(report.ColorUncertain))
		text      = c(charmtone.Charcoal, charmtone.Salt)
		subtle    = c(charmtone.Squid, charmtone.Smoke)
	)

	return fang.ColorScheme{
		Base:           text,
		Title:          negative,
		Codeblock:      c(charmtone.Salt, lipgloss.Color("#2F2E36")),
		Program:        negative,
		Command:        negative,
		DimmedArgument: subtle,
		Comment:        subtle,
		Flag:           uncertain,
		Argument:       text,
		Description:    text,
		FlagDefault:    subtle,
		QuotedString:   uncertain,
		ErrorHeader: [2]color.Color{
			charmtone.Salt,
			positive,
		},
	}
}
