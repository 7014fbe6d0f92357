package form

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/machakos/malaria/pkg/report"
)

var (
	accent = report.ColorNegative
	subtle = lipgloss.AdaptiveColor{Light: "#6a737d", Dark: "#8b949e"}
	errorC = report.ColorPositive
)

// Theme returns the form's huh theme.
func Theme() *huh.Theme {
	h := huh.ThemeBase()

	h.Focused.Base = h.Focused.Base.BorderForeground(accent)
	h.Focused.Card = h.Focused.Base
	h.Focused.Title = h.Focused.Title.Foreground(accent).Bold(true)
	h.Focused.Description = h.Focused.Description.Foreground(subtle)
	h.Focused.ErrorIndicator = h.Focused.ErrorIndicator.Foreground(errorC)
	h.Focused.ErrorMessage = h.Focused.ErrorMessage.Foreground(errorC)
	h.Focused.SelectSelector = h.Focused.SelectSelector.Foreground(accent)
	h.Focused.MultiSelectSelector = h.Focused.MultiSelectSelector.Foreground(accent)
	h.Focused.SelectedOption = h.Focused.SelectedOption.Foreground(accent)
	h.Focused.SelectedPrefix = lipgloss.NewStyle().
		Foreground(accent).
		SetString("✓ ")
	h.Focused.UnselectedPrefix = lipgloss.NewStyle().
		Foreground(subtle).
		SetString("• ")

	h.Focused.TextInput.Cursor = h.Focused.TextInput.Cursor.Foreground(accent)
	h.Focused.TextInput.Placeholder = h.Focused.TextInput.Placeholder.Foreground(subtle)
	h.Focused.TextInput.Prompt = h.Focused.TextInput.Prompt.Foreground(accent)

	h.Blurred = h.Focused
	h.Blurred.Base = h.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	h.Blurred.Card = h.Blurred.Base
	h.Blurred.NextIndicator = lipgloss.NewStyle()
	h.Blurred.PrevIndicator = lipgloss.NewStyle()

	h.Group.Title = h.Focused.Title
	h.Group.Description = h.Focused.Description

	return h
}
