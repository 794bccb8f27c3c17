package versionview

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles are the lipgloss styles used by [View].
type Styles struct {
	Border     lipgloss.Style
	Header     lipgloss.Style
	Label      lipgloss.Style
	Value      lipgloss.Style
	Important  lipgloss.Style
	Additional lipgloss.Style
}

// NewStyles returns the default styles, rendered for the given color profile.
func NewStyles(p termenv.Profile) Styles {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(p)

	return Styles{
		Border:     r.NewStyle().Foreground(lipgloss.Color("42")),
		Header:     r.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		Label:      r.NewStyle().Foreground(lipgloss.Color("87")),
		Value:      r.NewStyle().Bold(true),
		Important:  r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Additional: r.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	}
}

// PlainStyles returns styles that render text unchanged.
func PlainStyles() Styles {
	return NewStyles(termenv.Ascii)
}
