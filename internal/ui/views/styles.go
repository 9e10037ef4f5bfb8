package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the reader
type Styles struct {
	Header  lipgloss.Style
	Text    lipgloss.Style
	Link    lipgloss.Style
	Title   lipgloss.Style
	Dim     lipgloss.Style
	Loading lipgloss.Style
	Error   lipgloss.Style
	Help    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Header:  lipgloss.NewStyle().Bold(true),
		Text:    lipgloss.NewStyle(),
		Link:    lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		Dim:     lipgloss.NewStyle().Faint(true),
		Loading: lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Help:    lipgloss.NewStyle().Faint(true),
	}
}
