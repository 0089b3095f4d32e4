package views

import (
	"github.com/charmbracelet/lipgloss"

	"canvasnav/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Dim          lipgloss.Style
	Filter       lipgloss.Style
	Status       lipgloss.Style
	Help         lipgloss.Style
	Main         lipgloss.Style
	Scroll       lipgloss.Style
	Highlight    lipgloss.Style
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardTitle    lipgloss.Style
	CardBody     lipgloss.Style
	Overlay      lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Dim:       lipgloss.NewStyle().Faint(true),
		Filter:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Help:      lipgloss.NewStyle().Faint(true),
		Main:      lipgloss.NewStyle().Padding(0, 1),
		Scroll:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		CardTitle: lipgloss.NewStyle().Bold(true),
		CardBody:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Overlay: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(1, 2),
	}
}

// StatusColor returns the color for a card status
func StatusColor(status domain.CardStatus) string {
	switch status {
	case domain.StatusActive:
		return "78" // green
	case domain.StatusArchived:
		return "241" // gray
	default:
		return "33" // blue
	}
}

// StatusIcon returns the glyph shown before a card status
func StatusIcon(status domain.CardStatus) string {
	switch status {
	case domain.StatusActive:
		return "●"
	case domain.StatusArchived:
		return "◌"
	default:
		return "○"
	}
}
