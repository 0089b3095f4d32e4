package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"canvasnav/internal/domain"
	"canvasnav/internal/ui/views"
)

// PagerOps shows card details in the ov pager
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program reference for terminal management
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// Available reports whether the pager can take over the terminal
func (p *PagerOps) Available() bool {
	return p.program != nil
}

// ShowInPager shows content using ov pager
func (p *PagerOps) ShowInPager(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return fmt.Errorf("failed to release terminal: %w", err)
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("failed to open pager: %w", err)
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// RenderCardDetail renders the full card for the pager
func RenderCardDetail(card domain.Card) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(views.StatusColor(card.Status)))

	var b strings.Builder
	b.WriteString(titleStyle.Render(card.Title))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Status:  "))
	b.WriteString(statusStyle.Render(views.StatusIcon(card.Status) + " " + string(card.Status)))
	b.WriteString("\n")
	if !card.UpdatedAt.IsZero() {
		b.WriteString(labelStyle.Render("Updated: "))
		b.WriteString(card.UpdatedAt.Format(time.RFC1123))
		b.WriteString("\n")
	}
	b.WriteString(labelStyle.Render("ID:      "))
	b.WriteString(card.ID)
	b.WriteString("\n\n")
	b.WriteString(card.Body)
	b.WriteString("\n")
	return b.String()
}
