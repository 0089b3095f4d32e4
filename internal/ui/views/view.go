package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"canvasnav/internal/domain"
	"canvasnav/internal/ui/layout"
)

// Rows taken by the header and the footer around the board
const (
	headerRows = 1
	footerRows = 1
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Title          string
	Cards          []domain.Card
	TotalCards     int
	Layout         *layout.Engine
	SelectedIndex  int // -1 when nothing is selected
	ViewportOffset int
	FilterQuery    string
	InputPrompt    string
	InputView      string // rendered text input, empty unless a text mode is active
	ShowHelp       bool
	StatusMessage  string
	Help           help.Model
	Keys           KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles  *Styles
	board   *BoardRenderer
	overlay *OverlayRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:  styles,
		board:   NewBoardRenderer(NewCardRenderer(styles)),
		overlay: NewOverlayRenderer(styles),
	}
}

// BoardWidth is the width available to cards inside the main container
func BoardWidth(width int) int {
	return max(width-2, 0)
}

// BoardHeight is the number of board rows visible at the given terminal height
func BoardHeight(height int, inputActive bool) int {
	rows := height - headerRows - footerRows
	if inputActive {
		rows--
	}
	return max(rows, 0)
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	var content strings.Builder

	content.WriteString(r.renderHeader(state))
	content.WriteString("\n")

	inputActive := state.InputView != ""
	if inputActive {
		content.WriteString(r.styles.Filter.Render(state.InputPrompt))
		content.WriteString(state.InputView)
		content.WriteString("\n")
	}

	boardHeight := BoardHeight(state.Height, inputActive)
	var body string
	switch {
	case state.TotalCards == 0:
		body = r.styles.Dim.Render("No cards on this board.")
	case len(state.Cards) == 0:
		body = r.styles.Dim.Render("No cards match the filter. Press esc to clear it.")
	default:
		body = r.board.RenderBoard(state.Cards, state.Layout, state.SelectedIndex, state.FilterQuery, state.ViewportOffset, boardHeight)
	}
	content.WriteString(padLines(body, boardHeight))
	content.WriteString("\n")
	content.WriteString(r.renderFooter(state))

	mainStyle := r.styles.Main.MaxHeight(state.Height)
	finalContent := mainStyle.Render(content.String())

	if state.ShowHelp {
		return r.overlay.RenderOverlay(finalContent, r.RenderHelpContent(state.Keys), state.Width, state.Height)
	}
	return finalContent
}

func (r *Renderer) renderHeader(state ViewState) string {
	title := state.Title
	if title == "" {
		title = "canvasnav"
	}
	logo := r.styles.Title.Render(title)

	var right []string
	if state.Layout != nil {
		right = append(right, r.styles.Dim.Render(state.Layout.Mode().String()))
	}
	count := fmt.Sprintf("%d cards", len(state.Cards))
	if len(state.Cards) != state.TotalCards {
		count = fmt.Sprintf("%d/%d cards", len(state.Cards), state.TotalCards)
	}
	right = append(right, r.styles.Dim.Render(count))
	if state.FilterQuery != "" {
		right = append(right, r.styles.Filter.Render(fmt.Sprintf("[Filter: %s]", state.FilterQuery)))
	}
	rightContent := strings.Join(right, "  ")

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	padding := BoardWidth(termWidth) - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + rightContent
}

func (r *Renderer) renderFooter(state ViewState) string {
	if state.StatusMessage != "" {
		return r.styles.Status.Render(state.StatusMessage)
	}
	h := state.Help
	h.Width = BoardWidth(state.Width)
	return h.View(state.Keys)
}

// RenderHelpContent renders the help overlay body
func (r *Renderer) RenderHelpContent(keys KeyMap) string {
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	var b strings.Builder
	b.WriteString(r.styles.Title.Render("Keyboard"))
	b.WriteString("\n")

	sections := []string{"Navigation", "Board"}
	for i, group := range keys.FullHelp() {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(sections[i]))
		b.WriteString("\n")
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-8s", h.Key)), descStyle.Render(h.Desc)))
		}
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).Render("Filter examples: deploy, status:active"))
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render(ModifiedOpenHint()))
	return b.String()
}

func padLines(s string, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
