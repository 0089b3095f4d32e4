package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"canvasnav/internal/domain"
	"canvasnav/internal/ui/layout"
)

// CardRenderer handles rendering of a single card box
type CardRenderer struct {
	styles *Styles
	now    func() time.Time
}

// NewCardRenderer creates a new card renderer
func NewCardRenderer(styles *Styles) *CardRenderer {
	return &CardRenderer{styles: styles, now: time.Now}
}

// RenderCard renders card at the size given by its placement. The result is
// exactly as tall and wide as the placement rect.
func (r *CardRenderer) RenderCard(card domain.Card, p layout.Placement, selected bool, query string) string {
	width := int(p.Rect.Width())
	height := int(p.Rect.Height())
	if width < 2 || height < 2 {
		return ""
	}
	textWidth := max(width-4, 1)

	style := r.styles.Card
	if selected {
		style = r.styles.CardSelected
	}

	title := runewidth.Truncate(card.Title, textWidth, "…")
	lines := []string{
		r.highlightMatch(title, query, r.styles.Highlight, r.styles.CardTitle),
		r.statusLine(card, textWidth),
	}
	for _, line := range p.Body {
		lines = append(lines, r.styles.CardBody.Render(line))
	}

	return style.
		Width(width - 2).
		Height(height - 2).
		MaxHeight(height).
		Render(strings.Join(lines, "\n"))
}

func (r *CardRenderer) statusLine(card domain.Card, width int) string {
	text := StatusIcon(card.Status) + " " + string(card.Status)
	if !card.UpdatedAt.IsZero() {
		text += " · " + relativeTime(r.now().Sub(card.UpdatedAt))
	}
	text = runewidth.Truncate(text, width, "…")
	return lipgloss.NewStyle().Foreground(lipgloss.Color(StatusColor(card.Status))).Render(text)
}

func relativeTime(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d/time.Minute))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d/time.Hour))
	default:
		return fmt.Sprintf("%dd ago", int(d/(24*time.Hour)))
	}
}

// highlightMatch highlights the first case-insensitive match of query in text
func (r *CardRenderer) highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	if query == "" || strings.HasPrefix(strings.ToLower(query), "status:") {
		return normalStyle.Render(text)
	}
	index := strings.Index(strings.ToLower(text), strings.ToLower(query))
	if index == -1 || index+len(query) > len(text) {
		return normalStyle.Render(text)
	}

	before := text[:index]
	match := text[index : index+len(query)]
	after := text[index+len(query):]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}
	return strings.Join(result, "")
}
