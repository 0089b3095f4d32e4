package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"canvasnav/internal/domain"
	"canvasnav/internal/ui/layout"
)

// BoardRenderer composes rendered cards into the visible slice of the board
type BoardRenderer struct {
	cards *CardRenderer
}

// NewBoardRenderer creates a new board renderer
func NewBoardRenderer(cards *CardRenderer) *BoardRenderer {
	return &BoardRenderer{cards: cards}
}

// RenderBoard draws rows [offset, offset+height) of the laid out board.
// Cards keep a fixed column, so each column is drawn as its own strip and
// the strips are joined row by row.
func (b *BoardRenderer) RenderBoard(cards []domain.Card, engine *layout.Engine, selected int, query string, offset, height int) string {
	if engine == nil || engine.Len() == 0 || height <= 0 {
		return ""
	}
	cols := engine.Columns()
	cardWidth := engine.CardWidth()
	blank := strings.Repeat(" ", cardWidth)

	strips := make([][]string, cols)
	for c := range strips {
		strips[c] = make([]string, height)
		for row := range strips[c] {
			strips[c][row] = blank
		}
	}

	for i := 0; i < engine.Len() && i < len(cards); i++ {
		p, _ := engine.Placement(i)
		top := int(p.Rect.Top)
		bottom := int(p.Rect.Bottom)
		if bottom <= offset || top >= offset+height {
			continue
		}
		lines := strings.Split(b.cards.RenderCard(cards[i], p, i == selected, query), "\n")
		for j, line := range lines {
			row := top + j - offset
			if row < 0 || row >= height {
				continue
			}
			strips[p.Column][row] = padRight(line, cardWidth)
		}
	}

	gap := strings.Repeat(" ", engine.Gap())
	rows := make([]string, height)
	parts := make([]string, cols)
	for row := 0; row < height; row++ {
		for c := 0; c < cols; c++ {
			parts[c] = strips[c][row]
		}
		rows[row] = strings.TrimRight(strings.Join(parts, gap), " ")
	}
	return strings.Join(rows, "\n")
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
