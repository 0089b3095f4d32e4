package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"canvasnav/internal/domain"
	"canvasnav/internal/ui/services/navigation"
)

// Mode selects how cards are packed
type Mode int

const (
	ModeGrid Mode = iota
	ModeMasonry
)

// ParseMode maps a config value to a Mode, defaulting to grid
func ParseMode(s string) Mode {
	if strings.EqualFold(s, "masonry") {
		return ModeMasonry
	}
	return ModeGrid
}

func (m Mode) String() string {
	if m == ModeMasonry {
		return "masonry"
	}
	return "grid"
}

// Toggle returns the other mode
func (m Mode) Toggle() Mode {
	if m == ModeMasonry {
		return ModeGrid
	}
	return ModeMasonry
}

// Card chrome: top and bottom border, title row, status row
const (
	chromeRows = 4
	// border plus one column of padding on each side
	chromeCols = 4
)

// Options control card sizing
type Options struct {
	Mode         Mode
	MinCardWidth int
	Gap          int
	MaxBodyLines int
}

// Placement is one laid-out card
type Placement struct {
	Rect   navigation.Rect
	Column int
	Body   []string
}

// Engine places cards in content space. Rects use exclusive right and
// bottom edges, in terminal cells.
type Engine struct {
	opts       Options
	width      int
	columns    int
	cardWidth  int
	placements []Placement
	height     int
}

// New creates an engine with nothing laid out
func New(opts Options) *Engine {
	if opts.MinCardWidth < chromeCols+1 {
		opts.MinCardWidth = chromeCols + 1
	}
	if opts.Gap < 0 {
		opts.Gap = 0
	}
	return &Engine{opts: opts}
}

func (e *Engine) Mode() Mode { return e.opts.Mode }
func (e *Engine) SetMode(m Mode) { e.opts.Mode = m }
func (e *Engine) Columns() int { return e.columns }
func (e *Engine) Gap() int { return e.opts.Gap }
func (e *Engine) CardWidth() int { return e.cardWidth }
func (e *Engine) ContentHeight() int { return e.height }
func (e *Engine) Len() int { return len(e.placements) }

// Placement returns the layout of card i
func (e *Engine) Placement(i int) (Placement, bool) {
	if i < 0 || i >= len(e.placements) {
		return Placement{}, false
	}
	return e.placements[i], true
}

// Bounds implements navigation.BoundsProvider in content coordinates
func (e *Engine) Bounds(i int) (navigation.Rect, bool) {
	p, ok := e.Placement(i)
	if !ok {
		return navigation.Rect{}, false
	}
	return p.Rect, true
}

// Columns computes how many cards fit side by side in width
func Columns(width, minCardWidth, gap int) int {
	if width <= 0 {
		return 0
	}
	n := (width + gap) / (minCardWidth + gap)
	if n < 1 {
		n = 1
	}
	return n
}

// Compute lays out cards for a viewport of the given width. A zero width clears the layout.
func (e *Engine) Compute(width int, cards []domain.Card) {
	e.width = width
	e.placements = e.placements[:0]
	e.height = 0
	e.columns = Columns(width, e.opts.MinCardWidth, e.opts.Gap)
	if e.columns == 0 {
		e.cardWidth = 0
		return
	}

	gap := e.opts.Gap
	e.cardWidth = (width - gap*(e.columns-1)) / e.columns
	if e.cardWidth < 1 {
		e.cardWidth = 1
	}
	textWidth := e.cardWidth - chromeCols
	if textWidth < 1 {
		textWidth = 1
	}

	if e.opts.Mode == ModeMasonry {
		e.masonry(cards, textWidth)
	} else {
		e.grid(cards, textWidth)
	}
}

func (e *Engine) grid(cards []domain.Card, textWidth int) {
	gap := e.opts.Gap
	rowTop, rowBottom := 0, 0
	for i, card := range cards {
		col := i % e.columns
		if col == 0 && i > 0 {
			rowTop = rowBottom + gap
		}
		body := Wrap(card.Body, textWidth, e.opts.MaxBodyLines)
		h := chromeRows + len(body)
		e.place(col, rowTop, h, body)
		rowBottom = max(rowBottom, rowTop+h)
	}
	e.height = rowBottom
}

func (e *Engine) masonry(cards []domain.Card, textWidth int) {
	gap := e.opts.Gap
	next := make([]int, e.columns)
	for _, card := range cards {
		col := 0
		for c := 1; c < e.columns; c++ {
			if next[c] < next[col] {
				col = c
			}
		}
		body := Wrap(card.Body, textWidth, e.opts.MaxBodyLines)
		h := chromeRows + len(body)
		e.place(col, next[col], h, body)
		next[col] += h + gap
		e.height = max(e.height, next[col]-gap)
	}
}

func (e *Engine) place(col, top, height int, body []string) {
	left := col * (e.cardWidth + e.opts.Gap)
	e.placements = append(e.placements, Placement{
		Rect:   navigation.NewRect(float64(left), float64(top), float64(e.cardWidth), float64(height)),
		Column: col,
		Body:   body,
	})
}

// Wrap breaks text into lines no wider than width display cells, keeping at
// most maxLines. Words longer than the line are split. A truncated final line
// ends with an ellipsis.
func Wrap(text string, width, maxLines int) []string {
	if width < 1 || maxLines <= 0 {
		return nil
	}
	text = strings.TrimRight(text, "\n")
	if strings.TrimSpace(text) == "" {
		return nil
	}
	wrapped := wrap.String(wordwrap.String(text, width), width)
	lines := strings.Split(wrapped, "\n")
	if len(lines) > maxLines {
		lines = lines[:maxLines]
		last := lines[maxLines-1]
		lines[maxLines-1] = runewidth.Truncate(last+" …", width, "…")
	}
	return lines
}
