package views

import (
	"github.com/charmbracelet/bubbles/key"

	"canvasnav/internal/platform"
)

// KeyMap lists the bindings shown in the footer and the help overlay
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Open   key.Binding
	First  key.Binding
	Last   key.Binding
	Filter key.Binding
	Layout key.Binding
	Copy   key.Binding
	Clear  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// NewKeyMap builds the bindings. Vim letters are listed only when enabled.
func NewKeyMap(vim bool) KeyMap {
	arrow := func(arrowKey, vimKey, glyph, desc string) key.Binding {
		if vim {
			return key.NewBinding(key.WithKeys(arrowKey, vimKey), key.WithHelp(glyph+"/"+vimKey, desc))
		}
		return key.NewBinding(key.WithKeys(arrowKey), key.WithHelp(glyph, desc))
	}
	return KeyMap{
		Up:     arrow("up", "k", "↑", "card above"),
		Down:   arrow("down", "j", "↓", "card below"),
		Left:   arrow("left", "h", "←", "previous card"),
		Right:  arrow("right", "l", "→", "next card"),
		Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open card")),
		First:  key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g/G", "first/last")),
		Last:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last card")),
		Filter: key.NewBinding(key.WithKeys("/", "f"), key.WithHelp("/", "filter")),
		Layout: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "grid/masonry")),
		Copy:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy title")),
		Clear:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Left, k.Open, k.Filter, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.First, k.Last},
		{k.Open, k.Filter, k.Layout, k.Copy, k.Clear, k.Help, k.Quit},
	}
}

// ModifiedOpenHint explains that the primary modifier with enter is left to the terminal
func ModifiedOpenHint() string {
	return platform.ModifierSymbol() + "+enter is not intercepted"
}
