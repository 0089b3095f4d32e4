package modes

import (
	"canvasnav/internal/ui/input/types"
	"github.com/charmbracelet/bubbles/textinput"
)

// FilterMode narrows the board to cards matching the typed text
type FilterMode struct {
	TextInputMode
}

func NewFilterMode(ti *textinput.Model) *FilterMode {
	return &FilterMode{
		TextInputMode: NewTextInputMode(types.ModeFilter, "filter", "Filter: ", ti),
	}
}
