package modes

import (
	"canvasnav/internal/ui/input/types"
	tea "github.com/charmbracelet/bubbletea"
)

// HelpMode is active while the help overlay covers the board
type HelpMode struct{}

func NewHelpMode() *HelpMode {
	return &HelpMode{}
}

func (m *HelpMode) Name() string {
	return "help"
}

func (m *HelpMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *HelpMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *HelpMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "?", "q":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}
	// Everything else is swallowed while the overlay is open
	return nil, true
}
