package modes

import (
	"canvasnav/internal/ui/input/types"
	tea "github.com/charmbracelet/bubbletea"
)

// NormalMode handles board-level commands. Arrow keys and Enter are not
// handled here: the selection dispatcher sees them first.
type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyEsc:
		// Esc first drops the selection, then the filter
		if ctx.HasSelection() {
			return []types.Action{types.ClearSelectionAction{}}, true
		}
		if ctx.FilterQuery() != "" {
			return []types.Action{types.ClearFilterAction{}}, true
		}
		return nil, true

	case tea.KeyHome:
		return []types.Action{types.JumpAction{Position: types.JumpFirst}}, true

	case tea.KeyEnd:
		return []types.Action{types.JumpAction{Position: types.JumpLast}}, true
	}

	switch msg.String() {
	case "g":
		return []types.Action{types.JumpAction{Position: types.JumpFirst}}, true

	case "G":
		return []types.Action{types.JumpAction{Position: types.JumpLast}}, true

	case "/", "f":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFilter, Data: ctx.FilterQuery()}}, true

	case "v":
		return []types.Action{types.ToggleLayoutAction{}}, true

	case "y":
		if !ctx.HasSelection() {
			return nil, true
		}
		return []types.Action{types.CopyAction{}}, true

	case "?":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeHelp}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}
