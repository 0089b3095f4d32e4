package input

import (
	"canvasnav/internal/ui/input/modes"
	"canvasnav/internal/ui/input/types"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // Shared text input for text modes
}

func New() *Handler {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 120

	h := &Handler{
		currentMode: types.ModeNormal,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeFilter] = modes.NewFilterMode(h.textInput)
	h.modes[types.ModeHelp] = modes.NewHelpMode()

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	// If not consumed and we're not in a text mode, nothing else wants the key
	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmds []tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			exitActions, enterActions, cmd := h.switchMode(changeMode.Mode, changeMode.Data, ctx)
			allActions = append(allActions, exitActions...)
			allActions = append(allActions, enterActions...)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		} else {
			allActions = append(allActions, action)
		}
	}

	// In a text mode an unhandled key goes to the text input
	if h.isTextMode(h.currentMode) && !consumed {
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		if textCmd != nil {
			cmds = append(cmds, textCmd)
		}
		allActions = append(allActions, types.UpdateTextAction{Text: h.textInput.Value()})
	}

	return allActions, tea.Batch(cmds...)
}

func (h *Handler) switchMode(mode types.Mode, data string, ctx types.Context) ([]types.Action, []types.Action, tea.Cmd) {
	var exitActions, enterActions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		exitActions = current.Exit(ctx)
	}

	oldMode := h.currentMode
	h.currentMode = mode

	if next := h.modes[h.currentMode]; next != nil {
		enterActions = next.Enter(ctx)
	}

	var cmd tea.Cmd
	if h.isTextMode(h.currentMode) {
		h.textInput.Reset()
		h.textInput.SetValue(data)
		h.textInput.CursorEnd()
		cmd = tea.Batch(h.textInput.Focus(), textinput.Blink)
	} else if h.isTextMode(oldMode) {
		h.textInput.Blur()
	}
	return exitActions, enterActions, cmd
}

func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeNormal
	}
	return h.currentMode
}

// TextInput returns the text input while a text mode is active
func (h *Handler) TextInput() *textinput.Model {
	if h.isTextMode(h.currentMode) {
		return h.textInput
	}
	return nil
}

// Prompt returns the label for the active text mode
func (h *Handler) Prompt() string {
	if tm, ok := h.modes[h.currentMode].(interface{ Prompt() string }); ok {
		return tm.Prompt()
	}
	return ""
}

// TextFocused reports whether a free-text field currently has focus
func (h *Handler) TextFocused() bool {
	return h.isTextMode(h.currentMode) && h.textInput.Focused()
}

// OverlayOpen reports whether an overlay covers the board
func (h *Handler) OverlayOpen() bool {
	return h.currentMode == types.ModeHelp
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeFilter
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}
