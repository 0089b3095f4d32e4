package types

// Jump targets
const (
	JumpFirst = "first"
	JumpLast  = "last"
)

// JumpAction selects the first or last card
type JumpAction struct {
	Position string // JumpFirst or JumpLast
}

func (a JumpAction) Type() string { return "jump" }

// ClearSelectionAction returns the board to the unselected state
type ClearSelectionAction struct{}

func (a ClearSelectionAction) Type() string { return "clear_selection" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // Optional initial text for text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

type ClearFilterAction struct{}

func (a ClearFilterAction) Type() string { return "clear_filter" }

type ToggleLayoutAction struct{}

func (a ToggleLayoutAction) Type() string { return "toggle_layout" }

// CopyAction copies the selected card's title
type CopyAction struct{}

func (a CopyAction) Type() string { return "copy" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
