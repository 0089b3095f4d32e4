package selection

import "canvasnav/internal/ui/services/navigation"

// Scroller is told to bring an item into view after each committed selection change
type Scroller interface {
	ScrollIntoView(index int)
}

// Callbacks are the host's notifications. OnSelectionChange is optional and
// fires with the same index right after OnSelectedIndexChange.
type Callbacks struct {
	OnSelectedIndexChange func(index int)
	OnSelectionChange     func(index int)
	OnActivate            func(index int)
}

// Options wires the dispatcher to host-owned state. The host owns the
// selected index; the dispatcher only reads it and reports new values.
type Options struct {
	// SelectedIndex returns the current selection; ok is false when nothing is selected
	SelectedIndex func() (index int, ok bool)
	// ItemCount returns the number of navigable items right now
	ItemCount func() int
	// Bounds looks up item geometry in viewport coordinates
	Bounds navigation.BoundsProvider
	// OverlayOpen reports whether a modal or overlay covers the items
	OverlayOpen func() bool
	// TextFocused reports whether a free-text field has input focus
	TextFocused func() bool
	// Scroller is optional
	Scroller Scroller
	// VimKeys enables h/j/k/l
	VimKeys bool
}

// Phase names the dispatcher's two states
type Phase int

const (
	PhaseUnselected Phase = iota
	PhaseSelected
)

func (p Phase) String() string {
	if p == PhaseSelected {
		return "selected"
	}
	return "unselected"
}

// State is a snapshot of the selection state machine
type State struct {
	Phase Phase
	Index int
}
