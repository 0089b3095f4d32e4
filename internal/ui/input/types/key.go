package types

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"canvasnav/internal/platform"
)

// KeyEvent is a key press with its modifiers split out of the key name
type KeyEvent struct {
	Key  string
	Mods platform.Modifiers
	Msg  tea.KeyMsg
}

// NewKeyEvent builds a KeyEvent without a backing tea.KeyMsg
func NewKeyEvent(key string, mods platform.Modifiers) KeyEvent {
	return KeyEvent{Key: key, Mods: mods}
}

// FromKeyMsg splits a Bubble Tea key into a key name and modifier flags.
// On platforms where Option acts as Meta, alt also sets ModMeta.
func FromKeyMsg(msg tea.KeyMsg) KeyEvent {
	ev := KeyEvent{Msg: msg}
	name := msg.String()

	if msg.Alt {
		ev.Mods |= platform.ModAlt
		if platform.AltIsMeta() {
			ev.Mods |= platform.ModMeta
		}
		name = strings.TrimPrefix(name, "alt+")
	}

	for {
		switch {
		case strings.HasPrefix(name, "ctrl+") && len(name) > len("ctrl+"):
			ev.Mods |= platform.ModCtrl
			name = name[len("ctrl+"):]
			continue
		case strings.HasPrefix(name, "shift+") && len(name) > len("shift+"):
			ev.Mods |= platform.ModShift
			name = name[len("shift+"):]
			continue
		}
		break
	}

	ev.Key = name
	return ev
}

// Intent is a normalized navigation command
type Intent int

const (
	IntentNone Intent = iota
	IntentLeft
	IntentRight
	IntentUp
	IntentDown
	IntentActivate
)

func (i Intent) String() string {
	switch i {
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	case IntentUp:
		return "up"
	case IntentDown:
		return "down"
	case IntentActivate:
		return "activate"
	default:
		return "none"
	}
}

// IsDirectional is true for the four arrow intents
func (i Intent) IsDirectional() bool {
	return i >= IntentLeft && i <= IntentDown
}

// IntentFor maps a key to a navigation intent. Arrow keys map regardless of
// modifiers; h/j/k/l only when vim is set and no Ctrl, Alt or Meta is held.
func IntentFor(ev KeyEvent, vim bool) Intent {
	switch ev.Key {
	case "left":
		return IntentLeft
	case "right":
		return IntentRight
	case "up":
		return IntentUp
	case "down":
		return IntentDown
	case "enter":
		return IntentActivate
	}

	if !vim || ev.Mods.Any(platform.ModCtrl|platform.ModAlt|platform.ModMeta) {
		return IntentNone
	}
	switch ev.Key {
	case "h":
		return IntentLeft
	case "l":
		return IntentRight
	case "k":
		return IntentUp
	case "j":
		return IntentDown
	}
	return IntentNone
}
