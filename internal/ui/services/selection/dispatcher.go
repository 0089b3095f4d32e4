package selection

import (
	"log"

	"canvasnav/internal/platform"
	"canvasnav/internal/ui/input"
	"canvasnav/internal/ui/input/types"
	"canvasnav/internal/ui/services/navigation"
)

// Dispatcher turns key events into selection changes and activations.
//
// While enabled it holds exactly one listener on the shared key channel.
// Events are handled synchronously, one at a time, in arrival order.
type Dispatcher struct {
	nav  *navigation.Service
	opts Options
	cb   Callbacks

	enabled bool
	channel *input.Channel
	release func()
}

// NewDispatcher creates a disabled dispatcher
func NewDispatcher(nav *navigation.Service, opts Options, cb Callbacks) *Dispatcher {
	if nav == nil {
		nav = navigation.NewService()
	}
	return &Dispatcher{nav: nav, opts: opts, cb: cb}
}

// Attach binds the dispatcher to a key channel. If already enabled the
// listener moves to the new channel.
func (d *Dispatcher) Attach(ch *input.Channel) {
	d.unregister()
	d.channel = ch
	if d.enabled {
		d.register()
	}
}

// SetEnabled registers the key listener when enabled and releases it when disabled
func (d *Dispatcher) SetEnabled(enabled bool) {
	if d.enabled == enabled {
		return
	}
	d.enabled = enabled
	if enabled {
		d.register()
	} else {
		d.unregister()
	}
	log.Printf("Dispatcher: enabled=%v", enabled)
}

func (d *Dispatcher) Enabled() bool {
	return d.enabled
}

// Close releases the key listener for good
func (d *Dispatcher) Close() {
	d.enabled = false
	d.unregister()
}

func (d *Dispatcher) register() {
	if d.channel == nil || d.release != nil {
		return
	}
	d.release = d.channel.Register(d.HandleKey)
}

func (d *Dispatcher) unregister() {
	if d.release != nil {
		d.release()
		d.release = nil
	}
}

// State reports the selection phase as seen by the dispatcher. An index
// outside the current item set counts as unselected.
func (d *Dispatcher) State() State {
	index, ok := d.selected()
	if !ok {
		return State{Phase: PhaseUnselected}
	}
	return State{Phase: PhaseSelected, Index: index}
}

// HandleKey is the key channel listener. It returns true when the event was consumed.
func (d *Dispatcher) HandleKey(ev types.KeyEvent) bool {
	intent := types.IntentFor(ev, d.opts.VimKeys)
	if intent == types.IntentNone {
		return false
	}
	return d.HandleIntent(intent, ev.Mods)
}

// HandleIntent applies one directional or activate intent
func (d *Dispatcher) HandleIntent(intent types.Intent, mods platform.Modifiers) bool {
	if d.suppressed() {
		return false
	}

	count := d.itemCount()
	if count <= 0 {
		return false
	}

	current, ok := d.selected()
	if !ok {
		if !intent.IsDirectional() {
			return false
		}
		d.commit(0)
		return true
	}

	if intent == types.IntentActivate {
		// Ctrl/Meta+Enter belongs to another command
		if mods.Any(platform.ModCtrl | platform.ModMeta) {
			return false
		}
		log.Printf("Dispatcher: activate %d", current)
		if d.cb.OnActivate != nil {
			d.cb.OnActivate(current)
		}
		return true
	}

	target, ok := d.nav.Resolve(current, count, directionFor(intent), d.opts.Bounds)
	if ok && target != current && target >= 0 && target < count {
		d.commit(target)
	}
	// Consumed even without a move so the host does not scroll on its own
	return true
}

// Select commits index as the new selection through the same path as key
// navigation. Out-of-range indexes are ignored.
func (d *Dispatcher) Select(index int) bool {
	if index < 0 || index >= d.itemCount() {
		return false
	}
	if current, ok := d.selected(); ok && current == index {
		return false
	}
	d.commit(index)
	return true
}

func (d *Dispatcher) commit(index int) {
	if d.cb.OnSelectedIndexChange != nil {
		d.cb.OnSelectedIndexChange(index)
	}
	if d.cb.OnSelectionChange != nil {
		d.cb.OnSelectionChange(index)
	}
	if d.opts.Scroller != nil {
		d.opts.Scroller.ScrollIntoView(index)
	}
}

func (d *Dispatcher) suppressed() bool {
	if !d.enabled {
		return true
	}
	if d.opts.OverlayOpen != nil && d.opts.OverlayOpen() {
		return true
	}
	if d.opts.TextFocused != nil && d.opts.TextFocused() {
		return true
	}
	return false
}

func (d *Dispatcher) itemCount() int {
	if d.opts.ItemCount == nil {
		return 0
	}
	return d.opts.ItemCount()
}

func (d *Dispatcher) selected() (int, bool) {
	if d.opts.SelectedIndex == nil {
		return 0, false
	}
	index, ok := d.opts.SelectedIndex()
	if !ok || index < 0 || index >= d.itemCount() {
		return 0, false
	}
	return index, true
}

func directionFor(intent types.Intent) navigation.Direction {
	switch intent {
	case types.IntentLeft:
		return navigation.DirectionLeft
	case types.IntentRight:
		return navigation.DirectionRight
	case types.IntentUp:
		return navigation.DirectionUp
	default:
		return navigation.DirectionDown
	}
}
