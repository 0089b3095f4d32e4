package coordinator

import (
	"canvasnav/internal/domain"
	"canvasnav/internal/eventbus"
	"canvasnav/internal/ui/input"
	"canvasnav/internal/ui/layout"
	"canvasnav/internal/ui/services/navigation"
	"canvasnav/internal/ui/services/scroll"
	"canvasnav/internal/ui/services/selection"
)

// Host is the owner of the navigation state
type Host interface {
	ItemCount() int
	Selected() (int, bool)
	Select(index int)
	CardID(index int) string
	OverlayOpen() bool
	TextFocused() bool
	Activate(index int)
}

// Options configures the services
type Options struct {
	Layout       layout.Options
	SmoothScroll bool
	VimKeys      bool
}

// Coordinator manages the UI services and their interactions
type Coordinator struct {
	// Services
	Navigation *navigation.Service
	Layout     *layout.Engine
	Scroll     *scroll.Coordinator
	Dispatcher *selection.Dispatcher
	Keys       *input.Channel

	// Dependencies
	bus  eventbus.EventBus
	host Host
}

// NewCoordinator creates a coordinator with all services wired to host.
// The dispatcher starts enabled.
func NewCoordinator(bus eventbus.EventBus, host Host, keys *input.Channel, opts Options) *Coordinator {
	if keys == nil {
		keys = input.NewChannel()
	}
	c := &Coordinator{
		Navigation: navigation.NewService(),
		Layout:     layout.New(opts.Layout),
		Keys:       keys,
		bus:        bus,
		host:       host,
	}
	c.Scroll = scroll.NewCoordinator(c.Layout, opts.SmoothScroll)

	c.Dispatcher = selection.NewDispatcher(c.Navigation, selection.Options{
		SelectedIndex: host.Selected,
		ItemCount:     host.ItemCount,
		Bounds:        c.ViewportBounds(),
		OverlayOpen:   host.OverlayOpen,
		TextFocused:   host.TextFocused,
		Scroller:      c.Scroll,
		VimKeys:       opts.VimKeys,
	}, selection.Callbacks{
		OnSelectedIndexChange: host.Select,
		OnSelectionChange:     c.publishSelection,
		OnActivate:            c.activate,
	})
	c.Dispatcher.Attach(keys)
	c.Dispatcher.SetEnabled(true)

	return c
}

// ViewportBounds returns card bounds relative to the rendered scroll offset
func (c *Coordinator) ViewportBounds() navigation.BoundsProvider {
	return layout.Viewport{
		Content: c.Layout,
		Offset:  func() float64 { return float64(c.Scroll.Offset()) },
	}
}

// Relayout recomputes card geometry for a new size or card set and keeps
// the selection visible.
func (c *Coordinator) Relayout(width, viewportHeight int, cards []domain.Card) {
	c.Layout.Compute(width, cards)
	c.Scroll.SetViewport(viewportHeight, c.Layout.ContentHeight())
	if i, ok := c.host.Selected(); ok {
		c.Scroll.ScrollIntoView(i)
	}
}

// ToggleLayout switches between grid and masonry
func (c *Coordinator) ToggleLayout() layout.Mode {
	c.Layout.SetMode(c.Layout.Mode().Toggle())
	return c.Layout.Mode()
}

// Close releases the key listener
func (c *Coordinator) Close() {
	c.Dispatcher.Close()
}

func (c *Coordinator) publishSelection(index int) {
	if c.bus == nil {
		return
	}
	c.bus.Publish(eventbus.SelectionChangedEvent{Index: index, CardID: c.host.CardID(index)})
}

func (c *Coordinator) activate(index int) {
	if c.bus != nil {
		c.bus.Publish(eventbus.CardActivatedEvent{Index: index, CardID: c.host.CardID(index)})
	}
	c.host.Activate(index)
}
