package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"canvasnav/internal/board"
	"canvasnav/internal/config"
	"canvasnav/internal/eventbus"
	"canvasnav/internal/ui/coordinator"
	"canvasnav/internal/ui/handlers"
	"canvasnav/internal/ui/input"
	inputtypes "canvasnav/internal/ui/input/types"
	"canvasnav/internal/ui/layout"
	"canvasnav/internal/ui/services/scroll"
	"canvasnav/internal/ui/state"
	"canvasnav/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus       eventbus.EventBus
	config    *config.Config
	configSvc config.ConfigService
	store     board.CardStore
	state     *state.AppState

	// UI-specific state not in AppState
	width       int
	height      int
	help        help.Model
	keys        views.KeyMap
	ticking     bool // a frame tick is in flight
	configDirty bool
	editingFrom string // filter query before the filter field opened

	// Handlers
	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	inputHandler *input.Handler
	services     *coordinator.Coordinator
	pager        *PagerOps
	copyText     func(string) error

	// Commands queued by callbacks during key dispatch
	pending []tea.Cmd
}

// NewModel creates a new UI model
func NewModel(cfg *config.Config, configSvc config.ConfigService, store board.CardStore, bus eventbus.EventBus) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if store == nil {
		store = board.NewMemoryCardStore()
	}

	m := &Model{
		bus:          bus,
		config:       cfg,
		configSvc:    configSvc,
		store:        store,
		state:        state.NewAppState(),
		help:         help.New(),
		keys:         views.NewKeyMap(cfg.UISettings.VimKeys),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		pager:        NewPagerOps(),
		copyText:     clipboard.WriteAll,
	}

	keys := input.NewChannel()
	// Registered first so it only sees keys the dispatcher passes on
	keys.Register(m.handleModeKey)

	m.services = coordinator.NewCoordinator(bus, m, keys, coordinator.Options{
		Layout: layout.Options{
			Mode:         layout.ParseMode(cfg.UISettings.Layout),
			MinCardWidth: cfg.UISettings.MinCardWidth,
			Gap:          cfg.UISettings.CardGap,
			MaxBodyLines: cfg.UISettings.MaxBodyLines,
		},
		SmoothScroll: cfg.UISettings.SmoothScroll,
		VimKeys:      cfg.UISettings.VimKeys,
	})

	m.eventHandler = handlers.NewEventHandler(m.state, store, m.relayout)
	m.state.SetBoard(store.Title(), store.Cards())

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.relayout()
		return m, m.flush()

	case tea.KeyMsg:
		if m.state.InPager {
			return m, nil
		}
		m.services.Keys.Dispatch(inputtypes.FromKeyMsg(msg))
		m.relayout()
		return m, m.flush()

	case frameMsg:
		if m.services.Scroll.Step() {
			return m, frame()
		}
		m.ticking = false
		return m, nil

	default:
		// Cursor blink and similar messages also go to the text input
		inputCmd := m.inputHandler.Update(msg)
		_, cmd := m.handleNonKeyboardMsg(msg)
		return m, tea.Batch(inputCmd, cmd)
	}
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		cmd := m.eventHandler.HandleEvent(msg.Event)
		return m, tea.Batch(cmd, m.flush())

	case handlers.ClearStatusMsg:
		m.state.StatusMessage = ""
		return m, nil

	case pauseRenderingMsg:
		m.state.InPager = true
		return m, nil

	case resumeRenderingMsg:
		m.state.InPager = false
		return m, nil

	case cardPagerMsg:
		m.state.InPager = false
		m.services.Dispatcher.SetEnabled(true)
		if msg.err != nil {
			log.Printf("Card pager failed for %s: %v", msg.cardID, msg.err)
			m.state.StatusMessage = fmt.Sprintf("Could not open card: %v", msg.err)
			return m, tea.Tick(handlers.StatusTimeout, func(time.Time) tea.Msg { return handlers.ClearStatusMsg{} })
		}
		return m, nil
	}
	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.state.InPager {
		return ""
	}

	selected := -1
	if i, ok := m.state.Selected(); ok {
		selected = i
	}

	vs := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Title:          m.state.Title,
		Cards:          m.state.Cards,
		TotalCards:     len(m.state.AllCards),
		Layout:         m.services.Layout,
		SelectedIndex:  selected,
		ViewportOffset: m.services.Scroll.Offset(),
		FilterQuery:    m.state.FilterQuery,
		ShowHelp:       m.inputHandler.CurrentMode() == inputtypes.ModeHelp,
		StatusMessage:  m.state.StatusMessage,
		Help:           m.help,
		Keys:           m.keys,
	}
	if ti := m.inputHandler.TextInput(); ti != nil {
		vs.InputPrompt = m.inputHandler.Prompt()
		vs.InputView = ti.View()
	}
	return m.renderer.Render(vs)
}

// Host implementation for the coordinator

func (m *Model) ItemCount() int {
	return m.state.ItemCount()
}

func (m *Model) Selected() (int, bool) {
	return m.state.Selected()
}

func (m *Model) Select(index int) {
	m.state.Select(index)
}

func (m *Model) CardID(index int) string {
	if index < 0 || index >= len(m.state.Cards) {
		return ""
	}
	return m.state.Cards[index].ID
}

func (m *Model) OverlayOpen() bool {
	return m.inputHandler.OverlayOpen()
}

func (m *Model) TextFocused() bool {
	return m.inputHandler.TextFocused()
}

// Activate opens the card in the pager. Navigation stays off until the pager exits.
func (m *Model) Activate(index int) {
	if index < 0 || index >= len(m.state.Cards) {
		return
	}
	card := m.state.Cards[index]
	if !m.pager.Available() {
		log.Printf("Activate: no program attached, not opening %s", card.ID)
		return
	}
	m.services.Dispatcher.SetEnabled(false)
	m.pending = append(m.pending, m.openPager(card.ID, RenderCardDetail(card)))
}

// openPager returns a command that shows content using ov pager
func (m *Model) openPager(cardID, content string) tea.Cmd {
	program := m.pager.program
	return func() tea.Msg {
		// Send pause message to stop rendering
		program.Send(pauseRenderingMsg{})

		err := m.pager.ShowInPager(content)

		// Send resume message to restart rendering
		program.Send(resumeRenderingMsg{})

		return cardPagerMsg{cardID: cardID, err: err}
	}
}

// handleModeKey is the fallback key listener for everything the dispatcher does not consume
func (m *Model) handleModeKey(ev inputtypes.KeyEvent) bool {
	_, sel := m.state.Selected()
	ctx := &input.ModelContext{
		Total:    m.state.ItemCount(),
		Selected: sel,
		Query:    m.state.FilterQuery,
	}

	before := m.inputHandler.CurrentMode()
	actions, cmd := m.inputHandler.HandleKey(ev.Msg, ctx)
	if before != inputtypes.ModeFilter && m.inputHandler.CurrentMode() == inputtypes.ModeFilter {
		m.editingFrom = m.state.FilterQuery
	}
	if cmd != nil {
		m.pending = append(m.pending, cmd)
	}
	for _, action := range actions {
		if actionCmd := m.processAction(action); actionCmd != nil {
			m.pending = append(m.pending, actionCmd)
		}
	}
	return true
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.JumpAction:
		count := m.state.ItemCount()
		if count == 0 {
			return nil
		}
		target := 0
		if a.Position == inputtypes.JumpLast {
			target = count - 1
		}
		m.services.Dispatcher.Select(target)
		// Jumps skip the animation
		m.services.Scroll.JumpTo(m.services.Scroll.Target())

	case inputtypes.ClearSelectionAction:
		m.state.ClearSelection()

	case inputtypes.UpdateTextAction:
		// Filter as you type
		m.applyFilter(a.Text, false)

	case inputtypes.SubmitTextAction:
		m.applyFilter(a.Text, true)

	case inputtypes.CancelTextAction:
		m.applyFilter(m.editingFrom, false)

	case inputtypes.ClearFilterAction:
		m.applyFilter("", true)

	case inputtypes.ToggleLayoutAction:
		mode := m.services.ToggleLayout()
		m.config.UISettings.Layout = mode.String()
		m.configDirty = true
		m.relayout()

	case inputtypes.CopyAction:
		return m.copySelected()

	case inputtypes.QuitAction:
		return m.quit()
	}
	return nil
}

// applyFilter updates the visible cards. publish is set once the query is final.
func (m *Model) applyFilter(query string, publish bool) {
	if m.state.SetFilter(query) {
		m.relayout()
	}
	if publish && m.bus != nil {
		m.bus.Publish(eventbus.FilterChangedEvent{Query: query, Visible: m.state.ItemCount()})
	}
}

// copySelected puts the selected card's title on the system clipboard
func (m *Model) copySelected() tea.Cmd {
	card, ok := m.state.SelectedCard()
	if !ok {
		return nil
	}
	if err := m.copyText(card.Title); err != nil {
		log.Printf("Clipboard write failed: %v", err)
		m.state.StatusMessage = fmt.Sprintf("Could not copy: %v", err)
	} else {
		m.state.StatusMessage = fmt.Sprintf("Copied %q", card.Title)
	}
	return tea.Tick(handlers.StatusTimeout, func(time.Time) tea.Msg { return handlers.ClearStatusMsg{} })
}

func (m *Model) quit() tea.Cmd {
	m.services.Close()
	if m.configDirty && m.configSvc != nil {
		if err := m.configSvc.Save(m.config); err != nil {
			log.Printf("Failed to save config: %v", err)
		}
	}
	return tea.Quit
}

// relayout recomputes card geometry for the current size and visible cards
func (m *Model) relayout() {
	if m.width == 0 {
		return
	}
	inputActive := m.inputHandler.TextInput() != nil
	m.services.Relayout(views.BoardWidth(m.width), views.BoardHeight(m.height, inputActive), m.state.Cards)
	m.ensureFrames()
}

// ensureFrames starts the frame ticker when the scroll animation needs it
func (m *Model) ensureFrames() {
	if m.ticking || !m.services.Scroll.Animating() {
		return
	}
	m.ticking = true
	m.pending = append(m.pending, frame())
}

func (m *Model) flush() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	cmds := m.pending
	m.pending = nil
	return tea.Batch(cmds...)
}

// frame returns a command that sends a frame message after one animation interval
func frame() tea.Cmd {
	return tea.Tick(scroll.FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
