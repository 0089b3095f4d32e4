package handlers

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"canvasnav/internal/board"
	"canvasnav/internal/eventbus"
	"canvasnav/internal/ui/state"
)

// StatusTimeout is how long a status message stays in the footer
const StatusTimeout = 3 * time.Second

// WelcomeMessage is shown once when no config file exists yet
const WelcomeMessage = "Welcome! Arrow keys move between cards, ? lists every key"

// ClearStatusMsg clears the footer status message
type ClearStatusMsg struct{}

// EventHandler handles domain events and updates state
type EventHandler struct {
	state          *state.AppState
	store          board.CardStore
	onCardsChanged func()
}

// NewEventHandler creates a new event handler. onCardsChanged runs after the
// visible card set was replaced so the host can re-layout.
func NewEventHandler(appState *state.AppState, store board.CardStore, onCardsChanged func()) *EventHandler {
	return &EventHandler{
		state:          appState,
		store:          store,
		onCardsChanged: onCardsChanged,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.BoardLoadedEvent:
		if h.store == nil {
			return nil
		}
		h.state.SetBoard(h.store.Title(), h.store.Cards())
		if h.onCardsChanged != nil {
			h.onCardsChanged()
		}
		return h.status(fmt.Sprintf("Loaded %d cards", e.Cards))

	case eventbus.ErrorEvent:
		return h.status(fmt.Sprintf("Error: %s", e.Message))

	case eventbus.ConfigSavedEvent:
		return h.status(fmt.Sprintf("Config saved to %s", e.Path))

	case eventbus.AppReadyEvent:
		// First run only
		if !e.HasExistingConfig {
			return h.status(WelcomeMessage)
		}
	}

	return nil
}

func (h *EventHandler) status(msg string) tea.Cmd {
	h.state.StatusMessage = msg
	return tea.Tick(StatusTimeout, func(time.Time) tea.Msg { return ClearStatusMsg{} })
}
