package state

import (
	"canvasnav/internal/board"
	"canvasnav/internal/domain"
)

// AppState contains the host-owned navigation state
type AppState struct {
	// Board data
	Title    string
	AllCards []domain.Card // every card, in board order
	Cards    []domain.Card // cards passing the filter, in board order

	// Selection state; SelectedIndex indexes Cards
	SelectedIndex int
	HasSelection  bool

	// UI state
	FilterQuery   string
	StatusMessage string
	InPager       bool
}

// NewAppState creates an empty state with nothing selected
func NewAppState() *AppState {
	return &AppState{}
}

// SetBoard replaces the card set and re-applies the current filter
func (s *AppState) SetBoard(title string, cards []domain.Card) {
	s.Title = title
	s.AllCards = cards
	s.applyFilter()
}

// SetFilter changes the filter query and reports whether the visible set changed
func (s *AppState) SetFilter(query string) bool {
	if query == s.FilterQuery {
		return false
	}
	s.FilterQuery = query
	s.applyFilter()
	return true
}

func (s *AppState) applyFilter() {
	var selectedID string
	if card, ok := s.SelectedCard(); ok {
		selectedID = card.ID
	}

	s.Cards = board.Filter(s.AllCards, s.FilterQuery)

	// Keep the same card selected when it survives the filter, drop it otherwise
	if selectedID != "" {
		for i, c := range s.Cards {
			if c.ID == selectedID {
				s.SelectedIndex = i
				return
			}
		}
		s.ClearSelection()
		return
	}
	s.ClampSelection()
}

// ItemCount is the number of navigable cards
func (s *AppState) ItemCount() int {
	return len(s.Cards)
}

// Selected returns the selected index when it is valid for the current set
func (s *AppState) Selected() (int, bool) {
	if !s.HasSelection || s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Cards) {
		return 0, false
	}
	return s.SelectedIndex, true
}

// SelectedCard returns the card under the selection
func (s *AppState) SelectedCard() (domain.Card, bool) {
	i, ok := s.Selected()
	if !ok {
		return domain.Card{}, false
	}
	return s.Cards[i], true
}

// Select commits index as the selection
func (s *AppState) Select(index int) {
	s.SelectedIndex = index
	s.HasSelection = true
}

// ClearSelection returns to the unselected state
func (s *AppState) ClearSelection() {
	s.SelectedIndex = 0
	s.HasSelection = false
}

// ClampSelection clears a selection that no longer points at a card
func (s *AppState) ClampSelection() {
	if s.HasSelection && (s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Cards)) {
		s.ClearSelection()
	}
}
