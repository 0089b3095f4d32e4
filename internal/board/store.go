package board

import (
	"log"
	"strings"
	"sync"

	"canvasnav/internal/domain"
)

// CardStore provides ordered access to the board's cards
type CardStore interface {
	Title() string
	Cards() []domain.Card
	Replace(board domain.Board)
	Len() int
}

// MemoryCardStore is an in-memory implementation of CardStore.
// Insertion order is the logical left/right order of the board.
type MemoryCardStore struct {
	mu    sync.RWMutex
	title string
	order []string
	cards map[string]domain.Card
}

// NewMemoryCardStore creates a new memory-based card store
func NewMemoryCardStore() *MemoryCardStore {
	return &MemoryCardStore{
		cards: make(map[string]domain.Card),
	}
}

func (s *MemoryCardStore) Title() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.title
}

// Cards returns a copy of the cards in board order
func (s *MemoryCardStore) Cards() []domain.Card {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Card, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.cards[id])
	}
	return result
}

// Replace swaps the whole board. Cards with duplicate ids keep the first occurrence.
func (s *MemoryCardStore) Replace(board domain.Board) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.title = board.Title
	s.order = make([]string, 0, len(board.Cards))
	s.cards = make(map[string]domain.Card, len(board.Cards))
	for _, c := range board.Cards {
		if _, exists := s.cards[c.ID]; exists {
			log.Printf("Board: duplicate card id %s dropped (%q)", c.ID, c.Title)
			continue
		}
		s.order = append(s.order, c.ID)
		s.cards[c.ID] = c
	}
}

func (s *MemoryCardStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Filter returns the cards whose title, body or status contain query (case-insensitive).
// An empty query returns cards unchanged.
func Filter(cards []domain.Card, query string) []domain.Card {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return cards
	}

	// status:<name> restricts to one status
	if rest, ok := strings.CutPrefix(query, "status:"); ok {
		var out []domain.Card
		for _, c := range cards {
			if strings.EqualFold(string(c.Status), rest) {
				out = append(out, c)
			}
		}
		return out
	}

	var out []domain.Card
	for _, c := range cards {
		if strings.Contains(strings.ToLower(c.Title), query) ||
			strings.Contains(strings.ToLower(c.Body), query) {
			out = append(out, c)
		}
	}
	return out
}
