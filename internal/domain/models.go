package domain

import "time"

// CardStatus describes what a card's session is doing
type CardStatus string

const (
	StatusActive   CardStatus = "active"
	StatusIdle     CardStatus = "idle"
	StatusArchived CardStatus = "archived"
)

// Card represents a single selectable item on the board
type Card struct {
	ID        string     `toml:"id"`
	Title     string     `toml:"title"`
	Body      string     `toml:"body"`
	Status    CardStatus `toml:"status"`
	UpdatedAt time.Time  `toml:"updated_at"`
}

// Board represents an ordered collection of cards
type Board struct {
	Title string `toml:"title"`
	Cards []Card `toml:"cards"`
}
