package ui

import (
	"time"

	"canvasnav/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// frameMsg drives one scroll animation frame
type frameMsg time.Time

// cardPagerMsg contains the result of a card pager command
type cardPagerMsg struct {
	cardID string
	err    error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
