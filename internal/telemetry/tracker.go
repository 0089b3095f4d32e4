package telemetry

import (
	"log"
	"sync"
	"time"

	"canvasnav/internal/eventbus"
)

// Stats is a snapshot of what the tracker has seen
type Stats struct {
	Selections    int
	Activations   int
	FilterChanges int
	LastIndex     int
	LastCardID    string
	LastEventAt   time.Time
}

// Tracker counts navigation events. It is optional: nothing in the UI
// depends on it being attached.
type Tracker struct {
	mu     sync.Mutex
	stats  Stats
	now    func() time.Time
	unsubs []func()
}

// NewTracker creates a tracker with no subscriptions
func NewTracker() *Tracker {
	return &Tracker{stats: Stats{LastIndex: -1}, now: time.Now}
}

// Attach subscribes the tracker to selection, activation and filter events
func (t *Tracker) Attach(bus eventbus.EventBus) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, et := range []eventbus.EventType{
		eventbus.EventSelectionChanged,
		eventbus.EventCardActivated,
		eventbus.EventFilterChanged,
	} {
		t.unsubs = append(t.unsubs, bus.Subscribe(et, t.Record))
	}
}

// Detach drops every subscription made by Attach
func (t *Tracker) Detach() {
	t.mu.Lock()
	unsubs := t.unsubs
	t.unsubs = nil
	t.mu.Unlock()

	for _, u := range unsubs {
		u()
	}
}

// Record accounts for a single event
func (t *Tracker) Record(event eventbus.DomainEvent) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch e := event.(type) {
	case eventbus.SelectionChangedEvent:
		t.stats.Selections++
		t.stats.LastIndex = e.Index
		t.stats.LastCardID = e.CardID
		log.Printf("Telemetry: selection index=%d card=%s", e.Index, e.CardID)
	case eventbus.CardActivatedEvent:
		t.stats.Activations++
		t.stats.LastIndex = e.Index
		t.stats.LastCardID = e.CardID
		log.Printf("Telemetry: activate index=%d card=%s", e.Index, e.CardID)
	case eventbus.FilterChangedEvent:
		t.stats.FilterChanges++
		log.Printf("Telemetry: filter %q visible=%d", e.Query, e.Visible)
	default:
		return
	}
	t.stats.LastEventAt = t.now()
}

// Stats returns a copy of the counters
func (t *Tracker) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats
}
