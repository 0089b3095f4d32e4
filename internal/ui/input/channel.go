package input

import (
	"sync"

	"canvasnav/internal/ui/input/types"
)

// Listener receives key events. Returning true stops the event from reaching older listeners.
type Listener func(ev types.KeyEvent) bool

type registration struct {
	id       uint64
	listener Listener
}

// Channel is the shared key event channel. The most recently registered
// listener sees an event first; it chains to older listeners by returning false.
type Channel struct {
	mu        sync.Mutex
	listeners []registration
	nextID    uint64
}

// NewChannel creates an empty key channel
func NewChannel() *Channel {
	return &Channel{}
}

// Register adds a listener and returns its release function. Release is safe to call more than once.
func (c *Channel) Register(l Listener) (release func()) {
	c.mu.Lock()
	c.nextID++
	id := c.nextID
	c.listeners = append(c.listeners, registration{id: id, listener: l})
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			for i, r := range c.listeners {
				if r.id == id {
					c.listeners = append(c.listeners[:i:i], c.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

// Dispatch delivers ev newest-first and reports whether some listener consumed it.
// Listeners may register or release during dispatch; the snapshot taken on entry is used.
func (c *Channel) Dispatch(ev types.KeyEvent) bool {
	c.mu.Lock()
	snapshot := make([]registration, len(c.listeners))
	copy(snapshot, c.listeners)
	c.mu.Unlock()

	for i := len(snapshot) - 1; i >= 0; i-- {
		if snapshot[i].listener(ev) {
			return true
		}
	}
	return false
}

// Len reports the number of registered listeners
func (c *Channel) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.listeners)
}
