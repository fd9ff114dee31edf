// Package notify is the portal's modal/notification shell: a queue of
// transient, dismissible toasts plus the one-shot welcome guard. It replaces
// scattered global flags with one explicit context object: create a Center
// on startup, Close it on shutdown.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level is a toast severity.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Toast is one transient user-facing notification.
type Toast struct {
	ID        string    `json:"id"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type entry struct {
	toast Toast
	timer *time.Timer
}

// Center owns transient notification state for the lifetime of one page
// context. Every toast auto-dismisses after the TTL; manual dismissal
// cancels the timer. All user-visible failures flow through here; none are
// fatal.
type Center struct {
	mu           sync.Mutex
	ttl          time.Duration
	entries      map[string]*entry
	order        []string
	welcomeShown bool
	closed       bool

	// afterFunc schedules auto-dismiss; tests replace it to capture timers.
	afterFunc func(d time.Duration, f func()) *time.Timer
}

// NewCenter creates the shell with the given auto-dismiss TTL. A
// non-positive TTL falls back to 4s, the original toast lifetime.
func NewCenter(ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = 4 * time.Second
	}
	return &Center{
		ttl:       ttl,
		entries:   make(map[string]*entry),
		afterFunc: time.AfterFunc,
	}
}

// Push queues a toast and schedules its auto-dismiss.
func (c *Center) Push(level Level, message string) Toast {
	c.mu.Lock()
	defer c.mu.Unlock()

	toast := Toast{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	if c.closed {
		return toast
	}

	e := &entry{toast: toast}
	e.timer = c.afterFunc(c.ttl, func() { c.Dismiss(toast.ID) })
	c.entries[toast.ID] = e
	c.order = append(c.order, toast.ID)
	return toast
}

// Dismiss removes a toast and cancels its timer. It reports whether the
// toast was still active.
func (c *Center) Dismiss(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[id]
	if !ok {
		return false
	}
	e.timer.Stop()
	delete(c.entries, id)
	for i, candidate := range c.order {
		if candidate == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// Active returns the live toasts in creation order.
func (c *Center) Active() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()

	toasts := make([]Toast, 0, len(c.order))
	for _, id := range c.order {
		toasts = append(toasts, c.entries[id].toast)
	}
	return toasts
}

// MarkWelcomeShown flips the one-shot welcome guard and reports whether
// this call won; only the first caller per Center lifetime gets true.
func (c *Center) MarkWelcomeShown() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.welcomeShown {
		return false
	}
	c.welcomeShown = true
	return true
}

// Close stops every pending timer and drops all state. The Center rejects
// new toasts afterwards.
func (c *Center) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.entries {
		e.timer.Stop()
	}
	c.entries = make(map[string]*entry)
	c.order = nil
	c.closed = true
}
