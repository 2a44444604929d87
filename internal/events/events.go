// Package events is the application-wide broadcast channel. Collaborators
// outside the state store (the HTTP event stream, audit logging) observe
// employee and view changes through it without holding a store reference.
package events

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

// Event names
const (
	EmployeeAdded   = "employee-added"
	EmployeeUpdated = "employee-updated"
	EmployeeDeleted = "employee-deleted"
	ViewModeChanged = "view-mode-changed"
	LanguageChanged = "language-changed"
)

// Event is a named occurrence with an optional payload
type Event struct {
	Name       string    `json:"name"`
	Payload    any       `json:"payload,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Hook receives broadcast events
type Hook interface {
	Notify(ctx context.Context, event Event) error
}

// HookFunc allows plain functions to satisfy Hook
type HookFunc func(ctx context.Context, event Event) error

// Notify dispatches to the underlying function
func (fn HookFunc) Notify(ctx context.Context, event Event) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, event)
}

// Hooks fans out events to zero or more hooks
type Hooks []Hook

// Notify forwards the event to every hook and joins their errors. A failing
// hook does not stop the others.
func (h Hooks) Notify(ctx context.Context, event Event) error {
	if len(h) == 0 {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var errs []error
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.Notify(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Bus is a Hooks list that can change while events are being emitted
type Bus struct {
	mu     sync.RWMutex
	nextID int
	hooks  map[int]Hook
	order  []int
	now    func() time.Time
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{
		hooks: make(map[int]Hook),
		now:   time.Now,
	}
}

// Subscribe registers hook and returns a function that removes it. Calling
// the returned function more than once is a no-op.
func (b *Bus) Subscribe(hook Hook) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.hooks[id] = hook
	b.order = append(b.order, id)
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.hooks, id)
			for i, v := range b.order {
				if v == id {
					b.order = append(b.order[:i:i], b.order[i+1:]...)
					break
				}
			}
		})
	}
}

// Len reports the number of subscribed hooks
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.order)
}

// Emit delivers the event to a snapshot of the subscribed hooks, in
// subscription order. Events without a name are dropped.
func (b *Bus) Emit(ctx context.Context, event Event) error {
	if b == nil {
		return nil
	}
	event.Name = strings.TrimSpace(event.Name)
	if event.Name == "" {
		return nil
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = b.now()
	}
	return b.snapshot().Notify(ctx, event)
}

func (b *Bus) snapshot() Hooks {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make(Hooks, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.hooks[id])
	}
	return out
}

// CaptureHook records events for assertions in tests
type CaptureHook struct {
	Err    error
	mu     sync.Mutex
	events []Event
}

// Notify records the event and returns any configured error
func (h *CaptureHook) Notify(_ context.Context, event Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, event)
	return h.Err
}

// Events returns the recorded events
func (h *CaptureHook) Events() []Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Event(nil), h.events...)
}

// Names returns the names of the recorded events in order
func (h *CaptureHook) Names() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	names := make([]string, len(h.events))
	for i, e := range h.events {
		names[i] = e.Name
	}
	return names
}
