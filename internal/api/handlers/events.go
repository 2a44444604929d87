package handlers

import (
	"context"
	"net/http"
	"time"

	"employee-roster/internal/events"

	"github.com/gin-gonic/gin"
)

// eventBuffer bounds the events queued for one slow client
const eventBuffer = 32

// EventsHandler streams bus events to HTTP clients
type EventsHandler struct {
	bus       *events.Bus
	keepAlive time.Duration
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(bus *events.Bus, keepAlive time.Duration) *EventsHandler {
	return &EventsHandler{
		bus:       bus,
		keepAlive: keepAlive,
	}
}

// Stream sends every bus event as a server-sent event until the client goes away
// @Summary Stream events
// @Description Server-sent events for employee-added, employee-updated, employee-deleted, view-mode-changed and language-changed
// @Tags events
// @Produce text/event-stream
// @Success 200 {string} string "Event stream"
// @Router /events [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	queue := make(chan events.Event, eventBuffer)
	unsubscribe := h.bus.Subscribe(events.HookFunc(func(_ context.Context, event events.Event) error {
		select {
		case queue <- event:
		default:
		}
		return nil
	}))
	defer unsubscribe()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	done := c.Request.Context().Done()
	for {
		select {
		case <-done:
			return
		case event := <-queue:
			c.SSEvent(event.Name, event)
			c.Writer.Flush()
		case <-ticker.C:
			c.SSEvent("ping", time.Now().UTC().Format(time.RFC3339))
			c.Writer.Flush()
		}
	}
}
