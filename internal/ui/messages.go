package ui

import (
	"time"

	"tekstitv/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tickMsg drives the clock redraw and the auto-refresh poll
type tickMsg time.Time

// sourcePagerMsg contains the result of the view-source pager
type sourcePagerMsg struct {
	err error
}
