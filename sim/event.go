package sim

import "github.com/griddyn/griddyn/timing"

// An Event is something going to happen in the future.
type Event interface {
	// Return the time that the event should happen
	Time() timing.VTime

	// Returns the handler that can should handle the event
	Handler() Handler

	// IsSecondary tells if the event is a secondary event. Secondary event are
	// handled after all same-time primary events are handled.
	IsSecondary() bool
}

// EventBase provides the basic fields and getters for other events
type EventBase struct {
	ID        string
	time      timing.VTime
	handler   Handler
	secondary bool
}

// MakeEventBase creates a new EventBase
func MakeEventBase(t timing.VTime, handler Handler) EventBase {
	return EventBase{
		ID:      GetIDGenerator().Generate(),
		time:    t,
		handler: handler,
	}
}

// NewEventBase creates a new EventBase
func NewEventBase(t timing.VTime, handler Handler) *EventBase {
	e := MakeEventBase(t, handler)
	return &e
}

// MakeSecondary marks the event as a secondary event.
func (e *EventBase) MakeSecondary() {
	e.secondary = true
}

// Time return the time that the event is going to happen
func (e EventBase) Time() timing.VTime {
	return e.time
}

// Handler returns the handler to handle the event.
func (e EventBase) Handler() Handler {
	return e.handler
}

// IsSecondary returns true if the event is a secondary event.
func (e EventBase) IsSecondary() bool {
	return e.secondary
}

// A Handler defines a domain for the events.
//
// One event is always constraint to one Handler, which means the event can
// only be scheduled by one handler and can only directly modify that handler.
type Handler interface {
	Handle(e Event) error
}
