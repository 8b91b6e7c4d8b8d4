package fridge

import "fridged/internal/bus"

// EventPublisher receives domain events from the engine. Implementations
// should be lightweight and non-blocking; Publish must not panic.
// *bus.Bus satisfies it.
type EventPublisher interface {
	Publish(bus.Event)
}

// noopPublisher is the default; it drops events.
type noopPublisher struct{}

func (noopPublisher) Publish(bus.Event) {}
