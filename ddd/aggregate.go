package ddd

import (
	"slices"
	"time"

	"github.com/alkbt/domainkit/rules"
)

// Event is a domain event raised by an aggregate root. This package only
// buffers events; dispatch and persistence belong to outer layers.
type Event interface {
	// EventName returns the event's stable name.
	EventName() string
	// OccurredAt returns when the event happened.
	OccurredAt() time.Time
}

// BaseEvent is a convenience implementation of Event for embedding in
// concrete event types.
type BaseEvent struct {
	name       string
	occurredAt time.Time
}

// NewBaseEvent creates a BaseEvent stamped with the current time.
func NewBaseEvent(name string) BaseEvent {
	return BaseEvent{name: name, occurredAt: time.Now()}
}

// EventName returns the event's stable name.
func (e BaseEvent) EventName() string {
	return e.name
}

// OccurredAt returns when the event happened.
func (e BaseEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// AggregateRoot extends Entity with a pending domain-event buffer and a
// version counter. The buffer is a plain append/dequeue list: the aggregate
// appends events as its state changes and the application layer dequeues them
// after a successful save. No dispatching happens here.
//
// AggregateRoot is not safe for concurrent mutation; an aggregate instance is
// owned by one transaction at a time, which is the usual aggregate contract.
type AggregateRoot[T any, TID comparable] struct {
	Entity[T, TID]

	events  []Event
	version int64
}

// NewAggregateRoot creates an aggregate root base with an assigned identifier
// and the fixed invariant rule set. Identifier and invariant semantics are
// those of NewEntity.
func NewAggregateRoot[T any, TID comparable](
	self T, id TID, invariants ...rules.Rule[T],
) (AggregateRoot[T, TID], error) {
	entity, err := NewEntity(self, id, invariants...)
	if err != nil {
		return AggregateRoot[T, TID]{}, err
	}
	return AggregateRoot[T, TID]{Entity: entity}, nil
}

// Raise appends a domain event to the pending buffer. Nil events are ignored.
func (a *AggregateRoot[T, TID]) Raise(event Event) {
	if event == nil {
		return
	}
	a.events = append(a.events, event)
}

// PendingEvents returns a copy of the buffered events in raise order.
func (a *AggregateRoot[T, TID]) PendingEvents() []Event {
	return slices.Clone(a.events)
}

// ClearEvents dequeues all buffered events, returning them in raise order and
// leaving the buffer empty.
func (a *AggregateRoot[T, TID]) ClearEvents() []Event {
	drained := a.events
	a.events = nil
	return drained
}

// Version returns the aggregate's current version.
func (a *AggregateRoot[T, TID]) Version() int64 {
	return a.version
}

// BumpVersion increments the version counter and returns the new value.
// Call it on every state-changing operation; optimistic-concurrency checks
// against a store are an outer-layer concern.
func (a *AggregateRoot[T, TID]) BumpVersion() int64 {
	a.version++
	return a.version
}
