// Package outbox writes domain events into outbox_events in the same commit
// as the row change that produced them, and relays pending events to Kafka.
package outbox

// Event is a domain event destined for the outbox.
// Implementations are marshalled to JSON as the event payload.
type Event interface {
	EventType() string
	AggregateID() string
	OwnerID() string
}

// Events converts a slice of any Event implementation for Writer.Mutations.
func Events[T Event](evs []T) []Event {
	out := make([]Event, len(evs))
	for i, ev := range evs {
		out[i] = ev
	}
	return out
}
