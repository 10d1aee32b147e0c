package testutil

import (
	"sync"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/storefront-admin/internal/pkg/outbox"
)

// RecordingOutbox is an outbox.Writer that keeps the events it was given and
// returns one placeholder mutation per event.
type RecordingOutbox struct {
	mu     sync.Mutex
	Events []outbox.Event
}

// NewRecordingOutbox creates an empty RecordingOutbox.
func NewRecordingOutbox() *RecordingOutbox {
	return &RecordingOutbox{}
}

func (o *RecordingOutbox) Mutations(events ...outbox.Event) ([]*spanner.Mutation, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	muts := make([]*spanner.Mutation, 0, len(events))
	for _, ev := range events {
		o.Events = append(o.Events, ev)
		muts = append(muts, spanner.Insert("outbox_events", []string{"event_type"}, []interface{}{ev.EventType()}))
	}
	return muts, nil
}

// Types returns the recorded event types in order.
func (o *RecordingOutbox) Types() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	types := make([]string, len(o.Events))
	for i, ev := range o.Events {
		types[i] = ev.EventType()
	}
	return types
}
