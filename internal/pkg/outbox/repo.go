package outbox

import (
	"encoding/json"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"

	"github.com/light-bringer/storefront-admin/internal/models/m_outbox"
)

// Repo turns domain events into outbox insert mutations.
type Repo struct {
	model *m_outbox.Model
	newID func() string
}

// NewRepo creates a new Repo.
func NewRepo() *Repo {
	return &Repo{
		model: m_outbox.NewModel(),
		newID: func() string { return uuid.New().String() },
	}
}

// Enrich assigns an event id and serializes the payload.
func (r *Repo) Enrich(event Event) (*m_outbox.Data, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize %s event: %w", event.EventType(), err)
	}
	return &m_outbox.Data{
		EventID:     r.newID(),
		EventType:   event.EventType(),
		AggregateID: event.AggregateID(),
		OwnerID:     event.OwnerID(),
		Payload:     spanner.NullJSON{Value: json.RawMessage(payload), Valid: true},
		Status:      m_outbox.StatusPending,
	}, nil
}

// InsertMut returns the insert mutation for an enriched event.
func (r *Repo) InsertMut(data *m_outbox.Data) *spanner.Mutation {
	return r.model.InsertMut(data)
}

// Mutations enriches every event and returns their insert mutations in order.
func (r *Repo) Mutations(events ...Event) ([]*spanner.Mutation, error) {
	muts := make([]*spanner.Mutation, 0, len(events))
	for _, event := range events {
		data, err := r.Enrich(event)
		if err != nil {
			return nil, err
		}
		muts = append(muts, r.InsertMut(data))
	}
	return muts, nil
}

// Writer is what use cases need from the outbox.
type Writer interface {
	Mutations(events ...Event) ([]*spanner.Mutation, error)
}
