package list_events

import (
	"context"
	"encoding/json"
	"time"
)

// Request contains filtering parameters for listing events.
type Request struct {
	OwnerID     string
	EventType   *string
	AggregateID *string
	Status      *string // "pending", "completed" or "failed"
	Limit       int
}

// EventDTO is the JSON shape of an outbox event.
type EventDTO struct {
	EventID      string          `json:"event_id"`
	EventType    string          `json:"event_type"`
	AggregateID  string          `json:"aggregate_id"`
	Payload      json.RawMessage `json:"payload"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	ProcessedAt  *time.Time      `json:"processed_at,omitempty"`
	RetryCount   int64           `json:"retry_count"`
	ErrorMessage *string         `json:"error_message,omitempty"`
}

// EventsReadModel reads outbox events.
type EventsReadModel interface {
	ListEvents(ctx context.Context, req *Request) ([]*EventDTO, int64, error)
}

// Query handles the list events query use case.
type Query struct {
	readModel EventsReadModel
}

// NewQuery creates a new list events query.
func NewQuery(readModel EventsReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute returns the caller's events, newest first, and the total matching count.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*EventDTO, int64, error) {
	if req.Limit <= 0 {
		req.Limit = 100
	}
	if req.Limit > 1000 {
		req.Limit = 1000
	}

	return q.readModel.ListEvents(ctx, req)
}
