package m_outbox

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data is one row of outbox_events.
type Data struct {
	EventID      string             `spanner:"event_id"`
	EventType    string             `spanner:"event_type"`
	AggregateID  string             `spanner:"aggregate_id"`
	OwnerID      string             `spanner:"owner_id"`
	Payload      spanner.NullJSON   `spanner:"payload"`
	Status       string             `spanner:"status"`
	CreatedAt    time.Time          `spanner:"created_at"`
	ProcessedAt  spanner.NullTime   `spanner:"processed_at"`
	RetryCount   int64              `spanner:"retry_count"`
	ErrorMessage spanner.NullString `spanner:"error_message"`
}
