package m_outbox

const (
	TableName = "outbox_events"

	EventID      = "event_id"
	EventType    = "event_type"
	AggregateID  = "aggregate_id"
	OwnerID      = "owner_id"
	Payload      = "payload"
	Status       = "status"
	CreatedAt    = "created_at"
	ProcessedAt  = "processed_at"
	RetryCount   = "retry_count"
	ErrorMessage = "error_message"
)

// AllColumns lists every column in Data order.
var AllColumns = []string{
	EventID, EventType, AggregateID, OwnerID, Payload, Status,
	CreatedAt, ProcessedAt, RetryCount, ErrorMessage,
}

// Event statuses.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)
