package m_outbox

import (
	"cloud.google.com/go/spanner"
)

// Model builds mutations for outbox_events.
type Model struct{}

// NewModel creates a new Model.
func NewModel() *Model {
	return &Model{}
}

// InsertMut inserts a pending event stamped with the commit timestamp.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{EventID, EventType, AggregateID, OwnerID, Payload, Status, CreatedAt, RetryCount},
		[]interface{}{
			data.EventID,
			data.EventType,
			data.AggregateID,
			data.OwnerID,
			data.Payload,
			data.Status,
			spanner.CommitTimestamp,
			data.RetryCount,
		},
	)
}

// MarkCompletedMut records a successful publish.
func (m *Model) MarkCompletedMut(eventID string) *spanner.Mutation {
	return spanner.Update(
		TableName,
		[]string{EventID, Status, ProcessedAt, ErrorMessage},
		[]interface{}{eventID, StatusCompleted, spanner.CommitTimestamp, spanner.NullString{}},
	)
}

// MarkRetryMut records a failed publish attempt. status is pending while
// retries remain and failed once they are exhausted.
func (m *Model) MarkRetryMut(eventID, status string, retryCount int64, errMsg string) *spanner.Mutation {
	cols := []string{EventID, Status, RetryCount, ErrorMessage}
	vals := []interface{}{eventID, status, retryCount, spanner.NullString{StringVal: errMsg, Valid: true}}
	if status == StatusFailed {
		cols = append(cols, ProcessedAt)
		vals = append(vals, spanner.CommitTimestamp)
	}
	return spanner.Update(TableName, cols, vals)
}
