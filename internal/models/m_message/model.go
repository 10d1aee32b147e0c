package m_message

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Model builds mutations for messages.
type Model struct{}

// NewModel creates a new Model.
func NewModel() *Model {
	return &Model{}
}

// InsertMut inserts a full row.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		AllColumns,
		[]interface{}{
			data.ID,
			data.UserID,
			data.Name,
			data.Email,
			data.Subject,
			data.Message,
			data.Read,
			data.CreatedAt,
			data.UpdatedAt,
		},
	)
}

// MarkReadMut sets read = true on row id.
func (m *Model) MarkReadMut(id string, at time.Time) *spanner.Mutation {
	return spanner.Update(TableName, []string{ID, Read, UpdatedAt}, []interface{}{id, true, at})
}

// DeleteMut deletes row id.
func (m *Model) DeleteMut(id string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{id})
}
