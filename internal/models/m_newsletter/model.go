package m_newsletter

import (
	"cloud.google.com/go/spanner"
)

// Model builds mutations for newsletters.
type Model struct{}

// NewModel creates a new Model.
func NewModel() *Model {
	return &Model{}
}

// InsertMut inserts a full row. A duplicate email fails the commit with AlreadyExists.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		AllColumns,
		[]interface{}{
			data.ID,
			data.UserID,
			data.Email,
			data.Name,
			data.Status,
			data.SubscribedDate,
			data.CreatedAt,
			data.UpdatedAt,
		},
	)
}
