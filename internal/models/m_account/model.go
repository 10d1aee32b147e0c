package m_account

import (
	"cloud.google.com/go/spanner"
)

// Model builds mutations for account_settings.
type Model struct{}

// NewModel creates a new Model.
func NewModel() *Model {
	return &Model{}
}

// UpsertMut writes the full row keyed by user_id.
func (m *Model) UpsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		AllColumns,
		[]interface{}{
			data.UserID,
			data.DisplayName,
			data.PhoneNumber,
			data.Email,
			data.ProfileImageURL,
			data.CreatedAt,
			data.UpdatedAt,
		},
	)
}
