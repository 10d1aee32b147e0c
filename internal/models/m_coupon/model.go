package m_coupon

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Model builds mutations for coupons.
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
			data.Code,
			data.DiscountType,
			data.DiscountValue,
			data.MaxUses,
			data.UsesCount,
			data.ValidFrom,
			data.ValidUntil,
			data.IsActive,
			data.CreatedAt,
			data.UpdatedAt,
		},
	)
}

// UsesCountMut sets uses_count of row id.
func (m *Model) UsesCountMut(id string, usesCount int64, at time.Time) *spanner.Mutation {
	return spanner.Update(
		TableName,
		[]string{ID, UsesCount, UpdatedAt},
		[]interface{}{id, usesCount, at},
	)
}

// DeleteMut deletes row id.
func (m *Model) DeleteMut(id string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{id})
}
