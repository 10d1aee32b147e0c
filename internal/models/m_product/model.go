package m_product

import (
	"cloud.google.com/go/spanner"
)

// Model builds mutations for products.
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
			data.SKUID,
			data.ProductName,
			data.ProductDescription,
			data.ProductPrice,
			data.SalesPrice,
			data.ProductDiscount,
			data.ProductDiscountType,
			data.ProductStock,
			data.Status,
			data.ProductCategories,
			data.ProductSizes,
			data.ProductColors,
			data.ProductImages,
			data.CreatedAt,
			data.UpdatedAt,
		},
	)
}

// UpdateMut writes only the given columns of row id.
func (m *Model) UpdateMut(id string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	columns := make([]string, 0, len(updates)+1)
	values := make([]interface{}, 0, len(updates)+1)
	columns = append(columns, ID)
	values = append(values, id)
	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}

	return spanner.Update(TableName, columns, values)
}

// DeleteMut deletes row id.
func (m *Model) DeleteMut(id string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{id})
}
