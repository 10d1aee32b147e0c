package list_products

import (
	"context"

	"github.com/light-bringer/storefront-admin/internal/app/product/contracts"
)

// Request names whose catalog to list.
type Request struct {
	UserID string
}

// Query handles the list products query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list products query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute returns the user's products, newest first.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.ProductDTO, error) {
	return q.readModel.ListByUser(ctx, req.UserID)
}
