package list_coupons

import (
	"context"

	"github.com/light-bringer/storefront-admin/internal/app/coupon/contracts"
)

// Request names whose coupons to list.
type Request struct {
	UserID string
}

// Query handles the list coupons query.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list coupons query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute returns the user's coupons, newest first.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.CouponDTO, error) {
	return q.readModel.ListByUser(ctx, req.UserID)
}
