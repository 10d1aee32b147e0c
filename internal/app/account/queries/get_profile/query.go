package get_profile

import (
	"context"

	"github.com/light-bringer/storefront-admin/internal/app/account/contracts"
)

// Request names whose profile to read.
type Request struct {
	UserID string
}

// Query handles the get profile query.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new get profile query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute returns the caller's profile.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.ProfileDTO, error) {
	return q.readModel.Get(ctx, req.UserID)
}
