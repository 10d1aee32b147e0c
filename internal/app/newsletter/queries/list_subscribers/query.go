package list_subscribers

import (
	"context"

	"github.com/light-bringer/storefront-admin/internal/app/newsletter/contracts"
)

// Request names whose subscribers to list.
type Request struct {
	UserID string
}

// Query handles the list subscribers query.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list subscribers query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute returns the user's subscribers, newest first.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.SubscriberDTO, error) {
	return q.readModel.ListByUser(ctx, req.UserID)
}
