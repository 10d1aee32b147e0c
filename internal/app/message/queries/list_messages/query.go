package list_messages

import (
	"context"

	"github.com/light-bringer/storefront-admin/internal/app/message/contracts"
)

// Request names whose messages to list.
type Request struct {
	UserID string
}

// Query handles the list messages query.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list messages query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute returns the user's messages, newest first.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.MessageDTO, error) {
	return q.readModel.ListByUser(ctx, req.UserID)
}
