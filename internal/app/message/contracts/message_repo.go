package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/storefront-admin/internal/app/message/domain"
	"github.com/light-bringer/storefront-admin/internal/pkg/committer"
)

// MessageRepository persists messages. Writes are returned as mutations.
type MessageRepository interface {
	InsertMut(message *domain.Message) *spanner.Mutation
	MarkReadMut(message *domain.Message) *spanner.Mutation
	DeleteMut(messageID string) *spanner.Mutation

	// GetOwned loads a message inside txn. A missing message and one
	// addressed to another user both return domain.ErrMessageNotFoundOrUnauthorized.
	GetOwned(ctx context.Context, txn committer.Txn, userID, messageID string) (*domain.Message, error)
}
