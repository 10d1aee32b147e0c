package repo

import (
	"context"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/storefront-admin/internal/app/message/contracts"
	"github.com/light-bringer/storefront-admin/internal/models/m_message"
	"github.com/light-bringer/storefront-admin/internal/pkg/apperr"
	"github.com/light-bringer/storefront-admin/internal/pkg/query"
)

// ReadModelImpl implements ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{client: client}
}

func (rm *ReadModelImpl) ListByUser(ctx context.Context, userID string) ([]*contracts.MessageDTO, error) {
	stmt := query.From(m_message.TableName).
		Select(m_message.AllColumns...).
		Where(query.Eq(m_message.UserID, userID)).
		OrderBy(m_message.CreatedAt, query.Desc).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	messages := make([]*contracts.MessageDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, apperr.Store(err)
		}
		m, err := rowToDomain(row)
		if err != nil {
			return nil, err
		}
		messages = append(messages, contracts.NewMessageDTO(m))
	}
	return messages, nil
}
