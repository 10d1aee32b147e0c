package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/storefront-admin/internal/app/message/contracts"
	"github.com/light-bringer/storefront-admin/internal/app/message/domain"
	"github.com/light-bringer/storefront-admin/internal/models/m_message"
	"github.com/light-bringer/storefront-admin/internal/pkg/apperr"
	"github.com/light-bringer/storefront-admin/internal/pkg/committer"
)

// MessageRepo implements MessageRepository for Spanner.
type MessageRepo struct {
	model *m_message.Model
}

// NewMessageRepo creates a new MessageRepo.
func NewMessageRepo() contracts.MessageRepository {
	return &MessageRepo{model: m_message.NewModel()}
}

func (r *MessageRepo) InsertMut(m *domain.Message) *spanner.Mutation {
	return r.model.InsertMut(&m_message.Data{
		ID:        m.ID(),
		UserID:    m.UserID(),
		Name:      nullString(m.Name()),
		Email:     m.Email(),
		Subject:   nullString(m.Subject()),
		Message:   m.Message(),
		Read:      m.Read(),
		CreatedAt: m.CreatedAt(),
		UpdatedAt: m.UpdatedAt(),
	})
}

func (r *MessageRepo) MarkReadMut(m *domain.Message) *spanner.Mutation {
	return r.model.MarkReadMut(m.ID(), m.UpdatedAt())
}

func (r *MessageRepo) DeleteMut(messageID string) *spanner.Mutation {
	return r.model.DeleteMut(messageID)
}

func (r *MessageRepo) GetOwned(ctx context.Context, txn committer.Txn, userID, messageID string) (*domain.Message, error) {
	row, err := txn.ReadRow(ctx, m_message.TableName, spanner.Key{messageID}, m_message.AllColumns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrMessageNotFoundOrUnauthorized
		}
		return nil, apperr.Store(err)
	}
	m, err := rowToDomain(row)
	if err != nil {
		return nil, err
	}
	if m.UserID() != userID {
		return nil, domain.ErrMessageNotFoundOrUnauthorized
	}
	return m, nil
}

func rowToDomain(row *spanner.Row) (*domain.Message, error) {
	var data m_message.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse message: %w", err)
	}
	return domain.ReconstructMessage(domain.Snapshot{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      stringPtr(data.Name),
		Email:     data.Email,
		Subject:   stringPtr(data.Subject),
		Message:   data.Message,
		Read:      data.Read,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}), nil
}

func nullString(s *string) spanner.NullString {
	if s == nil {
		return spanner.NullString{}
	}
	return spanner.NullString{StringVal: *s, Valid: true}
}

func stringPtr(ns spanner.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.StringVal
	return &s
}
