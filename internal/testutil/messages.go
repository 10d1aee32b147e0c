package testutil

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/storefront-admin/internal/app/message/domain"
	"github.com/light-bringer/storefront-admin/internal/pkg/committer"
)

// MessageRepo is an in-memory contracts.MessageRepository. Mutations apply to
// Stored as soon as they are built.
type MessageRepo struct {
	Stored   map[string]domain.Snapshot
	Inserted []*domain.Message
}

// NewMessageRepo creates a repo holding the given snapshots.
func NewMessageRepo(snaps ...domain.Snapshot) *MessageRepo {
	r := &MessageRepo{Stored: make(map[string]domain.Snapshot)}
	for _, s := range snaps {
		r.Stored[s.ID] = s
	}
	return r
}

func (r *MessageRepo) InsertMut(m *domain.Message) *spanner.Mutation {
	r.Inserted = append(r.Inserted, m)
	return spanner.Insert("messages", []string{"id"}, []interface{}{m.ID()})
}

func (r *MessageRepo) MarkReadMut(m *domain.Message) *spanner.Mutation {
	s := r.Stored[m.ID()]
	s.Read = true
	s.UpdatedAt = m.UpdatedAt()
	r.Stored[m.ID()] = s
	return spanner.Update("messages", []string{"id", "read"}, []interface{}{m.ID(), true})
}

func (r *MessageRepo) DeleteMut(messageID string) *spanner.Mutation {
	delete(r.Stored, messageID)
	return spanner.Delete("messages", spanner.Key{messageID})
}

func (r *MessageRepo) GetOwned(ctx context.Context, txn committer.Txn, userID, messageID string) (*domain.Message, error) {
	s, ok := r.Stored[messageID]
	if !ok || s.UserID != userID {
		return nil, domain.ErrMessageNotFoundOrUnauthorized
	}
	return domain.ReconstructMessage(s), nil
}
