package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/storefront-admin/internal/app/newsletter/contracts"
	"github.com/light-bringer/storefront-admin/internal/app/newsletter/domain"
	"github.com/light-bringer/storefront-admin/internal/models/m_newsletter"
	"github.com/light-bringer/storefront-admin/internal/pkg/apperr"
	"github.com/light-bringer/storefront-admin/internal/pkg/committer"
	"github.com/light-bringer/storefront-admin/internal/pkg/query"
)

// SubscriberRepo implements SubscriberRepository for Spanner.
type SubscriberRepo struct {
	model *m_newsletter.Model
}

// NewSubscriberRepo creates a new SubscriberRepo.
func NewSubscriberRepo() contracts.SubscriberRepository {
	return &SubscriberRepo{model: m_newsletter.NewModel()}
}

func (r *SubscriberRepo) InsertMut(s *domain.Subscriber) *spanner.Mutation {
	data := &m_newsletter.Data{
		ID:             s.ID(),
		UserID:         s.UserID(),
		Email:          s.Email(),
		Status:         s.Status(),
		SubscribedDate: s.SubscribedDate(),
		CreatedAt:      s.CreatedAt(),
		UpdatedAt:      s.UpdatedAt(),
	}
	if n := s.Name(); n != nil {
		data.Name = spanner.NullString{StringVal: *n, Valid: true}
	}
	return r.model.InsertMut(data)
}

func (r *SubscriberRepo) EmailExists(ctx context.Context, txn committer.Txn, email string) (bool, error) {
	stmt := query.From(m_newsletter.TableName).
		Select(m_newsletter.ID).
		Where(query.Eq(m_newsletter.Email, email)).
		Limit(1).
		Build()

	iter := txn.Query(ctx, stmt)
	defer iter.Stop()

	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, apperr.Store(err)
	}
	return true, nil
}

// ReadModelImpl implements ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{client: client}
}

func (rm *ReadModelImpl) ListByUser(ctx context.Context, userID string) ([]*contracts.SubscriberDTO, error) {
	stmt := query.From(m_newsletter.TableName).
		Select(m_newsletter.AllColumns...).
		Where(query.Eq(m_newsletter.UserID, userID)).
		OrderBy(m_newsletter.CreatedAt, query.Desc).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	subscribers := make([]*contracts.SubscriberDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, apperr.Store(err)
		}

		var data m_newsletter.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse subscriber: %w", err)
		}
		snap := domain.Snapshot{
			ID:             data.ID,
			UserID:         data.UserID,
			Email:          data.Email,
			Status:         data.Status,
			SubscribedDate: data.SubscribedDate,
			CreatedAt:      data.CreatedAt,
			UpdatedAt:      data.UpdatedAt,
		}
		if data.Name.Valid {
			n := data.Name.StringVal
			snap.Name = &n
		}
		subscribers = append(subscribers, contracts.NewSubscriberDTO(domain.ReconstructSubscriber(snap)))
	}
	return subscribers, nil
}
