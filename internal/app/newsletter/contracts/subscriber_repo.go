package contracts

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/storefront-admin/internal/app/newsletter/domain"
	"github.com/light-bringer/storefront-admin/internal/pkg/committer"
)

// SubscriberRepository persists newsletter subscribers.
type SubscriberRepository interface {
	InsertMut(s *domain.Subscriber) *spanner.Mutation

	// EmailExists reports whether any subscriber already has email.
	EmailExists(ctx context.Context, txn committer.Txn, email string) (bool, error)
}

// SubscriberDTO is the JSON shape of a newsletters row.
type SubscriberDTO struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Email          string    `json:"email"`
	Name           *string   `json:"name"`
	Status         string    `json:"status"`
	SubscribedDate time.Time `json:"subscribed_date"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewSubscriberDTO renders an aggregate.
func NewSubscriberDTO(s *domain.Subscriber) *SubscriberDTO {
	return &SubscriberDTO{
		ID:             s.ID(),
		UserID:         s.UserID(),
		Email:          s.Email(),
		Name:           s.Name(),
		Status:         s.Status(),
		SubscribedDate: s.SubscribedDate(),
		CreatedAt:      s.CreatedAt(),
		UpdatedAt:      s.UpdatedAt(),
	}
}

// ReadModel serves subscriber listings.
type ReadModel interface {
	// ListByUser returns the subscribers owned by userID, newest first.
	ListByUser(ctx context.Context, userID string) ([]*SubscriberDTO, error)
}
