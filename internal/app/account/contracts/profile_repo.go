package contracts

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/storefront-admin/internal/app/account/domain"
	"github.com/light-bringer/storefront-admin/internal/pkg/committer"
)

// ProfileRepository persists account profiles keyed by user id.
type ProfileRepository interface {
	// UpsertMut writes the whole row, inserting it when absent.
	UpsertMut(p *domain.Profile) *spanner.Mutation

	// Get loads userID's profile inside txn. A missing row is domain.ErrProfileNotFound.
	Get(ctx context.Context, txn committer.Txn, userID string) (*domain.Profile, error)
}

// ProfileDTO is the JSON shape of an account_settings row.
type ProfileDTO struct {
	UserID          string    `json:"user_id"`
	DisplayName     *string   `json:"display_name"`
	PhoneNumber     *string   `json:"phone_number"`
	Email           *string   `json:"email"`
	ProfileImageURL *string   `json:"profile_image_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewProfileDTO renders an aggregate.
func NewProfileDTO(p *domain.Profile) *ProfileDTO {
	return &ProfileDTO{
		UserID:          p.UserID(),
		DisplayName:     p.DisplayName(),
		PhoneNumber:     p.PhoneNumber(),
		Email:           p.Email(),
		ProfileImageURL: p.ProfileImageURL(),
		CreatedAt:       p.CreatedAt(),
		UpdatedAt:       p.UpdatedAt(),
	}
}

// ReadModel serves profile reads outside a transaction.
type ReadModel interface {
	// Get returns userID's profile or domain.ErrProfileNotFound.
	Get(ctx context.Context, userID string) (*ProfileDTO, error)
}
