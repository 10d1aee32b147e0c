package testutil

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/storefront-admin/internal/app/account/domain"
	"github.com/light-bringer/storefront-admin/internal/pkg/committer"
)

// ProfileRepo is an in-memory contracts.ProfileRepository. UpsertMut writes
// through to Stored.
type ProfileRepo struct {
	Stored map[string]domain.Snapshot
}

// NewProfileRepo creates a repo holding the given snapshots.
func NewProfileRepo(snaps ...domain.Snapshot) *ProfileRepo {
	r := &ProfileRepo{Stored: make(map[string]domain.Snapshot)}
	for _, s := range snaps {
		r.Stored[s.UserID] = s
	}
	return r
}

func (r *ProfileRepo) UpsertMut(p *domain.Profile) *spanner.Mutation {
	r.Stored[p.UserID()] = domain.Snapshot{
		UserID:          p.UserID(),
		DisplayName:     p.DisplayName(),
		PhoneNumber:     p.PhoneNumber(),
		Email:           p.Email(),
		ProfileImageURL: p.ProfileImageURL(),
		CreatedAt:       p.CreatedAt(),
		UpdatedAt:       p.UpdatedAt(),
	}
	return spanner.InsertOrUpdate("account_settings", []string{"user_id"}, []interface{}{p.UserID()})
}

func (r *ProfileRepo) Get(ctx context.Context, txn committer.Txn, userID string) (*domain.Profile, error) {
	s, ok := r.Stored[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return domain.ReconstructProfile(s), nil
}
