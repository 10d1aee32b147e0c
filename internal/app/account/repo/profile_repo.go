package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/storefront-admin/internal/app/account/contracts"
	"github.com/light-bringer/storefront-admin/internal/app/account/domain"
	"github.com/light-bringer/storefront-admin/internal/models/m_account"
	"github.com/light-bringer/storefront-admin/internal/pkg/apperr"
	"github.com/light-bringer/storefront-admin/internal/pkg/committer"
)

// rowReader is satisfied by both committer.Txn and a single-use read-only transaction.
type rowReader interface {
	ReadRow(ctx context.Context, table string, key spanner.Key, columns []string) (*spanner.Row, error)
}

// ProfileRepo implements ProfileRepository for Spanner.
type ProfileRepo struct {
	model *m_account.Model
}

// NewProfileRepo creates a new ProfileRepo.
func NewProfileRepo() contracts.ProfileRepository {
	return &ProfileRepo{model: m_account.NewModel()}
}

func (r *ProfileRepo) UpsertMut(p *domain.Profile) *spanner.Mutation {
	return r.model.UpsertMut(&m_account.Data{
		UserID:          p.UserID(),
		DisplayName:     nullString(p.DisplayName()),
		PhoneNumber:     nullString(p.PhoneNumber()),
		Email:           nullString(p.Email()),
		ProfileImageURL: nullString(p.ProfileImageURL()),
		CreatedAt:       p.CreatedAt(),
		UpdatedAt:       p.UpdatedAt(),
	})
}

func (r *ProfileRepo) Get(ctx context.Context, txn committer.Txn, userID string) (*domain.Profile, error) {
	return read(ctx, txn, userID)
}

// ReadModelImpl implements ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{client: client}
}

func (rm *ReadModelImpl) Get(ctx context.Context, userID string) (*contracts.ProfileDTO, error) {
	p, err := read(ctx, rm.client.Single(), userID)
	if err != nil {
		return nil, err
	}
	return contracts.NewProfileDTO(p), nil
}

func read(ctx context.Context, rr rowReader, userID string) (*domain.Profile, error) {
	row, err := rr.ReadRow(ctx, m_account.TableName, spanner.Key{userID}, m_account.AllColumns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrProfileNotFound
		}
		return nil, apperr.Store(err)
	}

	var data m_account.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return domain.ReconstructProfile(domain.Snapshot{
		UserID:          data.UserID,
		DisplayName:     stringPtr(data.DisplayName),
		PhoneNumber:     stringPtr(data.PhoneNumber),
		Email:           stringPtr(data.Email),
		ProfileImageURL: stringPtr(data.ProfileImageURL),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
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
