package update_profile

import (
	"context"
	"errors"

	"github.com/light-bringer/storefront-admin/internal/app/account/contracts"
	"github.com/light-bringer/storefront-admin/internal/app/account/domain"
	"github.com/light-bringer/storefront-admin/internal/pkg/apperr"
	"github.com/light-bringer/storefront-admin/internal/pkg/clock"
	"github.com/light-bringer/storefront-admin/internal/pkg/committer"
	"github.com/light-bringer/storefront-admin/internal/pkg/imagehost"
	"github.com/light-bringer/storefront-admin/internal/pkg/outbox"
)

// Request carries the profile columns and an optional new image.
type Request struct {
	UserID string
	Fields domain.Fields
	Images [][]byte
}

// Interactor handles the profile upsert use case.
type Interactor struct {
	repo      contracts.ProfileRepository
	outbox    outbox.Writer
	committer committer.Applier
	uploader  imagehost.Uploader
	clock     clock.Clock
}

// NewInteractor creates a new update profile interactor.
func NewInteractor(
	repo contracts.ProfileRepository,
	outbox outbox.Writer,
	committer committer.Applier,
	uploader imagehost.Uploader,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		repo:      repo,
		outbox:    outbox,
		committer: committer,
		uploader:  uploader,
		clock:     clock,
	}
}

// Execute uploads the new image if any, then upserts the caller's row. A new
// image replaces the stored URL; without one the stored URL is kept.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*contracts.ProfileDTO, error) {
	if len(req.Images) > 1 {
		return nil, domain.ErrTooManyImages
	}

	var imageURL *string
	if len(req.Images) == 1 {
		urls, err := imagehost.UploadAll(ctx, i.uploader, imagehost.ProfileFolder(req.UserID), req.Images, 1)
		if err != nil {
			return nil, err
		}
		imageURL = &urls[0]
	}

	var saved *domain.Profile
	err := i.committer.ApplyInTransaction(ctx, func(ctx context.Context, txn committer.Txn) (*committer.CommitPlan, error) {
		now := i.clock.Now()
		profile, err := i.repo.Get(ctx, txn, req.UserID)
		if errors.Is(err, domain.ErrProfileNotFound) {
			profile, err = domain.NewProfile(req.UserID, now), nil
		}
		if err != nil {
			return nil, err
		}

		changed := profile.Update(req.Fields, imageURL, now)

		plan := committer.NewPlan()
		plan.Add(i.repo.UpsertMut(profile))
		muts, err := i.outbox.Mutations(&domain.UpdatedEvent{
			UserID:        req.UserID,
			ChangedFields: changed,
			UpdatedAt:     now,
		})
		if err != nil {
			return nil, err
		}
		plan.AddMultiple(muts)

		saved = profile
		return plan, nil
	})
	if err != nil {
		return nil, apperr.OrStore(err)
	}
	return contracts.NewProfileDTO(saved), nil
}
