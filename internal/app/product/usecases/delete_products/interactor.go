package delete_products

import (
	"context"

	"github.com/light-bringer/storefront-admin/internal/app/product/contracts"
	"github.com/light-bringer/storefront-admin/internal/app/product/domain"
	"github.com/light-bringer/storefront-admin/internal/pkg/apperr"
	"github.com/light-bringer/storefront-admin/internal/pkg/clock"
	"github.com/light-bringer/storefront-admin/internal/pkg/committer"
	"github.com/light-bringer/storefront-admin/internal/pkg/outbox"
)

// Request names the products to delete.
type Request struct {
	UserID string
	IDs    []string
}

// Interactor handles the batch delete use case.
type Interactor struct {
	repo      contracts.ProductRepository
	outbox    outbox.Writer
	committer committer.Applier
	clock     clock.Clock
}

// NewInteractor creates a new delete products interactor.
func NewInteractor(
	repo contracts.ProductRepository,
	outbox outbox.Writer,
	committer committer.Applier,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		repo:      repo,
		outbox:    outbox,
		committer: committer,
		clock:     clock,
	}
}

// Execute deletes the caller's products among req.IDs and returns how many
// rows were removed. Ids that are missing or owned by someone else are skipped.
func (i *Interactor) Execute(ctx context.Context, req *Request) (int, error) {
	if len(req.IDs) == 0 {
		return 0, domain.ErrNoProductIDs
	}

	var deleted int
	err := i.committer.ApplyInTransaction(ctx, func(ctx context.Context, txn committer.Txn) (*committer.CommitPlan, error) {
		ids, err := i.repo.OwnedIDs(ctx, txn, req.UserID, req.IDs)
		if err != nil {
			return nil, err
		}

		now := i.clock.Now()
		plan := committer.NewPlan()
		events := make([]outbox.Event, 0, len(ids))
		for _, id := range ids {
			plan.Add(i.repo.DeleteMut(id))
			events = append(events, &domain.ProductDeletedEvent{
				ProductID: id,
				UserID:    req.UserID,
				DeletedAt: now,
			})
		}
		muts, err := i.outbox.Mutations(events...)
		if err != nil {
			return nil, err
		}
		plan.AddMultiple(muts)

		deleted = len(ids)
		return plan, nil
	})
	if err != nil {
		return 0, apperr.OrStore(err)
	}

	return deleted, nil
}
