package delete_coupon

import (
	"context"

	"github.com/light-bringer/storefront-admin/internal/app/coupon/contracts"
	"github.com/light-bringer/storefront-admin/internal/app/coupon/domain"
	"github.com/light-bringer/storefront-admin/internal/pkg/apperr"
	"github.com/light-bringer/storefront-admin/internal/pkg/clock"
	"github.com/light-bringer/storefront-admin/internal/pkg/committer"
	"github.com/light-bringer/storefront-admin/internal/pkg/outbox"
)

// Request names the coupon by id, or by code when id is empty.
type Request struct {
	UserID string
	ID     string
	Code   string
}

// Deleted summarizes the removed coupon.
type Deleted struct {
	ID            string  `json:"id"`
	Code          string  `json:"code"`
	DiscountType  string  `json:"discount_type"`
	DiscountValue float64 `json:"discount_value"`
}

// Interactor handles the delete coupon use case.
type Interactor struct {
	repo      contracts.CouponRepository
	outbox    outbox.Writer
	committer committer.Applier
	clock     clock.Clock
}

// NewInteractor creates a new delete coupon interactor.
func NewInteractor(
	repo contracts.CouponRepository,
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

// Execute removes the caller's coupon and returns what was deleted.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Deleted, error) {
	if req.ID == "" && domain.NormalizeCode(req.Code) == "" {
		return nil, domain.ErrMissingIDOrCode
	}

	var deleted *Deleted
	err := i.committer.ApplyInTransaction(ctx, func(ctx context.Context, txn committer.Txn) (*committer.CommitPlan, error) {
		var (
			coupon *domain.Coupon
			err    error
		)
		if req.ID != "" {
			coupon, err = i.repo.GetByID(ctx, txn, req.UserID, req.ID)
		} else {
			coupon, err = i.repo.GetByCode(ctx, txn, req.UserID, req.Code)
		}
		if err != nil {
			return nil, err
		}

		coupon.MarkDeleted(i.clock.Now())

		plan := committer.NewPlan()
		plan.Add(i.repo.DeleteMut(coupon.ID()))
		muts, err := i.outbox.Mutations(outbox.Events(coupon.DomainEvents())...)
		if err != nil {
			return nil, err
		}
		plan.AddMultiple(muts)
		coupon.ClearEvents()

		deleted = &Deleted{
			ID:            coupon.ID(),
			Code:          coupon.Code(),
			DiscountType:  coupon.DiscountType(),
			DiscountValue: coupon.DiscountValue().Float64(),
		}
		return plan, nil
	})
	if err != nil {
		return nil, apperr.OrStore(err)
	}
	return deleted, nil
}
