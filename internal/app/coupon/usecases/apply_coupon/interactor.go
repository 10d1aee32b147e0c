package apply_coupon

import (
	"context"
	"errors"

	"github.com/light-bringer/storefront-admin/internal/app/coupon/contracts"
	"github.com/light-bringer/storefront-admin/internal/app/coupon/domain"
	"github.com/light-bringer/storefront-admin/internal/pkg/apperr"
	"github.com/light-bringer/storefront-admin/internal/pkg/clock"
	"github.com/light-bringer/storefront-admin/internal/pkg/committer"
	"github.com/light-bringer/storefront-admin/internal/pkg/money"
	"github.com/light-bringer/storefront-admin/internal/pkg/outbox"
)

// Request names the coupon to apply and the optional cart total.
type Request struct {
	UserID    string
	Code      string
	CartTotal *money.Money
}

// Result is a successful redemption. Discount and FinalTotal are nil when
// the request had no cart total.
type Result struct {
	Code          string
	DiscountType  string
	DiscountValue *money.Money
	Discount      *money.Money
	FinalTotal    *money.Money
	UsesCount     int64
}

// Interactor handles the apply coupon use case.
type Interactor struct {
	repo      contracts.CouponRepository
	outbox    outbox.Writer
	committer committer.Applier
	clock     clock.Clock
}

// NewInteractor creates a new apply coupon interactor.
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

// Execute looks up, validates and counts the coupon in one read-write
// transaction, so concurrent redemptions cannot overrun max_uses.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	if domain.NormalizeCode(req.Code) == "" {
		return nil, domain.ErrMissingCode
	}
	if req.CartTotal != nil && req.CartTotal.IsNegative() {
		return nil, domain.ErrInvalidCartTotal
	}

	var result *Result
	err := i.committer.ApplyInTransaction(ctx, func(ctx context.Context, txn committer.Txn) (*committer.CommitPlan, error) {
		coupon, err := i.repo.GetByCode(ctx, txn, req.UserID, req.Code)
		if errors.Is(err, domain.ErrCouponNotFound) {
			return nil, domain.ErrInvalidCode
		}
		if err != nil {
			return nil, err
		}

		quote, err := coupon.Redeem(i.clock.Now(), req.CartTotal)
		if err != nil {
			return nil, err
		}

		plan := committer.NewPlan()
		plan.Add(i.repo.UsesCountMut(coupon))
		muts, err := i.outbox.Mutations(outbox.Events(coupon.DomainEvents())...)
		if err != nil {
			return nil, err
		}
		plan.AddMultiple(muts)
		coupon.ClearEvents()

		result = &Result{
			Code:          coupon.Code(),
			DiscountType:  coupon.DiscountType(),
			DiscountValue: coupon.DiscountValue(),
			Discount:      quote.Discount,
			FinalTotal:    quote.FinalTotal,
			UsesCount:     coupon.UsesCount(),
		}
		return plan, nil
	})
	if err != nil {
		return nil, apperr.OrStore(err)
	}
	return result, nil
}
