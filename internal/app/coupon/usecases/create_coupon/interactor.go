package create_coupon

import (
	"context"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/storefront-admin/internal/app/coupon/contracts"
	"github.com/light-bringer/storefront-admin/internal/app/coupon/domain"
	"github.com/light-bringer/storefront-admin/internal/pkg/apperr"
	"github.com/light-bringer/storefront-admin/internal/pkg/clock"
	"github.com/light-bringer/storefront-admin/internal/pkg/committer"
	"github.com/light-bringer/storefront-admin/internal/pkg/outbox"
)

// Request contains the data needed to create a coupon.
type Request struct {
	UserID string
	Input  domain.Input
}

// Interactor handles the create coupon use case.
type Interactor struct {
	repo      contracts.CouponRepository
	outbox    outbox.Writer
	committer committer.Applier
	clock     clock.Clock
	newID     func() string
}

// NewInteractor creates a new create coupon interactor.
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
		newID:     func() string { return uuid.New().String() },
	}
}

// Execute inserts the coupon. A code the user already has is ErrDuplicateCode.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*contracts.CouponDTO, error) {
	coupon, err := domain.NewCoupon(i.newID(), req.UserID, req.Input, i.clock.Now())
	if err != nil {
		return nil, err
	}
	defer coupon.ClearEvents()

	plan := committer.NewPlan()
	plan.Add(i.repo.InsertMut(coupon))

	muts, err := i.outbox.Mutations(outbox.Events(coupon.DomainEvents())...)
	if err != nil {
		return nil, err
	}
	plan.AddMultiple(muts)

	if err := i.committer.Apply(ctx, plan); err != nil {
		if spanner.ErrCode(err) == codes.AlreadyExists {
			return nil, domain.ErrDuplicateCode
		}
		return nil, apperr.OrStore(err)
	}

	return contracts.NewCouponDTO(coupon), nil
}
