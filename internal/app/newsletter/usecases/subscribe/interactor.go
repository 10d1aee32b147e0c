package subscribe

import (
	"context"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/storefront-admin/internal/app/newsletter/contracts"
	"github.com/light-bringer/storefront-admin/internal/app/newsletter/domain"
	"github.com/light-bringer/storefront-admin/internal/pkg/apperr"
	"github.com/light-bringer/storefront-admin/internal/pkg/clock"
	"github.com/light-bringer/storefront-admin/internal/pkg/committer"
	"github.com/light-bringer/storefront-admin/internal/pkg/outbox"
)

// Request is a public newsletter signup.
type Request struct {
	Email string
	Name  *string
}

// Interactor handles the subscribe use case. Subscribers are owned by adminID.
type Interactor struct {
	repo      contracts.SubscriberRepository
	outbox    outbox.Writer
	committer committer.Applier
	clock     clock.Clock
	adminID   string
	newID     func() string
}

// NewInteractor creates a new subscribe interactor.
func NewInteractor(
	repo contracts.SubscriberRepository,
	outbox outbox.Writer,
	committer committer.Applier,
	clock clock.Clock,
	adminID string,
) *Interactor {
	return &Interactor{
		repo:      repo,
		outbox:    outbox,
		committer: committer,
		clock:     clock,
		adminID:   adminID,
		newID:     func() string { return uuid.New().String() },
	}
}

// Execute checks the email is new and inserts the subscriber. The unique
// index on email catches a signup that races past the check.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*contracts.SubscriberDTO, error) {
	sub, err := domain.NewSubscriber(i.newID(), i.adminID, req.Email, req.Name, i.clock.Now())
	if err != nil {
		return nil, err
	}

	err = i.committer.ApplyInTransaction(ctx, func(ctx context.Context, txn committer.Txn) (*committer.CommitPlan, error) {
		exists, err := i.repo.EmailExists(ctx, txn, sub.Email())
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrAlreadySubscribed
		}

		plan := committer.NewPlan()
		plan.Add(i.repo.InsertMut(sub))
		muts, err := i.outbox.Mutations(sub.Event())
		if err != nil {
			return nil, err
		}
		plan.AddMultiple(muts)
		return plan, nil
	})
	if err != nil {
		if spanner.ErrCode(err) == codes.AlreadyExists {
			return nil, domain.ErrAlreadySubscribed
		}
		return nil, apperr.OrStore(err)
	}
	return contracts.NewSubscriberDTO(sub), nil
}
