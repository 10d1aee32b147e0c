package add_message

import (
	"context"

	"github.com/google/uuid"

	"github.com/light-bringer/storefront-admin/internal/app/message/contracts"
	"github.com/light-bringer/storefront-admin/internal/app/message/domain"
	"github.com/light-bringer/storefront-admin/internal/pkg/apperr"
	"github.com/light-bringer/storefront-admin/internal/pkg/clock"
	"github.com/light-bringer/storefront-admin/internal/pkg/committer"
	"github.com/light-bringer/storefront-admin/internal/pkg/outbox"
)

// Request contains a submitted message for UserID's inbox.
type Request struct {
	UserID string
	Input  domain.Input
}

// Interactor handles the add message use case.
type Interactor struct {
	repo      contracts.MessageRepository
	outbox    outbox.Writer
	committer committer.Applier
	clock     clock.Clock
	newID     func() string
}

// NewInteractor creates a new add message interactor.
func NewInteractor(
	repo contracts.MessageRepository,
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

// Execute stores the message unread.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*contracts.MessageDTO, error) {
	message, err := domain.NewMessage(i.newID(), req.UserID, req.Input, i.clock.Now())
	if err != nil {
		return nil, err
	}
	defer message.ClearEvents()

	plan := committer.NewPlan()
	plan.Add(i.repo.InsertMut(message))
	muts, err := i.outbox.Mutations(outbox.Events(message.DomainEvents())...)
	if err != nil {
		return nil, err
	}
	plan.AddMultiple(muts)

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, apperr.OrStore(err)
	}
	return contracts.NewMessageDTO(message), nil
}
