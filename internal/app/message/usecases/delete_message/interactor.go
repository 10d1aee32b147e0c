package delete_message

import (
	"context"
	"errors"

	"github.com/light-bringer/storefront-admin/internal/app/message/contracts"
	"github.com/light-bringer/storefront-admin/internal/app/message/domain"
	"github.com/light-bringer/storefront-admin/internal/pkg/apperr"
	"github.com/light-bringer/storefront-admin/internal/pkg/clock"
	"github.com/light-bringer/storefront-admin/internal/pkg/committer"
	"github.com/light-bringer/storefront-admin/internal/pkg/outbox"
)

// Request names the message to delete.
type Request struct {
	UserID    string
	MessageID string
}

// Interactor handles the delete message use case.
type Interactor struct {
	repo      contracts.MessageRepository
	outbox    outbox.Writer
	committer committer.Applier
	clock     clock.Clock
}

// NewInteractor creates a new delete message interactor.
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
	}
}

// Execute deletes the caller's message and returns the removed row.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*contracts.MessageDTO, error) {
	if req.MessageID == "" {
		return nil, domain.ErrMissingMessageID
	}

	var deleted *domain.Message
	err := i.committer.ApplyInTransaction(ctx, func(ctx context.Context, txn committer.Txn) (*committer.CommitPlan, error) {
		message, err := i.repo.GetOwned(ctx, txn, req.UserID, req.MessageID)
		if err != nil {
			return nil, err
		}
		message.MarkDeleted(i.clock.Now())

		plan := committer.NewPlan()
		plan.Add(i.repo.DeleteMut(message.ID()))
		muts, err := i.outbox.Mutations(outbox.Events(message.DomainEvents())...)
		if err != nil {
			return nil, err
		}
		plan.AddMultiple(muts)
		message.ClearEvents()

		deleted = message
		return plan, nil
	})
	if errors.Is(err, domain.ErrMessageNotFoundOrUnauthorized) {
		return nil, domain.ErrDeleteFailed
	}
	if err != nil {
		return nil, apperr.OrStore(err)
	}
	return contracts.NewMessageDTO(deleted), nil
}
