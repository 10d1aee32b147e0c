package mark_read

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

// Request names the message to mark read.
type Request struct {
	UserID    string
	MessageID string
}

// Interactor handles the mark-as-read use case.
type Interactor struct {
	repo      contracts.MessageRepository
	outbox    outbox.Writer
	committer committer.Applier
	clock     clock.Clock
}

// NewInteractor creates a new mark read interactor.
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

// Execute flips the caller's message to read. Marking a read message again
// succeeds without writing.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*contracts.MessageDTO, error) {
	if req.MessageID == "" {
		return nil, domain.ErrMissingMessageID
	}

	var updated *domain.Message
	err := i.committer.ApplyInTransaction(ctx, func(ctx context.Context, txn committer.Txn) (*committer.CommitPlan, error) {
		message, err := i.repo.GetOwned(ctx, txn, req.UserID, req.MessageID)
		if err != nil {
			return nil, err
		}
		updated = message
		if !message.MarkRead(i.clock.Now()) {
			return nil, nil
		}

		plan := committer.NewPlan()
		plan.Add(i.repo.MarkReadMut(message))
		muts, err := i.outbox.Mutations(outbox.Events(message.DomainEvents())...)
		if err != nil {
			return nil, err
		}
		plan.AddMultiple(muts)
		message.ClearEvents()
		return plan, nil
	})
	if errors.Is(err, domain.ErrMessageNotFoundOrUnauthorized) {
		return nil, domain.ErrUpdateFailed
	}
	if err != nil {
		return nil, apperr.OrStore(err)
	}
	return contracts.NewMessageDTO(updated), nil
}
