package update_product

import (
	"context"

	"github.com/light-bringer/storefront-admin/internal/app/product/contracts"
	"github.com/light-bringer/storefront-admin/internal/app/product/domain"
	"github.com/light-bringer/storefront-admin/internal/pkg/apperr"
	"github.com/light-bringer/storefront-admin/internal/pkg/clock"
	"github.com/light-bringer/storefront-admin/internal/pkg/committer"
	"github.com/light-bringer/storefront-admin/internal/pkg/imagehost"
	"github.com/light-bringer/storefront-admin/internal/pkg/outbox"
)

// Request contains the data to update a product.
type Request struct {
	UserID    string
	ProductID string
	Fields    domain.Fields
	// ExistingImages is the caller's keep list. nil keeps every stored image.
	ExistingImages []string
	Images         [][]byte
}

// Interactor handles the update product use case.
type Interactor struct {
	repo        contracts.ProductRepository
	outbox      outbox.Writer
	committer   committer.Applier
	uploader    imagehost.Uploader
	clock       clock.Clock
	concurrency int
}

// NewInteractor creates a new update product interactor.
func NewInteractor(
	repo contracts.ProductRepository,
	outbox outbox.Writer,
	committer committer.Applier,
	uploader imagehost.Uploader,
	clock clock.Clock,
	concurrency int,
) *Interactor {
	return &Interactor{
		repo:        repo,
		outbox:      outbox,
		committer:   committer,
		uploader:    uploader,
		clock:       clock,
		concurrency: concurrency,
	}
}

// Execute uploads any new images, then merges the request into the stored
// product inside one read-write transaction.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*contracts.ProductDTO, error) {
	if req.ProductID == "" {
		return nil, domain.ErrMissingProductID
	}
	if len(req.Images) > domain.MaxImages {
		return nil, domain.ErrTooManyImages
	}

	urls, err := imagehost.UploadAll(ctx, i.uploader, imagehost.ProductFolder(req.UserID), req.Images, i.concurrency)
	if err != nil {
		return nil, err
	}

	var updated *domain.Product
	err = i.committer.ApplyInTransaction(ctx, func(ctx context.Context, txn committer.Txn) (*committer.CommitPlan, error) {
		product, err := i.repo.GetOwned(ctx, txn, req.UserID, req.ProductID)
		if err != nil {
			return nil, err
		}

		if err := product.Apply(req.Fields); err != nil {
			return nil, err
		}
		product.MergeImages(req.ExistingImages, urls)
		product.MarkUpdated(i.clock.Now())

		plan := committer.NewPlan()
		if mut := i.repo.UpdateMut(product); mut != nil {
			plan.Add(mut)
		}
		muts, err := i.outbox.Mutations(outbox.Events(product.DomainEvents())...)
		if err != nil {
			return nil, err
		}
		plan.AddMultiple(muts)
		product.ClearEvents()

		updated = product
		return plan, nil
	})
	if err != nil {
		return nil, apperr.OrStore(err)
	}

	return contracts.NewProductDTO(updated), nil
}
