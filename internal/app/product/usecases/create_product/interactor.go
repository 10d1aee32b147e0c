package create_product

import (
	"context"

	"github.com/google/uuid"

	"github.com/light-bringer/storefront-admin/internal/app/product/contracts"
	"github.com/light-bringer/storefront-admin/internal/app/product/domain"
	"github.com/light-bringer/storefront-admin/internal/pkg/apperr"
	"github.com/light-bringer/storefront-admin/internal/pkg/clock"
	"github.com/light-bringer/storefront-admin/internal/pkg/committer"
	"github.com/light-bringer/storefront-admin/internal/pkg/imagehost"
	"github.com/light-bringer/storefront-admin/internal/pkg/outbox"
)

// Request contains the data needed to create a product.
type Request struct {
	UserID string
	Fields domain.Fields
	Images [][]byte
}

// Interactor handles the create product use case.
type Interactor struct {
	repo        contracts.ProductRepository
	outbox      outbox.Writer
	committer   committer.Applier
	uploader    imagehost.Uploader
	clock       clock.Clock
	concurrency int
	newID       func() string
}

// NewInteractor creates a new create product interactor.
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
		newID:       func() string { return uuid.New().String() },
	}
}

// Execute uploads the images, then inserts the product with its created event.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*contracts.ProductDTO, error) {
	if len(req.Images) > domain.MaxImages {
		return nil, domain.ErrTooManyImages
	}
	// Reject bad input before anything reaches the image host.
	if req.Fields.Name == nil || *req.Fields.Name == "" {
		return nil, domain.ErrEmptyName
	}
	if req.Fields.Price == nil || req.Fields.Price.IsNegative() {
		return nil, domain.ErrInvalidPrice
	}

	urls, err := imagehost.UploadAll(ctx, i.uploader, imagehost.ProductFolder(req.UserID), req.Images, i.concurrency)
	if err != nil {
		return nil, err
	}

	product, err := domain.NewProduct(i.newID(), req.UserID, req.Fields, urls, i.clock.Now())
	if err != nil {
		return nil, err
	}
	defer product.ClearEvents()

	plan := committer.NewPlan()
	plan.Add(i.repo.InsertMut(product))

	muts, err := i.outbox.Mutations(outbox.Events(product.DomainEvents())...)
	if err != nil {
		return nil, err
	}
	plan.AddMultiple(muts)

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, apperr.OrStore(err)
	}

	return contracts.NewProductDTO(product), nil
}
