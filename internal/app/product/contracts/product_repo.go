package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/storefront-admin/internal/app/product/domain"
	"github.com/light-bringer/storefront-admin/internal/pkg/committer"
)

// ProductRepository persists products. Writes are returned as mutations.
type ProductRepository interface {
	// InsertMut creates a mutation for a new product.
	InsertMut(product *domain.Product) *spanner.Mutation

	// UpdateMut creates a mutation for the product's dirty fields, or nil.
	UpdateMut(product *domain.Product) *spanner.Mutation

	// DeleteMut creates a mutation removing the product.
	DeleteMut(productID string) *spanner.Mutation

	// GetOwned loads a product inside txn. A missing product and one owned by
	// another user both return domain.ErrProductNotFoundOrUnauthorized.
	GetOwned(ctx context.Context, txn committer.Txn, userID, productID string) (*domain.Product, error)

	// OwnedIDs returns the subset of ids that exist and belong to userID.
	OwnedIDs(ctx context.Context, txn committer.Txn, userID string, ids []string) ([]string, error)
}
