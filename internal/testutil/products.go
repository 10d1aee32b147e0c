package testutil

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/storefront-admin/internal/app/product/domain"
	"github.com/light-bringer/storefront-admin/internal/pkg/committer"
)

// ProductRepo is an in-memory contracts.ProductRepository. Mutations are
// placeholders; tests inspect the aggregates passed to them instead.
type ProductRepo struct {
	Stored   map[string]domain.Snapshot
	Inserted []*domain.Product
	Updated  []*domain.Product
	Deleted  []string
}

// NewProductRepo creates a repo holding the given snapshots.
func NewProductRepo(snaps ...domain.Snapshot) *ProductRepo {
	r := &ProductRepo{Stored: make(map[string]domain.Snapshot)}
	for _, s := range snaps {
		r.Stored[s.ID] = s
	}
	return r
}

func (r *ProductRepo) InsertMut(product *domain.Product) *spanner.Mutation {
	r.Inserted = append(r.Inserted, product)
	return spanner.Insert("products", []string{"id"}, []interface{}{product.ID()})
}

func (r *ProductRepo) UpdateMut(product *domain.Product) *spanner.Mutation {
	if !product.Changes().HasChanges() {
		return nil
	}
	r.Updated = append(r.Updated, product)
	return spanner.Update("products", []string{"id"}, []interface{}{product.ID()})
}

func (r *ProductRepo) DeleteMut(productID string) *spanner.Mutation {
	r.Deleted = append(r.Deleted, productID)
	return spanner.Delete("products", spanner.Key{productID})
}

func (r *ProductRepo) GetOwned(ctx context.Context, txn committer.Txn, userID, productID string) (*domain.Product, error) {
	snap, ok := r.Stored[productID]
	if !ok || snap.UserID != userID {
		return nil, domain.ErrProductNotFoundOrUnauthorized
	}
	return domain.ReconstructProduct(snap), nil
}

func (r *ProductRepo) OwnedIDs(ctx context.Context, txn committer.Txn, userID string, ids []string) ([]string, error) {
	owned := make([]string, 0, len(ids))
	for _, id := range ids {
		if snap, ok := r.Stored[id]; ok && snap.UserID == userID {
			owned = append(owned, id)
		}
	}
	return owned, nil
}
