package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/storefront-admin/internal/app/product/contracts"
	"github.com/light-bringer/storefront-admin/internal/models/m_product"
	"github.com/light-bringer/storefront-admin/internal/pkg/apperr"
	"github.com/light-bringer/storefront-admin/internal/pkg/query"
)

// ReadModelImpl implements ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{client: client}
}

// ListStatement is the listing query for userID.
func ListStatement(userID string) spanner.Statement {
	return query.From(m_product.TableName).
		Select(m_product.AllColumns...).
		Where(query.Eq(m_product.UserID, userID)).
		OrderBy(m_product.CreatedAt, query.Desc).
		Build()
}

// ListByUser returns userID's products, newest first.
func (rm *ReadModelImpl) ListByUser(ctx context.Context, userID string) ([]*contracts.ProductDTO, error) {
	iter := rm.client.Single().Query(ctx, ListStatement(userID))
	defer iter.Stop()

	products := make([]*contracts.ProductDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, apperr.Store(err)
		}

		var data m_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse product: %w", err)
		}
		products = append(products, contracts.NewProductDTO(dataToDomain(&data)))
	}
	return products, nil
}
