package repo

import (
	"context"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/storefront-admin/internal/app/coupon/contracts"
	"github.com/light-bringer/storefront-admin/internal/models/m_coupon"
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

func (rm *ReadModelImpl) ListByUser(ctx context.Context, userID string) ([]*contracts.CouponDTO, error) {
	stmt := query.From(m_coupon.TableName).
		Select(m_coupon.AllColumns...).
		Where(query.Eq(m_coupon.UserID, userID)).
		OrderBy(m_coupon.CreatedAt, query.Desc).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	coupons := make([]*contracts.CouponDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, apperr.Store(err)
		}
		c, err := rowToDomain(row)
		if err != nil {
			return nil, err
		}
		coupons = append(coupons, contracts.NewCouponDTO(c))
	}
	return coupons, nil
}
