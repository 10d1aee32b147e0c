package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/storefront-admin/internal/app/coupon/domain"
	"github.com/light-bringer/storefront-admin/internal/pkg/committer"
)

// CouponRepository persists coupons. Writes are returned as mutations.
type CouponRepository interface {
	InsertMut(coupon *domain.Coupon) *spanner.Mutation

	// UsesCountMut writes the coupon's current uses_count.
	UsesCountMut(coupon *domain.Coupon) *spanner.Mutation

	DeleteMut(couponID string) *spanner.Mutation

	// GetByCode loads the user's coupon with the normalized code.
	// A missing coupon is domain.ErrCouponNotFound.
	GetByCode(ctx context.Context, txn committer.Txn, userID, code string) (*domain.Coupon, error)

	// GetByID loads the user's coupon by id. A missing or foreign coupon is
	// domain.ErrCouponNotFound.
	GetByID(ctx context.Context, txn committer.Txn, userID, couponID string) (*domain.Coupon, error)
}
