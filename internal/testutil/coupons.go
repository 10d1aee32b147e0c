package testutil

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/storefront-admin/internal/app/coupon/domain"
	"github.com/light-bringer/storefront-admin/internal/pkg/committer"
)

// CouponRepo is an in-memory contracts.CouponRepository. UsesCountMut and
// DeleteMut apply to Stored right away so tests can observe the outcome.
type CouponRepo struct {
	Stored   map[string]domain.Snapshot
	Inserted []*domain.Coupon
	Deleted  []string
}

// NewCouponRepo creates a repo holding the given snapshots.
func NewCouponRepo(snaps ...domain.Snapshot) *CouponRepo {
	r := &CouponRepo{Stored: make(map[string]domain.Snapshot)}
	for _, s := range snaps {
		r.Stored[s.ID] = s
	}
	return r
}

func (r *CouponRepo) InsertMut(c *domain.Coupon) *spanner.Mutation {
	r.Inserted = append(r.Inserted, c)
	return spanner.Insert("coupons", []string{"id"}, []interface{}{c.ID()})
}

func (r *CouponRepo) UsesCountMut(c *domain.Coupon) *spanner.Mutation {
	s := r.Stored[c.ID()]
	s.UsesCount = c.UsesCount()
	s.UpdatedAt = c.UpdatedAt()
	r.Stored[c.ID()] = s
	return spanner.Update("coupons", []string{"id", "uses_count"}, []interface{}{c.ID(), c.UsesCount()})
}

func (r *CouponRepo) DeleteMut(couponID string) *spanner.Mutation {
	r.Deleted = append(r.Deleted, couponID)
	delete(r.Stored, couponID)
	return spanner.Delete("coupons", spanner.Key{couponID})
}

func (r *CouponRepo) GetByCode(ctx context.Context, txn committer.Txn, userID, code string) (*domain.Coupon, error) {
	code = domain.NormalizeCode(code)
	for _, s := range r.Stored {
		if s.UserID == userID && s.Code == code {
			return domain.ReconstructCoupon(s), nil
		}
	}
	return nil, domain.ErrCouponNotFound
}

func (r *CouponRepo) GetByID(ctx context.Context, txn committer.Txn, userID, couponID string) (*domain.Coupon, error) {
	s, ok := r.Stored[couponID]
	if !ok || s.UserID != userID {
		return nil, domain.ErrCouponNotFound
	}
	return domain.ReconstructCoupon(s), nil
}
