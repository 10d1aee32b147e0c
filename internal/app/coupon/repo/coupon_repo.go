package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/storefront-admin/internal/app/coupon/contracts"
	"github.com/light-bringer/storefront-admin/internal/app/coupon/domain"
	"github.com/light-bringer/storefront-admin/internal/models/m_coupon"
	"github.com/light-bringer/storefront-admin/internal/pkg/apperr"
	"github.com/light-bringer/storefront-admin/internal/pkg/committer"
	"github.com/light-bringer/storefront-admin/internal/pkg/money"
	"github.com/light-bringer/storefront-admin/internal/pkg/query"
)

// CouponRepo implements CouponRepository for Spanner.
type CouponRepo struct {
	model *m_coupon.Model
}

// NewCouponRepo creates a new CouponRepo.
func NewCouponRepo() contracts.CouponRepository {
	return &CouponRepo{model: m_coupon.NewModel()}
}

func (r *CouponRepo) InsertMut(c *domain.Coupon) *spanner.Mutation {
	return r.model.InsertMut(domainToData(c))
}

func (r *CouponRepo) UsesCountMut(c *domain.Coupon) *spanner.Mutation {
	return r.model.UsesCountMut(c.ID(), c.UsesCount(), c.UpdatedAt())
}

func (r *CouponRepo) DeleteMut(couponID string) *spanner.Mutation {
	return r.model.DeleteMut(couponID)
}

func (r *CouponRepo) GetByCode(ctx context.Context, txn committer.Txn, userID, code string) (*domain.Coupon, error) {
	stmt := query.From(m_coupon.TableName).
		Select(m_coupon.AllColumns...).
		Where(query.Eq(m_coupon.UserID, userID)).
		Where(query.Eq(m_coupon.Code, domain.NormalizeCode(code))).
		Limit(1).
		Build()

	iter := txn.Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrCouponNotFound
	}
	if err != nil {
		return nil, apperr.Store(err)
	}
	return rowToDomain(row)
}

func (r *CouponRepo) GetByID(ctx context.Context, txn committer.Txn, userID, couponID string) (*domain.Coupon, error) {
	row, err := txn.ReadRow(ctx, m_coupon.TableName, spanner.Key{couponID}, m_coupon.AllColumns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrCouponNotFound
		}
		return nil, apperr.Store(err)
	}
	c, err := rowToDomain(row)
	if err != nil {
		return nil, err
	}
	if c.UserID() != userID {
		return nil, domain.ErrCouponNotFound
	}
	return c, nil
}

func rowToDomain(row *spanner.Row) (*domain.Coupon, error) {
	var data m_coupon.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse coupon: %w", err)
	}
	return dataToDomain(&data), nil
}

func domainToData(c *domain.Coupon) *m_coupon.Data {
	data := &m_coupon.Data{
		ID:            c.ID(),
		UserID:        c.UserID(),
		Code:          c.Code(),
		DiscountType:  c.DiscountType(),
		DiscountValue: *c.DiscountValue().Rat(),
		UsesCount:     c.UsesCount(),
		ValidFrom:     c.ValidFrom(),
		IsActive:      c.IsActive(),
		CreatedAt:     c.CreatedAt(),
		UpdatedAt:     c.UpdatedAt(),
	}
	if m := c.MaxUses(); m != nil {
		data.MaxUses = spanner.NullInt64{Int64: *m, Valid: true}
	}
	if u := c.ValidUntil(); u != nil {
		data.ValidUntil = spanner.NullTime{Time: *u, Valid: true}
	}
	return data
}

func dataToDomain(data *m_coupon.Data) *domain.Coupon {
	snap := domain.Snapshot{
		ID:            data.ID,
		UserID:        data.UserID,
		Code:          data.Code,
		DiscountType:  data.DiscountType,
		DiscountValue: money.FromRat(&data.DiscountValue),
		UsesCount:     data.UsesCount,
		ValidFrom:     data.ValidFrom,
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
	if data.MaxUses.Valid {
		n := data.MaxUses.Int64
		snap.MaxUses = &n
	}
	if data.ValidUntil.Valid {
		u := data.ValidUntil.Time
		snap.ValidUntil = &u
	}
	return domain.ReconstructCoupon(snap)
}
