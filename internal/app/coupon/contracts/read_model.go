package contracts

import (
	"context"
	"time"

	"github.com/light-bringer/storefront-admin/internal/app/coupon/domain"
)

// CouponDTO is the JSON shape of a coupon row.
type CouponDTO struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	Code          string     `json:"code"`
	DiscountType  string     `json:"discount_type"`
	DiscountValue float64    `json:"discount_value"`
	MaxUses       *int64     `json:"max_uses"`
	UsesCount     int64      `json:"uses_count"`
	ValidFrom     time.Time  `json:"valid_from"`
	ValidUntil    *time.Time `json:"valid_until"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// NewCouponDTO renders an aggregate.
func NewCouponDTO(c *domain.Coupon) *CouponDTO {
	return &CouponDTO{
		ID:            c.ID(),
		UserID:        c.UserID(),
		Code:          c.Code(),
		DiscountType:  c.DiscountType(),
		DiscountValue: c.DiscountValue().Float64(),
		MaxUses:       c.MaxUses(),
		UsesCount:     c.UsesCount(),
		ValidFrom:     c.ValidFrom(),
		ValidUntil:    c.ValidUntil(),
		IsActive:      c.IsActive(),
		CreatedAt:     c.CreatedAt(),
		UpdatedAt:     c.UpdatedAt(),
	}
}

// ReadModel serves coupon listings.
type ReadModel interface {
	// ListByUser returns userID's coupons, newest first.
	ListByUser(ctx context.Context, userID string) ([]*CouponDTO, error)
}
