package domain

import "github.com/light-bringer/storefront-admin/internal/pkg/apperr"

var (
	ErrMissingFields       = apperr.Validation("code, discount_type, and discount_value are required")
	ErrInvalidDiscountType = apperr.Validation("discount_type must be 'fixed' or 'percentage'")
	ErrInvalidMaxUses      = apperr.Validation("max_uses must not be negative")
	ErrInvalidWindow       = apperr.Validation("valid_until must not be before valid_from")
	ErrDuplicateCode       = apperr.Validation("Coupon code already exists")
	ErrMissingCode         = apperr.Validation("Coupon code is required")
	ErrInvalidCartTotal    = apperr.Validation("cart_total must be a number greater than or equal to 0")
	ErrMissingIDOrCode     = apperr.Validation("Coupon id or code is required to delete")
	ErrCouponNotFound      = apperr.New(apperr.ErrNotFound, "Coupon not found")
)

// Redemption failures, checked in this order.
var (
	ErrInvalidCode   = apperr.New(apperr.ErrNotFound, "Invalid coupon code")
	ErrNotActive     = apperr.Validation("Coupon is not active")
	ErrNotYetValid   = apperr.Validation("Coupon is not yet valid")
	ErrExpired       = apperr.Validation("Coupon has expired")
	ErrUsageExceeded = apperr.Validation("Coupon usage limit reached")
)
