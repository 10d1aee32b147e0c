package domain

import "github.com/light-bringer/storefront-admin/internal/pkg/apperr"

var (
	ErrEmptyName                     = apperr.Validation("product_name is required")
	ErrInvalidPrice                  = apperr.Validation("product_price must be a number greater than or equal to 0")
	ErrInvalidSalesPrice             = apperr.Validation("sales_price must be a number greater than or equal to 0")
	ErrNoProductIDs                  = apperr.Validation("No product IDs provided")
	ErrMissingProductID              = apperr.Validation("Product ID required")
	ErrTooManyImages                 = apperr.Validation("at most 6 product images are allowed")
	ErrProductNotFoundOrUnauthorized = apperr.New(apperr.ErrNotFoundOrUnauthorized, "Product not found or unauthorized")
)
