package domain

import "github.com/light-bringer/storefront-admin/internal/pkg/apperr"

var (
	ErrEmailRequired     = apperr.Validation("Email is required")
	ErrAlreadySubscribed = apperr.Validation("Email already subscribed")
)
