package domain

import "github.com/light-bringer/storefront-admin/internal/pkg/apperr"

var (
	ErrTooManyImages   = apperr.Validation("only one profile_image may be uploaded")
	ErrProfileNotFound = apperr.New(apperr.ErrNotFound, "Profile not found")
)
