package domain

import "github.com/light-bringer/storefront-admin/internal/pkg/apperr"

var (
	ErrMissingFields    = apperr.Validation("Email and message are required")
	ErrMissingMessageID = apperr.Validation("messageId is required")

	ErrMessageNotFoundOrUnauthorized = apperr.New(apperr.ErrNotFoundOrUnauthorized, "Message not found or unauthorized")
	ErrUpdateFailed                  = apperr.New(apperr.ErrNotFoundOrUnauthorized, "Update failed or unauthorized")
	ErrDeleteFailed                  = apperr.New(apperr.ErrNotFoundOrUnauthorized, "Delete failed or unauthorized")
)
