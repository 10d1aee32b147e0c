package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/light-bringer/storefront-admin/internal/pkg/apperr"
)

// mapError converts an error kind to a status and caller-facing message.
// The message of an unexpected error is never exposed.
func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, apperr.ErrMissingHeader):
		return http.StatusUnauthorized, "Missing authorization header"
	case errors.Is(err, apperr.ErrInvalidToken):
		return http.StatusUnauthorized, "Invalid or expired token"
	case errors.Is(err, apperr.ErrNotFoundOrUnauthorized):
		return http.StatusForbidden, apperr.Message(err)
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound, apperr.Message(err)
	case errors.Is(err, apperr.ErrValidation), errors.Is(err, apperr.ErrStore):
		return http.StatusBadRequest, apperr.Message(err)
	case errors.Is(err, apperr.ErrUploadFailed):
		return http.StatusInternalServerError, "Image upload failed"
	default:
		return http.StatusInternalServerError, "Server error"
	}
}

// fail writes {"error": message}.
func (s *Server) fail(c echo.Context, err error) error {
	status, msg := mapError(err)
	s.logFailure(c, status, err)
	return c.JSON(status, map[string]string{"error": msg})
}

// failMessage writes {"success": false, "message": message} for the message routes.
func (s *Server) failMessage(c echo.Context, err error) error {
	status, msg := mapError(err)
	s.logFailure(c, status, err)
	if status == http.StatusUnauthorized || status == http.StatusInternalServerError {
		return c.JSON(status, map[string]string{"error": msg})
	}
	return c.JSON(status, map[string]interface{}{"success": false, "message": msg})
}

func (s *Server) logFailure(c echo.Context, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error().Err(err).Str("route", c.Path()).Msg("request failed")
		return
	}
	s.logger.Debug().Err(err).Str("route", c.Path()).Int("status", status).Msg("request rejected")
}
