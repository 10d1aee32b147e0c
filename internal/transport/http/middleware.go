package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/light-bringer/storefront-admin/internal/auth"
)

const identityKey = "identity"

// RequireAuth validates the bearer token and stores the caller's identity on
// the context. The handler never runs for an unauthenticated request.
func (s *Server) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, err := auth.Authenticate(c.Request().Context(), s.verifier, c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				s.logger.Warn().Err(err).Str("path", c.Path()).Msg("authentication failed")
				return s.fail(c, err)
			}
			c.Set(identityKey, id)
			return next(c)
		}
	}
}

func identity(c echo.Context) *auth.Identity {
	id, _ := c.Get(identityKey).(*auth.Identity)
	return id
}

func (s *Server) rateLimit() []echo.MiddlewareFunc {
	if s.opts.RateLimit == nil {
		return nil
	}
	deny := func(c echo.Context, _ string, _ error) error {
		return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
	}
	return []echo.MiddlewareFunc{middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: s.opts.RateLimit,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			s.logger.Error().Err(err).Str("route", c.Path()).Msg("rate limiter failed")
			return deny(c, "", err)
		},
		DenyHandler: deny,
	})}
}
