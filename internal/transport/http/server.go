// Package http exposes the admin use cases as a JSON API under /api/ecommerce.
package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/light-bringer/storefront-admin/internal/app/account/queries/get_profile"
	"github.com/light-bringer/storefront-admin/internal/app/account/usecases/update_profile"
	"github.com/light-bringer/storefront-admin/internal/app/coupon/queries/list_coupons"
	"github.com/light-bringer/storefront-admin/internal/app/coupon/usecases/apply_coupon"
	"github.com/light-bringer/storefront-admin/internal/app/coupon/usecases/create_coupon"
	"github.com/light-bringer/storefront-admin/internal/app/coupon/usecases/delete_coupon"
	"github.com/light-bringer/storefront-admin/internal/app/events/queries/list_events"
	"github.com/light-bringer/storefront-admin/internal/app/message/queries/list_messages"
	"github.com/light-bringer/storefront-admin/internal/app/message/usecases/add_message"
	"github.com/light-bringer/storefront-admin/internal/app/message/usecases/delete_message"
	"github.com/light-bringer/storefront-admin/internal/app/message/usecases/mark_read"
	"github.com/light-bringer/storefront-admin/internal/app/newsletter/queries/list_subscribers"
	"github.com/light-bringer/storefront-admin/internal/app/newsletter/usecases/subscribe"
	"github.com/light-bringer/storefront-admin/internal/app/product/queries/list_products"
	"github.com/light-bringer/storefront-admin/internal/app/product/usecases/create_product"
	"github.com/light-bringer/storefront-admin/internal/app/product/usecases/delete_products"
	"github.com/light-bringer/storefront-admin/internal/app/product/usecases/update_product"
	"github.com/light-bringer/storefront-admin/internal/auth"
)

// BasePath prefixes every API route.
const BasePath = "/api/ecommerce"

// Commands holds the write use cases.
type Commands struct {
	CreateProduct  *create_product.Interactor
	UpdateProduct  *update_product.Interactor
	DeleteProducts *delete_products.Interactor
	CreateCoupon   *create_coupon.Interactor
	ApplyCoupon    *apply_coupon.Interactor
	DeleteCoupon   *delete_coupon.Interactor
	AddMessage     *add_message.Interactor
	MarkRead       *mark_read.Interactor
	DeleteMessage  *delete_message.Interactor
	Subscribe      *subscribe.Interactor
	UpdateProfile  *update_profile.Interactor
}

// Queries holds the read use cases.
type Queries struct {
	ListProducts    *list_products.Query
	ListCoupons     *list_coupons.Query
	ListMessages    *list_messages.Query
	ListSubscribers *list_subscribers.Query
	GetProfile      *get_profile.Query
	ListEvents      *list_events.Query
}

// Options configures the router.
type Options struct {
	// AdminUserID owns the public product listing.
	AdminUserID  string
	AllowOrigins []string
	BodyLimit    string
	// RateLimit guards the public endpoints. nil disables limiting.
	RateLimit middleware.RateLimiterStore
}

// Server maps routes to use cases.
type Server struct {
	commands Commands
	queries  Queries
	verifier auth.Verifier
	opts     Options
	logger   zerolog.Logger
}

// NewServer creates a new Server.
func NewServer(commands Commands, queries Queries, verifier auth.Verifier, opts Options, logger zerolog.Logger) *Server {
	return &Server{
		commands: commands,
		queries:  queries,
		verifier: verifier,
		opts:     opts,
		logger:   logger,
	}
}

// Echo builds the router with middleware and every route registered.
func (s *Server) Echo() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			ev := s.logger.Info()
			if v.Error != nil {
				ev = s.logger.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: s.opts.AllowOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	if s.opts.BodyLimit != "" {
		e.Use(middleware.BodyLimit(s.opts.BodyLimit))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "ok",
			"service": "storefront-admin",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := e.Group(BasePath)
	authed := s.RequireAuth()
	limited := s.rateLimit()

	api.GET("/products", s.listProducts, limited...)
	api.POST("/products/add-product", s.createProduct, authed)
	api.PUT("/products/:id", s.updateProduct, authed)
	api.DELETE("/products", s.deleteProducts, authed)

	api.POST("/add-coupon", s.createCoupon, authed)
	api.GET("/get-coupons", s.listCoupons, authed)
	api.POST("/apply-coupon", s.applyCoupon, authed)
	api.DELETE("/delete-coupon", s.deleteCoupon, authed)

	api.POST("/add-message", s.addMessage, authed)
	api.GET("/get-messages", s.listMessages, authed)
	api.PUT("/read-message", s.markRead, authed)
	api.DELETE("/delete-message/:messageId", s.deleteMessage, authed)

	api.POST("/addnewsletter", s.subscribe, limited...)
	api.GET("/emails", s.listSubscribers, authed)

	api.PUT("/account-settings", s.updateProfile, authed)
	api.GET("/account-settings", s.getProfile, authed)

	api.GET("/events", s.listEvents, authed)

	return e
}
