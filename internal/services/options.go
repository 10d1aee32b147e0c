// Package services builds the dependency graph shared by the server commands.
package services

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"

	"github.com/light-bringer/storefront-admin/internal/app/account/queries/get_profile"
	accountrepo "github.com/light-bringer/storefront-admin/internal/app/account/repo"
	"github.com/light-bringer/storefront-admin/internal/app/account/usecases/update_profile"
	"github.com/light-bringer/storefront-admin/internal/app/coupon/queries/list_coupons"
	couponrepo "github.com/light-bringer/storefront-admin/internal/app/coupon/repo"
	"github.com/light-bringer/storefront-admin/internal/app/coupon/usecases/apply_coupon"
	"github.com/light-bringer/storefront-admin/internal/app/coupon/usecases/create_coupon"
	"github.com/light-bringer/storefront-admin/internal/app/coupon/usecases/delete_coupon"
	"github.com/light-bringer/storefront-admin/internal/app/events/queries/list_events"
	eventsrepo "github.com/light-bringer/storefront-admin/internal/app/events/repo"
	"github.com/light-bringer/storefront-admin/internal/app/message/queries/list_messages"
	messagerepo "github.com/light-bringer/storefront-admin/internal/app/message/repo"
	"github.com/light-bringer/storefront-admin/internal/app/message/usecases/add_message"
	"github.com/light-bringer/storefront-admin/internal/app/message/usecases/delete_message"
	"github.com/light-bringer/storefront-admin/internal/app/message/usecases/mark_read"
	"github.com/light-bringer/storefront-admin/internal/app/newsletter/queries/list_subscribers"
	newsletterrepo "github.com/light-bringer/storefront-admin/internal/app/newsletter/repo"
	"github.com/light-bringer/storefront-admin/internal/app/newsletter/usecases/subscribe"
	"github.com/light-bringer/storefront-admin/internal/app/product/queries/list_products"
	productrepo "github.com/light-bringer/storefront-admin/internal/app/product/repo"
	"github.com/light-bringer/storefront-admin/internal/app/product/usecases/create_product"
	"github.com/light-bringer/storefront-admin/internal/app/product/usecases/delete_products"
	"github.com/light-bringer/storefront-admin/internal/app/product/usecases/update_product"
	"github.com/light-bringer/storefront-admin/internal/auth"
	"github.com/light-bringer/storefront-admin/internal/config"
	"github.com/light-bringer/storefront-admin/internal/pkg/clock"
	"github.com/light-bringer/storefront-admin/internal/pkg/committer"
	"github.com/light-bringer/storefront-admin/internal/pkg/imagehost"
	"github.com/light-bringer/storefront-admin/internal/pkg/outbox"
	"github.com/light-bringer/storefront-admin/internal/pkg/ratelimit"
	httptransport "github.com/light-bringer/storefront-admin/internal/transport/http"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	RedisClient   *redis.Client
	Server        *httptransport.Server
}

// NewSpannerClient opens the row store, using a credentials file when one is configured.
func NewSpannerClient(ctx context.Context, cfg *config.Config) (*spanner.Client, error) {
	var opts []option.ClientOption
	if cfg.SpannerCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.SpannerCredentialsFile))
	}
	client, err := spanner.NewClient(ctx, cfg.SpannerDatabase, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}
	return client, nil
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*ServiceOptions, error) {
	// 1. Infrastructure clients
	spannerClient, err := NewSpannerClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	uploader, err := imagehost.NewCloudinaryUploader(cfg.CloudinaryURL, cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		spannerClient.Close()
		return nil, fmt.Errorf("failed to create image host client: %w", err)
	}

	clk := clock.NewRealClock()
	comm := committer.NewCommitter(spannerClient)
	outboxRepo := outbox.NewRepo()
	verifier := newVerifier(cfg, logger)

	svc := &ServiceOptions{SpannerClient: spannerClient}
	limiter := svc.newRateLimitStore(ctx, cfg, clk, logger)

	// 2. Repositories
	products := productrepo.NewProductRepo()
	coupons := couponrepo.NewCouponRepo()
	messages := messagerepo.NewMessageRepo()
	subscribers := newsletterrepo.NewSubscriberRepo()
	profiles := accountrepo.NewProfileRepo()

	// 3. Commands
	commands := httptransport.Commands{
		CreateProduct:  create_product.NewInteractor(products, outboxRepo, comm, uploader, clk, cfg.UploadConcurrency),
		UpdateProduct:  update_product.NewInteractor(products, outboxRepo, comm, uploader, clk, cfg.UploadConcurrency),
		DeleteProducts: delete_products.NewInteractor(products, outboxRepo, comm, clk),
		CreateCoupon:   create_coupon.NewInteractor(coupons, outboxRepo, comm, clk),
		ApplyCoupon:    apply_coupon.NewInteractor(coupons, outboxRepo, comm, clk),
		DeleteCoupon:   delete_coupon.NewInteractor(coupons, outboxRepo, comm, clk),
		AddMessage:     add_message.NewInteractor(messages, outboxRepo, comm, clk),
		MarkRead:       mark_read.NewInteractor(messages, outboxRepo, comm, clk),
		DeleteMessage:  delete_message.NewInteractor(messages, outboxRepo, comm, clk),
		Subscribe:      subscribe.NewInteractor(subscribers, outboxRepo, comm, clk, cfg.AdminUserID),
		UpdateProfile:  update_profile.NewInteractor(profiles, outboxRepo, comm, uploader, clk),
	}

	// 4. Queries
	queries := httptransport.Queries{
		ListProducts:    list_products.NewQuery(productrepo.NewReadModel(spannerClient)),
		ListCoupons:     list_coupons.NewQuery(couponrepo.NewReadModel(spannerClient)),
		ListMessages:    list_messages.NewQuery(messagerepo.NewReadModel(spannerClient)),
		ListSubscribers: list_subscribers.NewQuery(newsletterrepo.NewReadModel(spannerClient)),
		GetProfile:      get_profile.NewQuery(accountrepo.NewReadModel(spannerClient)),
		ListEvents:      list_events.NewQuery(eventsrepo.NewEventsReadModel(spannerClient)),
	}

	// 5. Transport
	svc.Server = httptransport.NewServer(commands, queries, verifier, httptransport.Options{
		AdminUserID:  cfg.AdminUserID,
		AllowOrigins: cfg.AllowOrigins,
		BodyLimit:    cfg.BodyLimit,
		RateLimit:    limiter,
	}, logger)

	return svc, nil
}

// newVerifier checks tokens locally when the signing secret is known and asks
// the identity provider otherwise.
func newVerifier(cfg *config.Config, logger zerolog.Logger) auth.Verifier {
	if cfg.SupabaseJWTSecret != "" {
		logger.Info().Msg("verifying access tokens locally")
		return auth.NewJWTVerifier(cfg.SupabaseJWTSecret)
	}
	logger.Info().Str("provider", cfg.SupabaseURL).Msg("verifying access tokens with identity provider")
	return auth.NewRemoteVerifier(cfg.SupabaseURL, cfg.SupabaseServiceRoleKey, time.Duration(cfg.AuthTimeoutSeconds)*time.Second)
}

// newRateLimitStore prefers a shared redis counter and falls back to memory
// when redis is not configured or not reachable.
func (s *ServiceOptions) newRateLimitStore(ctx context.Context, cfg *config.Config, clk clock.Clock, logger zerolog.Logger) middleware.RateLimiterStore {
	if cfg.RedisAddr == "" {
		return ratelimit.NewMemoryStore(cfg.RateLimitPerMinute)
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unavailable, using in-memory rate limiter")
		_ = client.Close()
		return ratelimit.NewMemoryStore(cfg.RateLimitPerMinute)
	}

	s.RedisClient = client
	return ratelimit.NewRedisStore(client, int64(cfg.RateLimitPerMinute), time.Minute, clk)
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.RedisClient != nil {
		_ = s.RedisClient.Close()
	}
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
