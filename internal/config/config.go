// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/creasty/defaults"
	"github.com/joho/godotenv"
)

// Config is filled from default tags, then from the env var named by each env tag.
// Unset vars keep their defaults; list vars are comma separated.
type Config struct {
	Port     string `env:"PORT" default:"3000"`
	LogLevel string `env:"LOG_LEVEL" default:"info"`

	SpannerDatabase        string `env:"SPANNER_DATABASE" default:"projects/test-project/instances/dev-instance/databases/storefront-db"`
	SpannerCredentialsFile string `env:"SPANNER_CREDENTIALS_FILE"`

	SupabaseURL            string `env:"ADMIN_SUPABASE_URL"`
	SupabaseServiceRoleKey string `env:"ADMIN_SUPABASE_SERVICE_ROLE_KEY"`
	SupabaseJWTSecret      string `env:"SUPABASE_JWT_SECRET"`
	AuthTimeoutSeconds     int    `env:"AUTH_TIMEOUT_SECONDS" default:"10"`

	CloudinaryURL       string `env:"CLOUDINARY_URL"`
	CloudinaryCloudName string `env:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `env:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `env:"CLOUDINARY_API_SECRET"`
	UploadConcurrency   int    `env:"UPLOAD_CONCURRENCY" default:"3"`

	// AdminUserID owns the public product listing and every newsletter subscriber.
	AdminUserID string `env:"USER_ID_KEY"`

	RedisAddr          string   `env:"REDIS_ADDR"`
	RateLimitPerMinute int      `env:"RATE_LIMIT_PER_MINUTE" default:"60"`
	AllowOrigins       []string `env:"CORS_ALLOW_ORIGINS" default:"[\"*\"]"`
	BodyLimit          string   `env:"BODY_LIMIT" default:"10M"`

	KafkaBrokers []string `env:"KAFKA_BROKERS" default:"[\"localhost:9092\"]"`
	KafkaTopic   string   `env:"KAFKA_TOPIC" default:"storefront-events"`
}

// Load reads an optional .env file and builds a Config from the process environment.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}
	return parse(env.Options{})
}

// FromEnvironment builds a Config from environ instead of the process environment.
func FromEnvironment(environ map[string]string) (*Config, error) {
	if environ == nil {
		environ = map[string]string{}
	}
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return cfg, nil
}

// Validate reports every missing value the server cannot start without.
func (c *Config) Validate() error {
	var errs []error
	if c.SpannerDatabase == "" {
		errs = append(errs, errors.New("SPANNER_DATABASE is required"))
	}
	if c.SupabaseURL == "" && c.SupabaseJWTSecret == "" {
		errs = append(errs, errors.New("ADMIN_SUPABASE_URL or SUPABASE_JWT_SECRET is required"))
	}
	if c.SupabaseURL != "" && c.SupabaseServiceRoleKey == "" {
		errs = append(errs, errors.New("ADMIN_SUPABASE_SERVICE_ROLE_KEY is required with ADMIN_SUPABASE_URL"))
	}
	if c.CloudinaryURL == "" && (c.CloudinaryCloudName == "" || c.CloudinaryAPIKey == "" || c.CloudinaryAPISecret == "") {
		errs = append(errs, errors.New("CLOUDINARY_URL or CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY and CLOUDINARY_API_SECRET are required"))
	}
	if c.AdminUserID == "" {
		errs = append(errs, errors.New("USER_ID_KEY is required"))
	}
	if c.UploadConcurrency < 1 {
		errs = append(errs, errors.New("UPLOAD_CONCURRENCY must be at least 1"))
	}
	if c.RateLimitPerMinute < 1 {
		errs = append(errs, errors.New("RATE_LIMIT_PER_MINUTE must be at least 1"))
	}
	return errors.Join(errs...)
}
