package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/light-bringer/storefront-admin/internal/config"
	"github.com/light-bringer/storefront-admin/internal/pkg/logging"
	"github.com/light-bringer/storefront-admin/internal/pkg/outbox"
	"github.com/light-bringer/storefront-admin/internal/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "outbox_relay: %v\n", err)
		os.Exit(1)
	}
}

type batchRunner interface {
	RunOnce(ctx context.Context) (int, error)
}

// runOnce relays one batch. A failed batch is returned so the process exits non-zero.
func runOnce(ctx context.Context, r batchRunner, logger zerolog.Logger) error {
	n, err := r.RunOnce(ctx)
	if err != nil {
		logger.Error().Err(err).Int("published", n).Msg("relay batch failed")
		return fmt.Errorf("relay batch failed: %w", err)
	}
	logger.Info().Int("published", n).Msg("relay batch complete")
	return nil
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	relayCfg := outbox.RelayConfig{}
	once := flag.Bool("once", false, "Relay a single batch and exit")
	flag.IntVar(&relayCfg.BatchSize, "batch", 100, "Events fetched per poll")
	flag.Int64Var(&relayCfg.MaxRetries, "max-retries", 5, "Publish attempts before an event is marked failed")
	flag.DurationVar(&relayCfg.PollInterval, "interval", 2*time.Second, "Poll interval")
	flag.Parse()

	logger := logging.New(cfg.LogLevel).With().Str("component", "outbox_relay").Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := services.NewSpannerClient(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create spanner client: %w", err)
	}
	defer client.Close()

	writer := services.NewKafkaWriter(cfg)
	defer func() {
		if err := writer.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close kafka writer")
		}
	}()

	relay := outbox.NewRelay(outbox.NewSpannerStore(client), writer, relayCfg, logger)
	logger.Info().
		Strs("brokers", cfg.KafkaBrokers).
		Str("topic", cfg.KafkaTopic).
		Bool("once", *once).
		Msg("starting outbox relay")

	if *once {
		return runOnce(ctx, relay, logger)
	}

	if err := relay.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("relay stopped: %w", err)
	}
	logger.Info().Msg("outbox relay stopped")
	return nil
}
