package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/light-bringer/storefront-admin/internal/models/m_outbox"
)

// Store is the relay's view of outbox_events.
type Store interface {
	FetchPending(ctx context.Context, limit int) ([]*m_outbox.Data, error)
	MarkCompleted(ctx context.Context, eventID string) error
	MarkRetry(ctx context.Context, eventID, status string, retryCount int64, errMsg string) error
}

// Publisher is satisfied by *kafka.Writer.
type Publisher interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// RelayConfig tunes the relay loop.
type RelayConfig struct {
	BatchSize    int
	MaxRetries   int64
	PollInterval time.Duration
}

// Relay publishes pending outbox events one at a time so a single bad event
// does not hold back the rest of the batch.
type Relay struct {
	store  Store
	pub    Publisher
	cfg    RelayConfig
	logger zerolog.Logger
}

// NewRelay creates a new Relay.
func NewRelay(store Store, pub Publisher, cfg RelayConfig, logger zerolog.Logger) *Relay {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 5
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 2 * time.Second
	}
	return &Relay{store: store, pub: pub, cfg: cfg, logger: logger}
}

// Message builds the Kafka message for an outbox row, keyed by aggregate id.
func Message(ev *m_outbox.Data) (kafka.Message, error) {
	value, err := json.Marshal(ev.Payload.Value)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to encode payload: %w", err)
	}
	return kafka.Message{
		Key:   []byte(ev.AggregateID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(ev.EventID)},
			{Key: "event_type", Value: []byte(ev.EventType)},
			{Key: "owner_id", Value: []byte(ev.OwnerID)},
		},
	}, nil
}

// RunOnce relays one batch and returns how many events were published.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	events, err := r.store.FetchPending(ctx, r.cfg.BatchSize)
	if err != nil {
		return 0, err
	}

	published := 0
	for _, ev := range events {
		msg, err := Message(ev)
		if err == nil {
			err = r.pub.WriteMessages(ctx, msg)
		}
		if err != nil {
			if ctx.Err() != nil {
				return published, ctx.Err()
			}
			retries := ev.RetryCount + 1
			status := m_outbox.StatusPending
			if retries >= r.cfg.MaxRetries {
				status = m_outbox.StatusFailed
			}
			r.logger.Warn().Err(err).
				Str("event_id", ev.EventID).
				Str("event_type", ev.EventType).
				Int64("retry_count", retries).
				Msg("publish failed")
			if markErr := r.store.MarkRetry(ctx, ev.EventID, status, retries, err.Error()); markErr != nil {
				return published, markErr
			}
			continue
		}

		if err := r.store.MarkCompleted(ctx, ev.EventID); err != nil {
			return published, err
		}
		published++
	}
	return published, nil
}

// Run polls until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	for {
		n, err := r.RunOnce(ctx)
		if err != nil && ctx.Err() == nil {
			r.logger.Error().Err(err).Msg("relay batch failed")
		} else if n > 0 {
			r.logger.Info().Int("published", n).Msg("relayed outbox events")
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
