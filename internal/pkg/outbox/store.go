package outbox

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/storefront-admin/internal/models/m_outbox"
	"github.com/light-bringer/storefront-admin/internal/pkg/query"
)

// SpannerStore reads and settles outbox rows for the relay.
type SpannerStore struct {
	client *spanner.Client
	model  *m_outbox.Model
}

// NewSpannerStore creates a new SpannerStore.
func NewSpannerStore(client *spanner.Client) *SpannerStore {
	return &SpannerStore{client: client, model: m_outbox.NewModel()}
}

// FetchPending returns up to limit pending events, oldest first.
func (s *SpannerStore) FetchPending(ctx context.Context, limit int) ([]*m_outbox.Data, error) {
	stmt := query.From(m_outbox.TableName).
		Select(m_outbox.AllColumns...).
		Where(query.Eq(m_outbox.Status, m_outbox.StatusPending)).
		OrderBy(m_outbox.CreatedAt, query.Asc).
		OrderBy(m_outbox.EventID, query.Asc).
		Limit(int64(limit)).
		Build()

	iter := s.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var events []*m_outbox.Data
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate pending events: %w", err)
		}
		var data m_outbox.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse event: %w", err)
		}
		events = append(events, &data)
	}
	return events, nil
}

// MarkCompleted flags the event as published.
func (s *SpannerStore) MarkCompleted(ctx context.Context, eventID string) error {
	if _, err := s.client.Apply(ctx, []*spanner.Mutation{s.model.MarkCompletedMut(eventID)}); err != nil {
		return fmt.Errorf("failed to mark event %s completed: %w", eventID, err)
	}
	return nil
}

// MarkRetry records a failed attempt.
func (s *SpannerStore) MarkRetry(ctx context.Context, eventID, status string, retryCount int64, errMsg string) error {
	mut := s.model.MarkRetryMut(eventID, status, retryCount, errMsg)
	if _, err := s.client.Apply(ctx, []*spanner.Mutation{mut}); err != nil {
		return fmt.Errorf("failed to record retry for event %s: %w", eventID, err)
	}
	return nil
}
