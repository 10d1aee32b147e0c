package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/storefront-admin/internal/app/events/queries/list_events"
	"github.com/light-bringer/storefront-admin/internal/models/m_outbox"
	"github.com/light-bringer/storefront-admin/internal/pkg/apperr"
	"github.com/light-bringer/storefront-admin/internal/pkg/query"
)

// EventsReadModel implements list_events.EventsReadModel for Spanner.
type EventsReadModel struct {
	client *spanner.Client
}

// NewEventsReadModel creates a new EventsReadModel.
func NewEventsReadModel(client *spanner.Client) *EventsReadModel {
	return &EventsReadModel{client: client}
}

// Builder renders the filtered query for req, without ordering or limit.
func Builder(req *list_events.Request) *query.Builder {
	b := query.From(m_outbox.TableName).
		Select(m_outbox.AllColumns...).
		Where(query.Eq(m_outbox.OwnerID, req.OwnerID))
	if req.EventType != nil {
		b = b.Where(query.Eq(m_outbox.EventType, *req.EventType))
	}
	if req.AggregateID != nil {
		b = b.Where(query.Eq(m_outbox.AggregateID, *req.AggregateID))
	}
	if req.Status != nil {
		b = b.Where(query.Eq(m_outbox.Status, *req.Status))
	}
	return b
}

// ListEvents returns matching events newest first along with the total count.
func (rm *EventsReadModel) ListEvents(ctx context.Context, req *list_events.Request) ([]*list_events.EventDTO, int64, error) {
	base := Builder(req)
	txn := rm.client.ReadOnlyTransaction()
	defer txn.Close()

	total, err := count(ctx, txn, base.Count().Build())
	if err != nil {
		return nil, 0, err
	}

	stmt := base.
		OrderBy(m_outbox.CreatedAt, query.Desc).
		Limit(int64(req.Limit)).
		Build()

	iter := txn.Query(ctx, stmt)
	defer iter.Stop()

	events := make([]*list_events.EventDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, apperr.Store(err)
		}

		var data m_outbox.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, 0, fmt.Errorf("failed to parse event: %w", err)
		}
		events = append(events, toDTO(&data))
	}
	return events, total, nil
}

func count(ctx context.Context, txn *spanner.ReadOnlyTransaction, stmt spanner.Statement) (int64, error) {
	iter := txn.Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, apperr.Store(err)
	}
	var n int64
	if err := row.Columns(&n); err != nil {
		return 0, fmt.Errorf("failed to parse count: %w", err)
	}
	return n, nil
}

func toDTO(data *m_outbox.Data) *list_events.EventDTO {
	dto := &list_events.EventDTO{
		EventID:     data.EventID,
		EventType:   data.EventType,
		AggregateID: data.AggregateID,
		Status:      data.Status,
		CreatedAt:   data.CreatedAt,
		RetryCount:  data.RetryCount,
	}
	if data.Payload.Valid {
		if raw, err := json.Marshal(data.Payload.Value); err == nil {
			dto.Payload = raw
		}
	}
	if data.ProcessedAt.Valid {
		t := data.ProcessedAt.Time
		dto.ProcessedAt = &t
	}
	if data.ErrorMessage.Valid {
		msg := data.ErrorMessage.StringVal
		dto.ErrorMessage = &msg
	}
	return dto
}
