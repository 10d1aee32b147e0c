package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/light-bringer/storefront-admin/internal/app/events/queries/list_events"
	"github.com/light-bringer/storefront-admin/internal/pkg/apperr"
)

// listEvents lists the caller's outbox events, newest first.
func (s *Server) listEvents(c echo.Context) error {
	req := &list_events.Request{
		OwnerID:     identity(c).ID,
		EventType:   optionalQuery(c, "event_type"),
		AggregateID: optionalQuery(c, "aggregate_id"),
		Status:      optionalQuery(c, "status"),
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return s.fail(c, apperr.Validation("limit must be a non-negative integer"))
		}
		req.Limit = limit
	}

	events, total, err := s.queries.ListEvents.Execute(c.Request().Context(), req)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"events":      events,
		"total_count": total,
	})
}

func optionalQuery(c echo.Context, name string) *string {
	v := c.QueryParam(name)
	if v == "" {
		return nil
	}
	return &v
}
