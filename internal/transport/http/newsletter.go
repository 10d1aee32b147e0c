package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/light-bringer/storefront-admin/internal/app/newsletter/queries/list_subscribers"
	"github.com/light-bringer/storefront-admin/internal/app/newsletter/usecases/subscribe"
)

type subscribeBody struct {
	Email string  `json:"email"`
	Name  *string `json:"name"`
}

// subscribe is public. Subscribers always belong to the admin.
func (s *Server) subscribe(c echo.Context) error {
	var body subscribeBody
	if err := bindJSON(c, &body); err != nil {
		return s.fail(c, err)
	}

	if _, err := s.commands.Subscribe.Execute(c.Request().Context(), &subscribe.Request{
		Email: body.Email,
		Name:  body.Name,
	}); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Newsletter added successfully",
	})
}

func (s *Server) listSubscribers(c echo.Context) error {
	subs, err := s.queries.ListSubscribers.Execute(c.Request().Context(), &list_subscribers.Request{
		UserID: identity(c).ID,
	})
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":     true,
		"message":     "Newsletters fetched successfully",
		"count":       len(subs),
		"newsletters": subs,
	})
}
