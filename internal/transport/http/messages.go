package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/light-bringer/storefront-admin/internal/app/message/contracts"
	"github.com/light-bringer/storefront-admin/internal/app/message/domain"
	"github.com/light-bringer/storefront-admin/internal/app/message/queries/list_messages"
	"github.com/light-bringer/storefront-admin/internal/app/message/usecases/add_message"
	"github.com/light-bringer/storefront-admin/internal/app/message/usecases/delete_message"
	"github.com/light-bringer/storefront-admin/internal/app/message/usecases/mark_read"
)

type addMessageBody struct {
	Name    *string `json:"name"`
	Email   string  `json:"email"`
	Subject *string `json:"subject"`
	Message string  `json:"message"`
}

func (s *Server) addMessage(c echo.Context) error {
	var body addMessageBody
	if err := bindJSON(c, &body); err != nil {
		return s.fail(c, err)
	}

	msg, err := s.commands.AddMessage.Execute(c.Request().Context(), &add_message.Request{
		UserID: identity(c).ID,
		Input: domain.Input{
			Name:    body.Name,
			Email:   body.Email,
			Subject: body.Subject,
			Message: body.Message,
		},
	})
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Message sent successfully",
		"data":    []*contracts.MessageDTO{msg},
	})
}

func (s *Server) listMessages(c echo.Context) error {
	msgs, err := s.queries.ListMessages.Execute(c.Request().Context(), &list_messages.Request{
		UserID: identity(c).ID,
	})
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Messages fetched successfully",
		"data":    msgs,
	})
}

type markReadBody struct {
	MessageID string `json:"messageId"`
}

func (s *Server) markRead(c echo.Context) error {
	var body markReadBody
	if err := bindJSON(c, &body); err != nil {
		return s.failMessage(c, err)
	}

	msg, err := s.commands.MarkRead.Execute(c.Request().Context(), &mark_read.Request{
		UserID:    identity(c).ID,
		MessageID: body.MessageID,
	})
	if err != nil {
		return s.failMessage(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Message marked as read",
		"data":    []*contracts.MessageDTO{msg},
	})
}

func (s *Server) deleteMessage(c echo.Context) error {
	msg, err := s.commands.DeleteMessage.Execute(c.Request().Context(), &delete_message.Request{
		UserID:    identity(c).ID,
		MessageID: c.Param("messageId"),
	})
	if err != nil {
		return s.failMessage(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Message deleted successfully",
		"data":    []*contracts.MessageDTO{msg},
	})
}
