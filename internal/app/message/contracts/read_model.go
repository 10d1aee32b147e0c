package contracts

import (
	"context"
	"time"

	"github.com/light-bringer/storefront-admin/internal/app/message/domain"
)

// MessageDTO is the JSON shape of a message row.
type MessageDTO struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      *string   `json:"name"`
	Email     string    `json:"email"`
	Subject   *string   `json:"subject"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewMessageDTO renders an aggregate.
func NewMessageDTO(m *domain.Message) *MessageDTO {
	return &MessageDTO{
		ID:        m.ID(),
		UserID:    m.UserID(),
		Name:      m.Name(),
		Email:     m.Email(),
		Subject:   m.Subject(),
		Message:   m.Message(),
		Read:      m.Read(),
		CreatedAt: m.CreatedAt(),
		UpdatedAt: m.UpdatedAt(),
	}
}

// ReadModel serves message listings.
type ReadModel interface {
	// ListByUser returns userID's messages, newest first.
	ListByUser(ctx context.Context, userID string) ([]*MessageDTO, error)
}
