package domain

import "time"

// DomainEvent is recorded by the aggregate and written to the outbox.
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OwnerID() string
}

// MessageReceivedEvent is emitted when a contact message is stored.
type MessageReceivedEvent struct {
	MessageID  string    `json:"message_id"`
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	ReceivedAt time.Time `json:"received_at"`
}

func (e *MessageReceivedEvent) EventType() string   { return "message.received" }
func (e *MessageReceivedEvent) AggregateID() string { return e.MessageID }
func (e *MessageReceivedEvent) OwnerID() string     { return e.UserID }

// MessageReadEvent is emitted the first time a message is marked read.
type MessageReadEvent struct {
	MessageID string    `json:"message_id"`
	UserID    string    `json:"user_id"`
	ReadAt    time.Time `json:"read_at"`
}

func (e *MessageReadEvent) EventType() string   { return "message.read" }
func (e *MessageReadEvent) AggregateID() string { return e.MessageID }
func (e *MessageReadEvent) OwnerID() string     { return e.UserID }

// MessageDeletedEvent is emitted when a message is removed.
type MessageDeletedEvent struct {
	MessageID string    `json:"message_id"`
	UserID    string    `json:"user_id"`
	DeletedAt time.Time `json:"deleted_at"`
}

func (e *MessageDeletedEvent) EventType() string   { return "message.deleted" }
func (e *MessageDeletedEvent) AggregateID() string { return e.MessageID }
func (e *MessageDeletedEvent) OwnerID() string     { return e.UserID }
