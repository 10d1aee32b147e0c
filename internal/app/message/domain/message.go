package domain

import "time"

// Input carries a submitted contact message. Name and Subject are optional.
type Input struct {
	Name    *string
	Email   string
	Subject *string
	Message string
}

// Message is a contact message addressed to one user.
type Message struct {
	id        string
	userID    string
	name      *string
	email     string
	subject   *string
	message   string
	read      bool
	createdAt time.Time
	updatedAt time.Time

	events []DomainEvent
}

// NewMessage creates an unread message.
func NewMessage(id, userID string, in Input, now time.Time) (*Message, error) {
	if in.Email == "" || in.Message == "" {
		return nil, ErrMissingFields
	}
	m := &Message{
		id:        id,
		userID:    userID,
		name:      emptyToNil(in.Name),
		email:     in.Email,
		subject:   emptyToNil(in.Subject),
		message:   in.Message,
		createdAt: now,
		updatedAt: now,
	}
	m.recordEvent(&MessageReceivedEvent{
		MessageID:  m.id,
		UserID:     m.userID,
		Email:      m.email,
		ReceivedAt: now,
	})
	return m, nil
}

// Snapshot is the stored state of a message.
type Snapshot struct {
	ID        string
	UserID    string
	Name      *string
	Email     string
	Subject   *string
	Message   string
	Read      bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReconstructMessage rebuilds a stored message.
func ReconstructMessage(s Snapshot) *Message {
	return &Message{
		id:        s.ID,
		userID:    s.UserID,
		name:      s.Name,
		email:     s.Email,
		subject:   s.Subject,
		message:   s.Message,
		read:      s.Read,
		createdAt: s.CreatedAt,
		updatedAt: s.UpdatedAt,
	}
}

func (m *Message) ID() string                  { return m.id }
func (m *Message) UserID() string              { return m.userID }
func (m *Message) Name() *string               { return m.name }
func (m *Message) Email() string               { return m.email }
func (m *Message) Subject() *string            { return m.subject }
func (m *Message) Message() string             { return m.message }
func (m *Message) Read() bool                  { return m.read }
func (m *Message) CreatedAt() time.Time        { return m.createdAt }
func (m *Message) UpdatedAt() time.Time        { return m.updatedAt }
func (m *Message) DomainEvents() []DomainEvent { return m.events }

// MarkRead flips the message to read. It reports false when it already was.
func (m *Message) MarkRead(now time.Time) bool {
	if m.read {
		return false
	}
	m.read = true
	m.updatedAt = now
	m.recordEvent(&MessageReadEvent{MessageID: m.id, UserID: m.userID, ReadAt: now})
	return true
}

// MarkDeleted records the deletion event.
func (m *Message) MarkDeleted(now time.Time) {
	m.recordEvent(&MessageDeletedEvent{MessageID: m.id, UserID: m.userID, DeletedAt: now})
}

// ClearEvents drops recorded events once they have been persisted.
func (m *Message) ClearEvents() {
	m.events = nil
}

func (m *Message) recordEvent(event DomainEvent) {
	m.events = append(m.events, event)
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
