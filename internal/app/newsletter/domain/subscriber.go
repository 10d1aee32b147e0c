package domain

import (
	"strings"
	"time"
)

// StatusSubscribed is the status of every new subscriber.
const StatusSubscribed = "Subscribed"

// Subscriber is a newsletter signup. Every subscriber belongs to the admin user.
type Subscriber struct {
	id             string
	userID         string
	email          string
	name           *string
	status         string
	subscribedDate time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

// NewSubscriber creates a subscriber owned by adminID.
func NewSubscriber(id, adminID, email string, name *string, now time.Time) (*Subscriber, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	if name != nil && *name == "" {
		name = nil
	}
	return &Subscriber{
		id:             id,
		userID:         adminID,
		email:          email,
		name:           name,
		status:         StatusSubscribed,
		subscribedDate: now,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// Snapshot is the stored state of a subscriber.
type Snapshot struct {
	ID             string
	UserID         string
	Email          string
	Name           *string
	Status         string
	SubscribedDate time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ReconstructSubscriber rebuilds a stored subscriber.
func ReconstructSubscriber(s Snapshot) *Subscriber {
	return &Subscriber{
		id:             s.ID,
		userID:         s.UserID,
		email:          s.Email,
		name:           s.Name,
		status:         s.Status,
		subscribedDate: s.SubscribedDate,
		createdAt:      s.CreatedAt,
		updatedAt:      s.UpdatedAt,
	}
}

func (s *Subscriber) ID() string                { return s.id }
func (s *Subscriber) UserID() string            { return s.userID }
func (s *Subscriber) Email() string             { return s.email }
func (s *Subscriber) Name() *string             { return s.name }
func (s *Subscriber) Status() string            { return s.status }
func (s *Subscriber) SubscribedDate() time.Time { return s.subscribedDate }
func (s *Subscriber) CreatedAt() time.Time      { return s.createdAt }
func (s *Subscriber) UpdatedAt() time.Time      { return s.updatedAt }

// SubscribedEvent is emitted for every new subscriber.
type SubscribedEvent struct {
	SubscriberID string    `json:"subscriber_id"`
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

func (e *SubscribedEvent) EventType() string   { return "newsletter.subscribed" }
func (e *SubscribedEvent) AggregateID() string { return e.SubscriberID }
func (e *SubscribedEvent) OwnerID() string     { return e.UserID }

// Event returns the subscribed event for s.
func (s *Subscriber) Event() *SubscribedEvent {
	return &SubscribedEvent{
		SubscriberID: s.id,
		UserID:       s.userID,
		Email:        s.email,
		SubscribedAt: s.subscribedDate,
	}
}
