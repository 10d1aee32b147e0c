package domain

import "time"

// DomainEvent is recorded by the aggregate and written to the outbox.
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OwnerID() string
}

// ProductCreatedEvent is emitted when a product is added.
type ProductCreatedEvent struct {
	ProductID  string    `json:"product_id"`
	UserID     string    `json:"user_id"`
	Name       string    `json:"product_name"`
	Price      string    `json:"product_price"`
	ImageCount int       `json:"image_count"`
	CreatedAt  time.Time `json:"created_at"`
}

func (e *ProductCreatedEvent) EventType() string   { return "product.created" }
func (e *ProductCreatedEvent) AggregateID() string { return e.ProductID }
func (e *ProductCreatedEvent) OwnerID() string     { return e.UserID }

// ProductUpdatedEvent is emitted when any product column changes.
type ProductUpdatedEvent struct {
	ProductID     string    `json:"product_id"`
	UserID        string    `json:"user_id"`
	ChangedFields []string  `json:"changed_fields"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (e *ProductUpdatedEvent) EventType() string   { return "product.updated" }
func (e *ProductUpdatedEvent) AggregateID() string { return e.ProductID }
func (e *ProductUpdatedEvent) OwnerID() string     { return e.UserID }

// ProductDeletedEvent is emitted for every product removed by a batch delete.
type ProductDeletedEvent struct {
	ProductID string    `json:"product_id"`
	UserID    string    `json:"user_id"`
	DeletedAt time.Time `json:"deleted_at"`
}

func (e *ProductDeletedEvent) EventType() string   { return "product.deleted" }
func (e *ProductDeletedEvent) AggregateID() string { return e.ProductID }
func (e *ProductDeletedEvent) OwnerID() string     { return e.UserID }
