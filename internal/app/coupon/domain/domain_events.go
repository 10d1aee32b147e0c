package domain

import "time"

// DomainEvent is recorded by the aggregate and written to the outbox.
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OwnerID() string
}

// CouponCreatedEvent is emitted when a coupon is added.
type CouponCreatedEvent struct {
	CouponID      string    `json:"coupon_id"`
	UserID        string    `json:"user_id"`
	Code          string    `json:"code"`
	DiscountType  string    `json:"discount_type"`
	DiscountValue string    `json:"discount_value"`
	CreatedAt     time.Time `json:"created_at"`
}

func (e *CouponCreatedEvent) EventType() string   { return "coupon.created" }
func (e *CouponCreatedEvent) AggregateID() string { return e.CouponID }
func (e *CouponCreatedEvent) OwnerID() string     { return e.UserID }

// CouponRedeemedEvent is emitted every time a coupon is applied.
type CouponRedeemedEvent struct {
	CouponID   string    `json:"coupon_id"`
	UserID     string    `json:"user_id"`
	Code       string    `json:"code"`
	UsesCount  int64     `json:"uses_count"`
	CartTotal  *string   `json:"cart_total,omitempty"`
	Discount   *string   `json:"discount,omitempty"`
	RedeemedAt time.Time `json:"redeemed_at"`
}

func (e *CouponRedeemedEvent) EventType() string   { return "coupon.redeemed" }
func (e *CouponRedeemedEvent) AggregateID() string { return e.CouponID }
func (e *CouponRedeemedEvent) OwnerID() string     { return e.UserID }

// CouponDeletedEvent is emitted when a coupon is removed.
type CouponDeletedEvent struct {
	CouponID  string    `json:"coupon_id"`
	UserID    string    `json:"user_id"`
	Code      string    `json:"code"`
	DeletedAt time.Time `json:"deleted_at"`
}

func (e *CouponDeletedEvent) EventType() string   { return "coupon.deleted" }
func (e *CouponDeletedEvent) AggregateID() string { return e.CouponID }
func (e *CouponDeletedEvent) OwnerID() string     { return e.UserID }
