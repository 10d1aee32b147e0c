package domain

import (
	"strings"
	"time"

	"github.com/light-bringer/storefront-admin/internal/pkg/money"
)

// Discount types.
const (
	DiscountFixed      = "fixed"
	DiscountPercentage = "percentage"
)

// NormalizeCode trims and uppercases a coupon code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Input carries the fields of a new coupon.
type Input struct {
	Code          string
	DiscountType  string
	DiscountValue *money.Money
	// MaxUses nil or 0 means unlimited.
	MaxUses    *int64
	ValidFrom  *time.Time
	ValidUntil *time.Time
}

// Coupon is a discount code owned by one user.
type Coupon struct {
	id            string
	userID        string
	code          string
	discountType  string
	discountValue *money.Money
	maxUses       *int64
	usesCount     int64
	validFrom     time.Time
	validUntil    *time.Time
	isActive      bool
	createdAt     time.Time
	updatedAt     time.Time

	events []DomainEvent
}

// NewCoupon validates in and creates an active coupon. valid_from defaults to now.
func NewCoupon(id, userID string, in Input, now time.Time) (*Coupon, error) {
	code := NormalizeCode(in.Code)
	if code == "" || in.DiscountType == "" || in.DiscountValue == nil || in.DiscountValue.IsZero() {
		return nil, ErrMissingFields
	}
	if in.DiscountType != DiscountFixed && in.DiscountType != DiscountPercentage {
		return nil, ErrInvalidDiscountType
	}
	if in.DiscountValue.IsNegative() {
		return nil, ErrMissingFields
	}

	var maxUses *int64
	if in.MaxUses != nil {
		if *in.MaxUses < 0 {
			return nil, ErrInvalidMaxUses
		}
		if *in.MaxUses > 0 {
			n := *in.MaxUses
			maxUses = &n
		}
	}

	validFrom := now
	if in.ValidFrom != nil {
		validFrom = in.ValidFrom.UTC()
	}
	var validUntil *time.Time
	if in.ValidUntil != nil {
		u := in.ValidUntil.UTC()
		if u.Before(validFrom) {
			return nil, ErrInvalidWindow
		}
		validUntil = &u
	}

	c := &Coupon{
		id:            id,
		userID:        userID,
		code:          code,
		discountType:  in.DiscountType,
		discountValue: in.DiscountValue,
		maxUses:       maxUses,
		validFrom:     validFrom,
		validUntil:    validUntil,
		isActive:      true,
		createdAt:     now,
		updatedAt:     now,
	}
	c.recordEvent(&CouponCreatedEvent{
		CouponID:      c.id,
		UserID:        c.userID,
		Code:          c.code,
		DiscountType:  c.discountType,
		DiscountValue: c.discountValue.String(),
		CreatedAt:     now,
	})
	return c, nil
}

// Snapshot is the stored state of a coupon.
type Snapshot struct {
	ID            string
	UserID        string
	Code          string
	DiscountType  string
	DiscountValue *money.Money
	MaxUses       *int64
	UsesCount     int64
	ValidFrom     time.Time
	ValidUntil    *time.Time
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ReconstructCoupon rebuilds a stored coupon.
func ReconstructCoupon(s Snapshot) *Coupon {
	value := s.DiscountValue
	if value == nil {
		value = money.Zero()
	}
	return &Coupon{
		id:            s.ID,
		userID:        s.UserID,
		code:          s.Code,
		discountType:  s.DiscountType,
		discountValue: value,
		maxUses:       s.MaxUses,
		usesCount:     s.UsesCount,
		validFrom:     s.ValidFrom,
		validUntil:    s.ValidUntil,
		isActive:      s.IsActive,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
	}
}

func (c *Coupon) ID() string                  { return c.id }
func (c *Coupon) UserID() string              { return c.userID }
func (c *Coupon) Code() string                { return c.code }
func (c *Coupon) DiscountType() string        { return c.discountType }
func (c *Coupon) DiscountValue() *money.Money { return c.discountValue }
func (c *Coupon) MaxUses() *int64             { return c.maxUses }
func (c *Coupon) UsesCount() int64            { return c.usesCount }
func (c *Coupon) ValidFrom() time.Time        { return c.validFrom }
func (c *Coupon) ValidUntil() *time.Time      { return c.validUntil }
func (c *Coupon) IsActive() bool              { return c.isActive }
func (c *Coupon) CreatedAt() time.Time        { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time        { return c.updatedAt }
func (c *Coupon) DomainEvents() []DomainEvent { return c.events }

// CheckRedeemable runs the redemption checks in order and returns the first failure.
func (c *Coupon) CheckRedeemable(now time.Time) error {
	if !c.isActive {
		return ErrNotActive
	}
	if c.validFrom.After(now) {
		return ErrNotYetValid
	}
	if c.validUntil != nil && c.validUntil.Before(now) {
		return ErrExpired
	}
	if c.maxUses != nil && *c.maxUses > 0 && c.usesCount >= *c.maxUses {
		return ErrUsageExceeded
	}
	return nil
}

// Quote is the price outcome of a redemption. Both fields are nil when no
// cart total was supplied.
type Quote struct {
	Discount   *money.Money
	FinalTotal *money.Money
}

// Quote computes the discount for cartTotal. The final total never drops below zero.
func (c *Coupon) Quote(cartTotal *money.Money) Quote {
	if cartTotal == nil {
		return Quote{}
	}
	discount := c.discountValue
	if c.discountType == DiscountPercentage {
		discount = cartTotal.Percent(c.discountValue)
	}
	return Quote{
		Discount:   discount,
		FinalTotal: cartTotal.Sub(discount).ClampZero(),
	}
}

// Redeem checks the coupon, counts one use and returns the quote for cartTotal.
func (c *Coupon) Redeem(now time.Time, cartTotal *money.Money) (Quote, error) {
	if err := c.CheckRedeemable(now); err != nil {
		return Quote{}, err
	}
	q := c.Quote(cartTotal)

	c.usesCount++
	c.updatedAt = now

	ev := &CouponRedeemedEvent{
		CouponID:   c.id,
		UserID:     c.userID,
		Code:       c.code,
		UsesCount:  c.usesCount,
		RedeemedAt: now,
	}
	if cartTotal != nil {
		total, discount := cartTotal.String(), q.Discount.String()
		ev.CartTotal, ev.Discount = &total, &discount
	}
	c.recordEvent(ev)
	return q, nil
}

// MarkDeleted records the deletion event.
func (c *Coupon) MarkDeleted(now time.Time) {
	c.recordEvent(&CouponDeletedEvent{
		CouponID:  c.id,
		UserID:    c.userID,
		Code:      c.code,
		DeletedAt: now,
	})
}

// ClearEvents drops recorded events once they have been persisted.
func (c *Coupon) ClearEvents() {
	c.events = nil
}

func (c *Coupon) recordEvent(event DomainEvent) {
	c.events = append(c.events, event)
}
