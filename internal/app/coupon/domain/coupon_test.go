package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-admin/internal/pkg/apperr"
	"github.com/light-bringer/storefront-admin/internal/pkg/money"
)

var now = time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)

func amount(t *testing.T, s string) *money.Money {
	t.Helper()
	m, err := money.Parse(s)
	require.NoError(t, err)
	return m
}

func int64Ptr(n int64) *int64        { return &n }
func timePtr(t time.Time) *time.Time { return &t }

func TestNewCoupon(t *testing.T) {
	t.Run("normalizes and defaults", func(t *testing.T) {
		c, err := NewCoupon("c1", "u1", Input{
			Code:          "  save10 ",
			DiscountType:  DiscountPercentage,
			DiscountValue: amount(t, "10"),
		}, now)
		require.NoError(t, err)

		assert.Equal(t, "SAVE10", c.Code())
		assert.True(t, c.IsActive())
		assert.Equal(t, now, c.ValidFrom())
		assert.Nil(t, c.ValidUntil())
		assert.Nil(t, c.MaxUses())
		assert.Zero(t, c.UsesCount())
		require.Len(t, c.DomainEvents(), 1)
		assert.Equal(t, "coupon.created", c.DomainEvents()[0].EventType())
	})

	t.Run("zero max uses is unlimited", func(t *testing.T) {
		c, err := NewCoupon("c1", "u1", Input{
			Code: "X", DiscountType: DiscountFixed, DiscountValue: amount(t, "5"), MaxUses: int64Ptr(0),
		}, now)
		require.NoError(t, err)
		assert.Nil(t, c.MaxUses())
	})

	tests := []struct {
		name string
		in   Input
		want error
	}{
		{"missing code", Input{DiscountType: DiscountFixed, DiscountValue: amount(t, "1")}, ErrMissingFields},
		{"blank code", Input{Code: "   ", DiscountType: DiscountFixed, DiscountValue: amount(t, "1")}, ErrMissingFields},
		{"missing type", Input{Code: "A", DiscountValue: amount(t, "1")}, ErrMissingFields},
		{"zero value", Input{Code: "A", DiscountType: DiscountFixed, DiscountValue: amount(t, "0")}, ErrMissingFields},
		{"bad type", Input{Code: "A", DiscountType: "bogo", DiscountValue: amount(t, "1")}, ErrInvalidDiscountType},
		{"negative max uses", Input{Code: "A", DiscountType: DiscountFixed, DiscountValue: amount(t, "1"), MaxUses: int64Ptr(-1)}, ErrInvalidMaxUses},
		{"window reversed", Input{
			Code: "A", DiscountType: DiscountFixed, DiscountValue: amount(t, "1"),
			ValidFrom: timePtr(now), ValidUntil: timePtr(now.Add(-time.Hour)),
		}, ErrInvalidWindow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCoupon("c1", "u1", tt.in, now)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, apperr.ErrValidation)
		})
	}
}

func stored(mod func(*Snapshot)) *Coupon {
	s := Snapshot{
		ID:            "c1",
		UserID:        "u1",
		Code:          "SAVE",
		DiscountType:  DiscountPercentage,
		DiscountValue: money.FromInt(10),
		ValidFrom:     now.Add(-24 * time.Hour),
		IsActive:      true,
	}
	if mod != nil {
		mod(&s)
	}
	return ReconstructCoupon(s)
}

func TestCoupon_CheckRedeemable(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Snapshot)
		want error
	}{
		{"ok", nil, nil},
		{"inactive wins over expiry", func(s *Snapshot) {
			s.IsActive = false
			s.ValidUntil = timePtr(now.Add(-time.Hour))
		}, ErrNotActive},
		{"not yet valid", func(s *Snapshot) { s.ValidFrom = now.Add(time.Minute) }, ErrNotYetValid},
		{"starts now", func(s *Snapshot) { s.ValidFrom = now }, nil},
		{"expired", func(s *Snapshot) { s.ValidUntil = timePtr(now.Add(-time.Second)) }, ErrExpired},
		{"ends now", func(s *Snapshot) { s.ValidUntil = timePtr(now) }, nil},
		{"limit reached", func(s *Snapshot) {
			s.MaxUses = int64Ptr(3)
			s.UsesCount = 3
		}, ErrUsageExceeded},
		{"below limit", func(s *Snapshot) {
			s.MaxUses = int64Ptr(3)
			s.UsesCount = 2
		}, nil},
		{"unlimited", func(s *Snapshot) { s.UsesCount = 1000 }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := stored(tt.mod).CheckRedeemable(now)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCoupon_Quote(t *testing.T) {
	t.Run("percentage", func(t *testing.T) {
		q := stored(nil).Quote(amount(t, "100"))
		assert.Equal(t, "10.00", q.Discount.String())
		assert.Equal(t, "90.00", q.FinalTotal.String())
	})

	t.Run("fixed clamps at zero", func(t *testing.T) {
		c := stored(func(s *Snapshot) {
			s.DiscountType = DiscountFixed
			s.DiscountValue = money.FromInt(15)
		})
		q := c.Quote(amount(t, "10"))
		assert.Equal(t, "15.00", q.Discount.String())
		assert.Equal(t, "0.00", q.FinalTotal.String())
	})

	t.Run("no cart total", func(t *testing.T) {
		q := stored(nil).Quote(nil)
		assert.Nil(t, q.Discount)
		assert.Nil(t, q.FinalTotal)
	})
}

func TestCoupon_Redeem(t *testing.T) {
	t.Run("counts a use", func(t *testing.T) {
		c := stored(func(s *Snapshot) { s.MaxUses = int64Ptr(2); s.UsesCount = 1 })
		q, err := c.Redeem(now, amount(t, "50"))
		require.NoError(t, err)

		assert.Equal(t, "45.00", q.FinalTotal.String())
		assert.Equal(t, int64(2), c.UsesCount())
		assert.Equal(t, now, c.UpdatedAt())
		require.Len(t, c.DomainEvents(), 1)
		ev := c.DomainEvents()[0].(*CouponRedeemedEvent)
		assert.Equal(t, int64(2), ev.UsesCount)
		assert.Equal(t, "5.00", *ev.Discount)
	})

	t.Run("limit reached leaves count unchanged", func(t *testing.T) {
		c := stored(func(s *Snapshot) { s.MaxUses = int64Ptr(2); s.UsesCount = 2 })
		_, err := c.Redeem(now, amount(t, "50"))
		assert.ErrorIs(t, err, ErrUsageExceeded)
		assert.Equal(t, int64(2), c.UsesCount())
		assert.Empty(t, c.DomainEvents())
	})

	t.Run("without cart total", func(t *testing.T) {
		c := stored(nil)
		q, err := c.Redeem(now, nil)
		require.NoError(t, err)
		assert.Nil(t, q.Discount)
		assert.Equal(t, int64(1), c.UsesCount())
	})
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "WELCOME", NormalizeCode(" welcome\t"))
	assert.Equal(t, "", NormalizeCode("  "))
}
