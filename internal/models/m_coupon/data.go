package m_coupon

import (
	"math/big"
	"time"

	"cloud.google.com/go/spanner"
)

// Data is one row of coupons.
type Data struct {
	ID            string            `spanner:"id"`
	UserID        string            `spanner:"user_id"`
	Code          string            `spanner:"code"`
	DiscountType  string            `spanner:"discount_type"`
	DiscountValue big.Rat           `spanner:"discount_value"`
	MaxUses       spanner.NullInt64 `spanner:"max_uses"`
	UsesCount     int64             `spanner:"uses_count"`
	ValidFrom     time.Time         `spanner:"valid_from"`
	ValidUntil    spanner.NullTime  `spanner:"valid_until"`
	IsActive      bool              `spanner:"is_active"`
	CreatedAt     time.Time         `spanner:"created_at"`
	UpdatedAt     time.Time         `spanner:"updated_at"`
}
