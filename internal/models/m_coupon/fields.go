package m_coupon

const (
	TableName = "coupons"

	ID            = "id"
	UserID        = "user_id"
	Code          = "code"
	DiscountType  = "discount_type"
	DiscountValue = "discount_value"
	MaxUses       = "max_uses"
	UsesCount     = "uses_count"
	ValidFrom     = "valid_from"
	ValidUntil    = "valid_until"
	IsActive      = "is_active"
	CreatedAt     = "created_at"
	UpdatedAt     = "updated_at"
)

// AllColumns lists every column in Data order.
var AllColumns = []string{
	ID, UserID, Code, DiscountType, DiscountValue, MaxUses, UsesCount,
	ValidFrom, ValidUntil, IsActive, CreatedAt, UpdatedAt,
}
