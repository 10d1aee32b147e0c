package m_newsletter

const (
	TableName = "newsletters"

	// EmailIndex enforces one row per email.
	EmailIndex = "idx_newsletters_email"

	ID             = "id"
	UserID         = "user_id"
	Email          = "email"
	Name           = "name"
	Status         = "status"
	SubscribedDate = "subscribed_date"
	CreatedAt      = "created_at"
	UpdatedAt      = "updated_at"
)

// AllColumns lists every column in Data order.
var AllColumns = []string{ID, UserID, Email, Name, Status, SubscribedDate, CreatedAt, UpdatedAt}
