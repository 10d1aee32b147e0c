package m_account

const (
	TableName = "account_settings"

	UserID          = "user_id"
	DisplayName     = "display_name"
	PhoneNumber     = "phone_number"
	Email           = "email"
	ProfileImageURL = "profile_image_url"
	CreatedAt       = "created_at"
	UpdatedAt       = "updated_at"
)

// AllColumns lists every column in Data order.
var AllColumns = []string{UserID, DisplayName, PhoneNumber, Email, ProfileImageURL, CreatedAt, UpdatedAt}
