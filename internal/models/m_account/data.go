package m_account

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data is one row of account_settings.
type Data struct {
	UserID          string             `spanner:"user_id"`
	DisplayName     spanner.NullString `spanner:"display_name"`
	PhoneNumber     spanner.NullString `spanner:"phone_number"`
	Email           spanner.NullString `spanner:"email"`
	ProfileImageURL spanner.NullString `spanner:"profile_image_url"`
	CreatedAt       time.Time          `spanner:"created_at"`
	UpdatedAt       time.Time          `spanner:"updated_at"`
}
