package m_message

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data is one row of messages.
type Data struct {
	ID        string             `spanner:"id"`
	UserID    string             `spanner:"user_id"`
	Name      spanner.NullString `spanner:"name"`
	Email     string             `spanner:"email"`
	Subject   spanner.NullString `spanner:"subject"`
	Message   string             `spanner:"message"`
	Read      bool               `spanner:"read"`
	CreatedAt time.Time          `spanner:"created_at"`
	UpdatedAt time.Time          `spanner:"updated_at"`
}
