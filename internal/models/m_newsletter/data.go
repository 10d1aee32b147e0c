package m_newsletter

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data is one row of newsletters.
type Data struct {
	ID             string             `spanner:"id"`
	UserID         string             `spanner:"user_id"`
	Email          string             `spanner:"email"`
	Name           spanner.NullString `spanner:"name"`
	Status         string             `spanner:"status"`
	SubscribedDate time.Time          `spanner:"subscribed_date"`
	CreatedAt      time.Time          `spanner:"created_at"`
	UpdatedAt      time.Time          `spanner:"updated_at"`
}
