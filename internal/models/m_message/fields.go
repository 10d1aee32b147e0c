package m_message

const (
	TableName = "messages"

	ID        = "id"
	UserID    = "user_id"
	Name      = "name"
	Email     = "email"
	Subject   = "subject"
	Message   = "message"
	Read      = "read"
	CreatedAt = "created_at"
	UpdatedAt = "updated_at"
)

// AllColumns lists every column in Data order.
var AllColumns = []string{ID, UserID, Name, Email, Subject, Message, Read, CreatedAt, UpdatedAt}
