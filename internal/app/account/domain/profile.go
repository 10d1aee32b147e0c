package domain

import "time"

// Fields carries the profile columns supplied by a request. nil means not supplied.
type Fields struct {
	DisplayName *string
	PhoneNumber *string
	Email       *string
}

// Profile is the single account settings row of a user.
type Profile struct {
	userID          string
	displayName     *string
	phoneNumber     *string
	email           *string
	profileImageURL *string
	createdAt       time.Time
	updatedAt       time.Time
}

// NewProfile creates an empty profile for userID.
func NewProfile(userID string, now time.Time) *Profile {
	return &Profile{userID: userID, createdAt: now, updatedAt: now}
}

// Snapshot is the stored state of a profile.
type Snapshot struct {
	UserID          string
	DisplayName     *string
	PhoneNumber     *string
	Email           *string
	ProfileImageURL *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ReconstructProfile rebuilds a stored profile.
func ReconstructProfile(s Snapshot) *Profile {
	return &Profile{
		userID:          s.UserID,
		displayName:     s.DisplayName,
		phoneNumber:     s.PhoneNumber,
		email:           s.Email,
		profileImageURL: s.ProfileImageURL,
		createdAt:       s.CreatedAt,
		updatedAt:       s.UpdatedAt,
	}
}

func (p *Profile) UserID() string           { return p.userID }
func (p *Profile) DisplayName() *string     { return p.displayName }
func (p *Profile) PhoneNumber() *string     { return p.phoneNumber }
func (p *Profile) Email() *string           { return p.email }
func (p *Profile) ProfileImageURL() *string { return p.profileImageURL }
func (p *Profile) CreatedAt() time.Time     { return p.createdAt }
func (p *Profile) UpdatedAt() time.Time     { return p.updatedAt }

// Update merges f and, when imageURL is set, replaces the profile image.
// It returns the names of the columns that were written.
func (p *Profile) Update(f Fields, imageURL *string, now time.Time) []string {
	var changed []string
	if f.DisplayName != nil {
		p.displayName = f.DisplayName
		changed = append(changed, "display_name")
	}
	if f.PhoneNumber != nil {
		p.phoneNumber = f.PhoneNumber
		changed = append(changed, "phone_number")
	}
	if f.Email != nil {
		p.email = f.Email
		changed = append(changed, "email")
	}
	if imageURL != nil {
		p.profileImageURL = imageURL
		changed = append(changed, "profile_image_url")
	}
	p.updatedAt = now
	return changed
}

// UpdatedEvent is emitted on every profile upsert.
type UpdatedEvent struct {
	UserID        string    `json:"user_id"`
	ChangedFields []string  `json:"changed_fields"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (e *UpdatedEvent) EventType() string   { return "account.updated" }
func (e *UpdatedEvent) AggregateID() string { return e.UserID }
func (e *UpdatedEvent) OwnerID() string     { return e.UserID }
