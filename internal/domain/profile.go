package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile represents a user's profile. UserID is a foreign key into the
// identity service's user records; exactly one profile exists per user.
// Profiles are soft-deleted: IsActive is flipped off, the row stays.
type Profile struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	UserID    uuid.UUID  `json:"user_id" db:"user_id"`
	FirstName string     `json:"first_name" db:"first_name"`
	LastName  string     `json:"last_name" db:"last_name"`
	Bio       string     `json:"bio" db:"bio"`
	Phone     string     `json:"phone" db:"phone"`
	AvatarURL string     `json:"avatar_url" db:"avatar_url"`
	Location  string     `json:"location" db:"location"`
	BirthDate *time.Time `json:"birth_date" db:"birth_date"`
	Website   string     `json:"website" db:"website"`
	IsPublic  bool       `json:"is_public" db:"is_public"`
	IsActive  bool       `json:"is_active" db:"is_active"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// FullName concatenates first and last name, falling back to whichever is
// present. Empty when neither is set.
func (p *Profile) FullName() string {
	switch {
	case p.FirstName != "" && p.LastName != "":
		return p.FirstName + " " + p.LastName
	case p.FirstName != "":
		return p.FirstName
	default:
		return p.LastName
	}
}
