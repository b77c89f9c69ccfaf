package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TempUsernamePrefix marks an unclaimed profile. Usernames carrying it are
// excluded from public lookup.
const TempUsernamePrefix = "temp_"

// UserDB represents a user record in the database
type UserDB struct {
	UserID    uuid.UUID `json:"id" db:"user_id"`                  // Primary key
	Username  string    `json:"username" db:"username"`           // Unique username, temp_-prefixed until claimed
	Name      *string   `json:"name" db:"name"`                   // Optional display title
	Bio       *string   `json:"bio" db:"bio"`                     // Short profile text
	AboutMe   *string   `json:"aboutMe" db:"about_me"`            // Long-form markdown
	Avatar    *string   `json:"avatar" db:"avatar"`               // External URL or data URI
	Image     *string   `json:"image" db:"image"`                 // Fallback avatar from the auth provider
	CreatedAt time.Time `json:"created_at" db:"created_at"`       // Creation timestamp
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`       // Last update timestamp
}

// IsClaimed reports whether the user has replaced the placeholder username.
func (u *UserDB) IsClaimed() bool {
	return !strings.HasPrefix(u.Username, TempUsernamePrefix)
}
