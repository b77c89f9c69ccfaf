package models

import (
	"time"

	"github.com/google/uuid"
)

// LinkDB represents one outbound link row on a profile.
// Position only defines relative display order: values may repeat after
// concurrent appends and keep gaps after deletes.
type LinkDB struct {
	LinkID          uuid.UUID `json:"id" db:"link_id"`
	UserID          uuid.UUID `json:"userId" db:"user_id"`
	Title           string    `json:"title" db:"title"`
	URL             string    `json:"url" db:"url"`
	Icon            *string   `json:"icon" db:"icon"` // external URL or data URI
	Position        int       `json:"order" db:"position"`
	BackgroundColor *string   `json:"backgroundColor" db:"background_color"`
	TextColor       *string   `json:"textColor" db:"text_color"`
	IconColor       *string   `json:"iconColor" db:"icon_color"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// LinkPatch carries a partial link update. Nil means "leave unchanged";
// a pointer to the empty string clears the field.
type LinkPatch struct {
	Title           *string `json:"title"`
	URL             *string `json:"url"`
	Icon            *string `json:"icon"`
	Position        *int    `json:"order"`
	BackgroundColor *string `json:"backgroundColor"`
	TextColor       *string `json:"textColor"`
	IconColor       *string `json:"iconColor"`
}
