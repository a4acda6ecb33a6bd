package models

import "time"

// Profile is the public face of a user. Social mutations (like, comment on a
// post, delete a post) require the acting user to have a profile; the service
// layer only ever checks its existence before mutating.
type Profile struct {
	// ProfileID is the internal unique identifier of the profile.
	ProfileID int64 `json:"-"`

	// UserID is the owning account. One profile per user.
	UserID int64 `json:"user"`

	// Handle is the unique public name of the profile.
	Handle string `json:"handle"`

	// Bio is an optional free-form self description.
	Bio string `json:"bio,omitempty"`

	// Avatar is the profile picture URL.
	Avatar string `json:"avatar,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Profile model.
func (p Profile) TableName() string {
	return "profiles"
}
