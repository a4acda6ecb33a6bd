package models

import "time"

// Post is a user-authored text item with embedded likes and comments.
// Likes and Comments are ordered documents stored alongside the post row;
// both are mutated with a read-then-write cycle, so concurrent edits of the
// same post are last-write-wins at the store level.
type Post struct {
	// ID is the server-assigned identifier of the post.
	ID int64 `json:"id"`

	// UserID is the owner of the post. Immutable after creation; only the
	// owner may delete the post.
	UserID int64 `json:"user"`

	// Text is the post body.
	Text string `json:"text"`

	// Name is the display name of the author captured at creation time.
	Name string `json:"name"`

	// Avatar is the author's avatar URL captured at creation time.
	Avatar string `json:"avatar"`

	// Likes holds one entry per endorsing user, most recent first.
	// At most one entry per user.
	Likes []Like `json:"likes"`

	// Comments holds the post's comments, most recent first. Each comment
	// is independently addressable by its own ID.
	Comments []Comment `json:"comments"`

	// CreatedAt is the timestamp the post was created. The feed is ordered
	// by this field, newest first.
	CreatedAt time.Time `json:"date"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// Like records that a user endorsed a post. Unique per (post, user).
type Like struct {
	UserID int64 `json:"user"`
}

// Comment is a nested, independently identified text item attached to a post.
type Comment struct {
	// ID is a client-opaque UUID assigned when the comment is created.
	ID string `json:"id"`

	// UserID is the comment author.
	UserID int64 `json:"user"`

	Text   string `json:"text"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`

	CreatedAt time.Time `json:"date"`
}

// PostInput is the request body accepted by the create-post and add-comment
// operations. It is validated field by field before any mutation happens.
type PostInput struct {
	Text   string `json:"text"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}
