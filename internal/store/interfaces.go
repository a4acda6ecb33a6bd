package store

import (
	"context"

	"github.com/MKhiriev/go-post-board/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error)
	GetProfileByUserID(ctx context.Context, userID int64) (models.Profile, error)

	// ProfileExists reports whether the user has a profile. Social mutations
	// call it before touching any post.
	ProfileExists(ctx context.Context, userID int64) (bool, error)
}

// PostRepository is the document-style CRUD surface over the posts table.
// Likes and comments live as ordered JSONB documents on the post row; the
// service layer mutates them in memory and writes the whole document back.
type PostRepository interface {
	GetAllPosts(ctx context.Context) ([]models.Post, error)
	GetPostByID(ctx context.Context, id int64) (models.Post, error)
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	DeletePost(ctx context.Context, id int64) error

	// UpdateLikes replaces the post's likes document and returns the
	// resulting post.
	UpdateLikes(ctx context.Context, id int64, likes []models.Like) (models.Post, error)

	// UpdateComments replaces the post's comments document and returns the
	// resulting post.
	UpdateComments(ctx context.Context, id int64, comments []models.Comment) (models.Post, error)
}
