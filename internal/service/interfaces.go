package service

import (
	"context"

	"github.com/MKhiriev/go-post-board/models"
)

// PostService is the façade over the post collection: every operation
// validates input, enforces ownership and idempotence rules, performs one
// mutation, persists, and returns the resulting document or an error.
// Operations are independent; none depends on another operation's state.
type PostService interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id int64) (models.Post, error)
	CreatePost(ctx context.Context, input models.PostInput, userID int64) (models.Post, error)
	DeletePost(ctx context.Context, id, userID int64) error

	LikePost(ctx context.Context, id, userID int64) (models.Post, error)
	UnlikePost(ctx context.Context, id, userID int64) (models.Post, error)

	AddComment(ctx context.Context, id int64, input models.PostInput, userID int64) (models.Post, error)
	DeleteComment(ctx context.Context, id int64, commentID string, userID int64) (models.Post, error)
}

type ProfileService interface {
	CreateProfile(ctx context.Context, profile models.Profile, userID int64) (models.Profile, error)
	GetOwnProfile(ctx context.Context, userID int64) (models.Profile, error)
}

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// IDGenerator produces identifiers for newly created comments.
// Satisfied by [utils.UUIDGenerator].
type IDGenerator interface {
	Generate() string
}
