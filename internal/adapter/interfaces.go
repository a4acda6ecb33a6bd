// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the go-post-board server.
//
// The primary abstraction is [ServerAdapter], which decouples the terminal
// client from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-post-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// go-post-board server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register sends a registration request with the provided credentials.
	// On success it stores the returned bearer token via SetToken and returns
	// the registered user with UserID populated from the token subject.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates the user with the server. On success it stores the
	// returned bearer token via SetToken and returns the authenticated user
	// with UserID populated from the token subject.
	Login(ctx context.Context, user models.User) (models.User, error)

	// CreateProfile publishes the caller's board profile. Required before any
	// post, like, or comment can be created. Returns [ErrConflict] (wrapped)
	// if a profile already exists for the authenticated user.
	CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error)

	// GetOwnProfile fetches the authenticated user's profile. Returns
	// [ErrNotFound] (wrapped) if no profile has been created yet.
	GetOwnProfile(ctx context.Context) (models.Profile, error)

	// ListPosts fetches the full feed, newest first. Works without a token.
	ListPosts(ctx context.Context) ([]models.Post, error)

	// GetPost fetches a single post with its likes and comments. Works
	// without a token. Returns [ErrNotFound] (wrapped) for an unknown id.
	GetPost(ctx context.Context, id int64) (models.Post, error)

	// CreatePost publishes a new post and returns the stored document.
	// Requires a valid bearer token and an existing profile.
	CreatePost(ctx context.Context, input models.PostInput) (models.Post, error)

	// DeletePost removes the caller's own post. Returns [ErrUnauthorized]
	// (wrapped) if the post belongs to another user.
	DeletePost(ctx context.Context, id int64) error

	// LikePost records the caller's like on the post and returns the updated
	// document. Returns [ErrBadRequest] (wrapped) if already liked.
	LikePost(ctx context.Context, id int64) (models.Post, error)

	// UnlikePost withdraws the caller's like and returns the updated
	// document. Returns [ErrBadRequest] (wrapped) if not currently liked.
	UnlikePost(ctx context.Context, id int64) (models.Post, error)

	// AddComment attaches a comment to the post and returns the updated
	// document with the new comment at the front.
	AddComment(ctx context.Context, id int64, input models.PostInput) (models.Post, error)

	// DeleteComment removes a comment by id from the post and returns the
	// updated document. Returns [ErrNotFound] (wrapped) if either the post or
	// the comment does not exist.
	DeleteComment(ctx context.Context, id int64, commentID string) (models.Post, error)
}
