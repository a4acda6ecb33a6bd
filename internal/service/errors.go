package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrAlreadyLiked is returned when the acting user already has an entry
	// in the post's likes document.
	ErrAlreadyLiked = errors.New("post already liked")

	// ErrNotLiked is returned when the acting user tries to unlike a post
	// they never liked.
	ErrNotLiked = errors.New("post has not yet been liked")

	// ErrNotPostOwner is returned when a delete is attempted by a user other
	// than the post's owner.
	ErrNotPostOwner = errors.New("user is not the post owner")

	// ErrCommentNotFound is returned when no comment in the post's comments
	// document carries the requested comment ID.
	ErrCommentNotFound = errors.New("comment does not exist")
)
