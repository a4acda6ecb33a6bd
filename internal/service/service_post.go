package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/store"
	"github.com/MKhiriev/go-post-board/internal/validators"
	"github.com/MKhiriev/go-post-board/models"
)

// postService is the concrete implementation of [PostService].
//
// Likes and comments are ordered documents on the post row. Every mutation is
// a read-then-write cycle without a transactional guard: concurrent edits of
// the same post race at the store level (last-write-wins). That limitation is
// accepted; no in-process state or locking exists here.
type postService struct {
	postRepository    store.PostRepository
	profileRepository store.ProfileRepository

	validator validators.Validator
	ids       IDGenerator

	logger *logger.Logger
}

// NewPostService constructs a [PostService] backed by the given repositories.
// The validator checks post and comment input shape; ids supplies comment
// identifiers.
func NewPostService(postRepository store.PostRepository, profileRepository store.ProfileRepository, validator validators.Validator, ids IDGenerator, logger *logger.Logger) PostService {
	return &postService{
		postRepository:    postRepository,
		profileRepository: profileRepository,
		validator:         validator,
		ids:               ids,
		logger:            logger,
	}
}

// ListPosts returns every post ordered by date, newest first. Store failures
// propagate as infrastructure errors and surface as 5xx, not 404.
func (p *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return p.postRepository.GetAllPosts(ctx)
}

// GetPost returns one post or store.ErrPostNotFound if absent.
func (p *postService) GetPost(ctx context.Context, id int64) (models.Post, error) {
	return p.postRepository.GetPostByID(ctx, id)
}

// CreatePost validates input, constructs a new post owned by userID, and
// persists it.
//
// Returns a [validators.FieldErrors] map when validation fails, otherwise the
// stored document with server-assigned fields.
func (p *postService) CreatePost(ctx context.Context, input models.PostInput, userID int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, input); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("post input failed validation")
		return models.Post{}, err
	}

	post := models.Post{
		UserID: userID,
		Text:   input.Text,
		Name:   input.Name,
		Avatar: input.Avatar,
	}

	created, err := p.postRepository.CreatePost(ctx, post)
	if err != nil {
		return models.Post{}, fmt.Errorf("post creation ended with error: %w", err)
	}

	return created, nil
}

// DeletePost removes the post if userID owns it.
//
// Returns:
//   - store.ErrProfileNotFound if the acting user has no profile.
//   - store.ErrPostNotFound if the post does not exist.
//   - ErrNotPostOwner if the post belongs to another user; the post is left
//     unchanged.
func (p *postService) DeletePost(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	if err := p.requireProfile(ctx, userID); err != nil {
		return err
	}

	post, err := p.postRepository.GetPostByID(ctx, id)
	if err != nil {
		return err
	}

	if post.UserID != userID {
		log.Warn().Int64("post_id", id).Int64("user_id", userID).Int64("owner_id", post.UserID).Msg("delete attempted by non-owner")
		return ErrNotPostOwner
	}

	return p.postRepository.DeletePost(ctx, id)
}

// LikePost records that userID endorsed the post.
//
// The likes document holds at most one entry per user: if any entry already
// matches userID the call fails with ErrAlreadyLiked and the document is left
// unchanged. Otherwise a new entry is prepended and the document persisted.
func (p *postService) LikePost(ctx context.Context, id, userID int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	if err := p.requireProfile(ctx, userID); err != nil {
		return models.Post{}, err
	}

	post, err := p.postRepository.GetPostByID(ctx, id)
	if err != nil {
		return models.Post{}, err
	}

	if likeIndex(post.Likes, userID) >= 0 {
		log.Debug().Int64("post_id", id).Int64("user_id", userID).Msg("user already liked this post")
		return models.Post{}, ErrAlreadyLiked
	}

	likes := append([]models.Like{{UserID: userID}}, post.Likes...)

	return p.postRepository.UpdateLikes(ctx, id, likes)
}

// UnlikePost removes userID's like from the post.
//
// Fails with ErrNotLiked when no entry matches userID; otherwise the matching
// entry is removed by its index, preserving the order of the remaining
// entries, and the document persisted.
func (p *postService) UnlikePost(ctx context.Context, id, userID int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	if err := p.requireProfile(ctx, userID); err != nil {
		return models.Post{}, err
	}

	post, err := p.postRepository.GetPostByID(ctx, id)
	if err != nil {
		return models.Post{}, err
	}

	idx := likeIndex(post.Likes, userID)
	if idx < 0 {
		log.Debug().Int64("post_id", id).Int64("user_id", userID).Msg("user has not liked this post")
		return models.Post{}, ErrNotLiked
	}

	likes := append(post.Likes[:idx:idx], post.Likes[idx+1:]...)

	return p.postRepository.UpdateLikes(ctx, id, likes)
}

// AddComment validates input and prepends a new comment (with a freshly
// generated ID) to the post's comments document.
func (p *postService) AddComment(ctx context.Context, id int64, input models.PostInput, userID int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, input); err != nil {
		log.Err(err).Int64("post_id", id).Int64("user_id", userID).Msg("comment input failed validation")
		return models.Post{}, err
	}

	if err := p.requireProfile(ctx, userID); err != nil {
		return models.Post{}, err
	}

	post, err := p.postRepository.GetPostByID(ctx, id)
	if err != nil {
		return models.Post{}, err
	}

	comment := models.Comment{
		ID:        p.ids.Generate(),
		UserID:    userID,
		Text:      input.Text,
		Name:      input.Name,
		Avatar:    input.Avatar,
		CreatedAt: time.Now(),
	}

	comments := append([]models.Comment{comment}, post.Comments...)

	return p.postRepository.UpdateComments(ctx, id, comments)
}

// DeleteComment removes the comment with commentID from the post's comments
// document, preserving the order of the remaining entries.
//
// Returns ErrCommentNotFound when no comment matches. Any authenticated user
// may delete any comment: the author is not checked, mirroring the original
// API this service replaces. See DESIGN.md for the flagged gap.
func (p *postService) DeleteComment(ctx context.Context, id int64, commentID string, userID int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	post, err := p.postRepository.GetPostByID(ctx, id)
	if err != nil {
		return models.Post{}, err
	}

	idx := -1
	for i, comment := range post.Comments {
		if comment.ID == commentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		log.Debug().Int64("post_id", id).Str("comment_id", commentID).Msg("comment not found")
		return models.Post{}, ErrCommentNotFound
	}

	comments := append(post.Comments[:idx:idx], post.Comments[idx+1:]...)

	return p.postRepository.UpdateComments(ctx, id, comments)
}

// requireProfile enforces the social-mutation precondition: the acting user
// must have a profile. Only existence is checked; the profile itself is never
// read.
func (p *postService) requireProfile(ctx context.Context, userID int64) error {
	exists, err := p.profileRepository.ProfileExists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return store.ErrProfileNotFound
	}

	return nil
}

func likeIndex(likes []models.Like, userID int64) int {
	for i, like := range likes {
		if like.UserID == userID {
			return i
		}
	}
	return -1
}
