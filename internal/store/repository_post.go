package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/models"
)

// postRepository is the PostgreSQL-backed implementation of [PostRepository].
// Posts are stored one row per post; the likes and comments sequences are
// JSONB columns scanned into and out of the model's slices, which keeps the
// document shape (ordered, prepend-at-front) the service layer relies on.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced
// with structured fields (post_id, user_id, etc.).
type postRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// database connection and logger.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// GetAllPosts retrieves every post ordered by creation time, newest first.
//
// Returns an empty slice when the board has no posts.
func (r *postRepository) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllPostsQuery()
	if err != nil {
		log.Err(err).Str("func", "*postRepository.GetAllPosts").Msg("failed to create query")
		return nil, err
	}

	rows, queryErr := r.db.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).Str("func", "*postRepository.GetAllPosts").Msg("failed to execute query for getting all posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	posts := make([]models.Post, 0, 50)

	for rows.Next() {
		post, scanErr := scanPost(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*postRepository.GetAllPosts").Msg("failed to scan post row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		posts = append(posts, post)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*postRepository.GetAllPosts").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return posts, nil
}

// GetPostByID retrieves one post or [ErrPostNotFound] if no row matches.
func (r *postRepository) GetPostByID(ctx context.Context, id int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPostByIDQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.GetPostByID").Int64("post_id", id).Msg("failed to create query")
		return models.Post{}, err
	}

	post, scanErr := scanPost(r.db.QueryRowContext(ctx, query, args...))
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}

		log.Err(scanErr).Str("func", "*postRepository.GetPostByID").Int64("post_id", id).Msg("failed to scan post row")
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return post, nil
}

// CreatePost persists a new post owned by post.UserID and returns the stored
// document with server-assigned fields (ID, CreatedAt, empty likes/comments).
func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPostQuery(post.UserID, post.Text, post.Name, post.Avatar)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Int64("user_id", post.UserID).Msg("failed to create query")
		return models.Post{}, err
	}

	created, scanErr := scanPost(r.db.QueryRowContext(ctx, query, args...))
	if scanErr != nil {
		log.Err(scanErr).Str("func", "*postRepository.CreatePost").Int64("user_id", post.UserID).Msg("failed to scan created post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingStatement, scanErr)
	}

	return created, nil
}

// DeletePost removes the post row. Zero affected rows → [ErrPostNotFound].
func (r *postRepository) DeletePost(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePostQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Int64("post_id", id).Msg("failed to create query")
		return err
	}

	result, execErr := r.db.ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).Str("func", "*postRepository.DeletePost").Int64("post_id", id).Msg("failed to execute delete statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	affected, affErr := result.RowsAffected()
	if affErr != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, affErr)
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	return nil
}

// UpdateLikes writes the likes document back to the post row and returns the
// resulting post. The whole sequence is replaced: concurrent writers to the
// same post race last-write-wins.
func (r *postRepository) UpdateLikes(ctx context.Context, id int64, likes []models.Like) (models.Post, error) {
	return r.updateDocument(ctx, id, "likes", likes)
}

// UpdateComments writes the comments document back to the post row and
// returns the resulting post.
func (r *postRepository) UpdateComments(ctx context.Context, id int64, comments []models.Comment) (models.Post, error) {
	return r.updateDocument(ctx, id, "comments", comments)
}

func (r *postRepository) updateDocument(ctx context.Context, id int64, column string, doc any) (models.Post, error) {
	log := logger.FromContext(ctx)

	raw, marshalErr := json.Marshal(doc)
	if marshalErr != nil {
		log.Err(marshalErr).Str("func", "*postRepository.updateDocument").Int64("post_id", id).Str("column", column).Msg("failed to marshal document")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, marshalErr)
	}

	query, args, err := buildUpdatePostDocumentQuery(id, column, raw)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.updateDocument").Int64("post_id", id).Str("column", column).Msg("failed to create query")
		return models.Post{}, err
	}

	post, scanErr := scanPost(r.db.QueryRowContext(ctx, query, args...))
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}

		log.Err(scanErr).Str("func", "*postRepository.updateDocument").Int64("post_id", id).Str("column", column).Msg("failed to scan updated post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingStatement, scanErr)
	}

	return post, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanPost reads one posts row in [postColumns] order, decoding the likes and
// comments JSONB documents into their model slices.
func scanPost(row rowScanner) (models.Post, error) {
	var post models.Post
	var likesRaw, commentsRaw []byte

	if err := row.Scan(
		&post.ID,
		&post.UserID,
		&post.Text,
		&post.Name,
		&post.Avatar,
		&likesRaw,
		&commentsRaw,
		&post.CreatedAt,
	); err != nil {
		return models.Post{}, err
	}

	if err := json.Unmarshal(likesRaw, &post.Likes); err != nil {
		return models.Post{}, fmt.Errorf("decode likes document: %w", err)
	}
	if err := json.Unmarshal(commentsRaw, &post.Comments); err != nil {
		return models.Post{}, fmt.Errorf("decode comments document: %w", err)
	}

	return post, nil
}
