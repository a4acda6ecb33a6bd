package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (login, password_hash, name)
    VALUES ($1, $2, $3)
    RETURNING user_id, login, password_hash, name, created_at;`

	findUserByLogin = `SELECT user_id, login, password_hash, name, created_at
    FROM users
    WHERE login = $1;`

	createProfile = `INSERT INTO profiles (user_id, handle, bio, avatar)
    VALUES ($1, $2, $3, $4)
    RETURNING profile_id, user_id, handle, bio, avatar, created_at;`

	findProfileByUserID = `SELECT profile_id, user_id, handle, bio, avatar, created_at
    FROM profiles
    WHERE user_id = $1;`

	profileExists = `SELECT EXISTS (SELECT 1 FROM profiles WHERE user_id = $1);`
)

// postColumns is the canonical column list for the posts table. Every SELECT
// and every RETURNING clause uses it so that scanPost stays in one place.
var postColumns = []string{
	"post_id",
	"user_id",
	"text",
	"name",
	"avatar",
	"likes",
	"comments",
	"created_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildSelectAllPostsQuery builds the feed query: every post, newest first.
func buildSelectAllPostsQuery() (string, []any, error) {
	query, args, err := psql.
		Select(postColumns...).
		From("posts").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectPostByIDQuery(id int64) (string, []any, error) {
	query, args, err := psql.
		Select(postColumns...).
		From("posts").
		Where(sq.Eq{"post_id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildInsertPostQuery(userID int64, text, name, avatar string) (string, []any, error) {
	query, args, err := psql.
		Insert("posts").
		Columns("user_id", "text", "name", "avatar").
		Values(userID, text, name, avatar).
		Suffix("RETURNING " + joinColumns(postColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeletePostQuery(id int64) (string, []any, error) {
	query, args, err := psql.
		Delete("posts").
		Where(sq.Eq{"post_id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdatePostDocumentQuery builds the write-back of a single JSONB
// document column ("likes" or "comments"). doc must already be serialized.
func buildUpdatePostDocumentQuery(id int64, column string, doc []byte) (string, []any, error) {
	query, args, err := psql.
		Update("posts").
		Set(column, doc).
		Where(sq.Eq{"post_id": id}).
		Suffix("RETURNING " + joinColumns(postColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func joinColumns(cols []string) string {
	out := ""
	for i, c := range cols {
		if i > 0 {
			out += ", "
		}
		out += c
	}
	return out
}
