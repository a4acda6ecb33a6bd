package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/models"
	"github.com/jackc/pgerrcode"
)

// profileRepository is the PostgreSQL-backed implementation of
// [ProfileRepository] over the "profiles" table.
type profileRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProfileRepository constructs a [ProfileRepository] backed by the
// provided database connection and logger.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

// CreateProfile persists a new profile and returns it with server-assigned
// fields (ProfileID, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrProfileAlreadyExists]
//     (one profile per user, unique handle).
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *profileRepository) CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createProfile, profile.UserID, profile.Handle, profile.Bio, profile.Avatar)

	if err := row.Scan(&profile.ProfileID, &profile.UserID, &profile.Handle, &profile.Bio, &profile.Avatar, &profile.CreatedAt); err != nil {
		log.Err(err).Str("func", "*profileRepository.CreateProfile").Int64("user_id", profile.UserID).Msg("error: scanning created profile")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Profile{}, ErrProfileAlreadyExists
		default:
			return models.Profile{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return profile, nil
}

// GetProfileByUserID retrieves the profile owned by userID, or
// [ErrProfileNotFound] if the user has none.
func (r *profileRepository) GetProfileByUserID(ctx context.Context, userID int64) (models.Profile, error) {
	log := logger.FromContext(ctx)

	var profile models.Profile
	row := r.db.QueryRowContext(ctx, findProfileByUserID, userID)

	if err := row.Scan(&profile.ProfileID, &profile.UserID, &profile.Handle, &profile.Bio, &profile.Avatar, &profile.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, ErrProfileNotFound
		}

		log.Err(err).Str("func", "*profileRepository.GetProfileByUserID").Int64("user_id", userID).Msg("error: scanning found profile")
		return models.Profile{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return profile, nil
}

// ProfileExists reports whether userID has a profile. It is a cheap
// existence probe used as a precondition for social mutations.
func (r *profileRepository) ProfileExists(ctx context.Context, userID int64) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	row := r.db.QueryRowContext(ctx, profileExists, userID)

	if err := row.Scan(&exists); err != nil {
		log.Err(err).Str("func", "*profileRepository.ProfileExists").Int64("user_id", userID).Msg("error: scanning exists flag")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}
