package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/store"
	"github.com/MKhiriev/go-post-board/models"
)

// profileService is the concrete implementation of [ProfileService].
type profileService struct {
	profileRepository store.ProfileRepository

	logger *logger.Logger
}

// NewProfileService constructs a [ProfileService] backed by the given
// repository.
func NewProfileService(profileRepository store.ProfileRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		profileRepository: profileRepository,
		logger:            logger,
	}
}

// CreateProfile persists a profile owned by userID. The UserID on the input
// is ignored; ownership always comes from the authenticated context.
//
// Returns ErrInvalidDataProvided when the handle is empty, or a wrapped
// storage error (e.g. store.ErrProfileAlreadyExists).
func (p *profileService) CreateProfile(ctx context.Context, profile models.Profile, userID int64) (models.Profile, error) {
	log := logger.FromContext(ctx)

	if profile.Handle == "" {
		log.Error().Int64("user_id", userID).Msg("empty profile handle provided")
		return models.Profile{}, ErrInvalidDataProvided
	}

	profile.UserID = userID

	created, err := p.profileRepository.CreateProfile(ctx, profile)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("profile creation ended with error")
		return models.Profile{}, fmt.Errorf("profile creation ended with error: %w", err)
	}

	return created, nil
}

// GetOwnProfile returns the acting user's profile, or
// store.ErrProfileNotFound when none exists.
func (p *profileService) GetOwnProfile(ctx context.Context, userID int64) (models.Profile, error) {
	return p.profileRepository.GetProfileByUserID(ctx, userID)
}
