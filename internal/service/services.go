package service

import (
	"github.com/MKhiriev/go-post-board/internal/config"
	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/store"
	"github.com/MKhiriev/go-post-board/internal/utils"
	"github.com/MKhiriev/go-post-board/internal/validators"
)

type Services struct {
	AuthService    AuthService
	ProfileService ProfileService
	PostService    PostService
}

func NewServices(repositories *store.Repositories, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	postValidator := validators.NewPostValidator()

	return &Services{
		AuthService:    NewAuthService(repositories.UserRepository, cfg.App, logger),
		ProfileService: NewProfileService(repositories.ProfileRepository, logger),
		PostService:    NewPostService(repositories.PostRepository, repositories.ProfileRepository, postValidator, utils.NewUUIDGenerator(), logger),
	}
}
