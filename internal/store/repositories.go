package store

import (
	"github.com/MKhiriev/go-post-board/internal/logger"
)

type Repositories struct {
	UserRepository    UserRepository
	ProfileRepository ProfileRepository
	PostRepository    PostRepository
}

func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db, logger),
		ProfileRepository: NewProfileRepository(db, logger),
		PostRepository:    NewPostRepository(db, logger),
	}
}
