package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/models"
	"github.com/jackc/pgerrcode"
)

func newTestProfileRepo(t *testing.T) (*profileRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &profileRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestCreateProfile_Success(t *testing.T) {
	repo, mock, db := newTestProfileRepo(t)
	defer db.Close()

	ctx := context.Background()
	profile := models.Profile{UserID: 7, Handle: "alice", Bio: "hi", Avatar: "a.png"}
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"profile_id", "user_id", "handle", "bio", "avatar", "created_at"}).
		AddRow(1, profile.UserID, profile.Handle, profile.Bio, profile.Avatar, now)

	mock.ExpectQuery("INSERT INTO profiles").
		WithArgs(profile.UserID, profile.Handle, profile.Bio, profile.Avatar).
		WillReturnRows(rows)

	created, err := repo.CreateProfile(ctx, profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ProfileID != 1 {
		t.Errorf("expected ProfileID=1, got %d", created.ProfileID)
	}
}

func TestCreateProfile_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestProfileRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO profiles").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateProfile(ctx, models.Profile{UserID: 7, Handle: "alice"})
	if !errors.Is(err, ErrProfileAlreadyExists) {
		t.Fatalf("expected ErrProfileAlreadyExists, got %v", err)
	}
}

func TestGetProfileByUserID_NotFound(t *testing.T) {
	repo, mock, db := newTestProfileRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM profiles").
		WithArgs(int64(7)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetProfileByUserID(ctx, 7)
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestProfileExists(t *testing.T) {
	repo, mock, db := newTestProfileRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ProfileExists(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Error("expected exists=true")
	}
}

func TestProfileExists_QueryError(t *testing.T) {
	repo, mock, db := newTestProfileRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(7)).
		WillReturnError(errors.New("db down"))

	_, err := repo.ProfileExists(ctx, 7)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
