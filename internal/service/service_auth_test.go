// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-post-board/internal/config"
	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/store"
	"github.com/MKhiriev/go-post-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn func(ctx context.Context, user models.User) (models.User, error)
	findFn   func(ctx context.Context, login string) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	if m.findFn != nil {
		return m.findFn(ctx, login)
	}
	return models.User{}, nil
}

func newTestAuthService(users *mockUserRepository) AuthService {
	return NewAuthService(users, config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "post-board",
		TokenDuration: time.Hour,
	}, logger.Nop())
}

// ─────────────────────────────────────────────
// RegisterUser
// ─────────────────────────────────────────────

func TestAuthService_RegisterUser_HashesPassword(t *testing.T) {
	users := &mockUserRepository{
		createFn: func(_ context.Context, user models.User) (models.User, error) {
			assert.Empty(t, user.Password, "plaintext password must be dropped before persistence")
			require.NotEmpty(t, user.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret")))
			user.UserID = 10
			return user, nil
		},
	}
	svc := newTestAuthService(users)

	registered, err := svc.RegisterUser(context.Background(), models.User{Login: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, int64(10), registered.UserID)
}

func TestAuthService_RegisterUser_EmptyCredentials(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "alice"})

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_RegisterUser_LoginTaken(t *testing.T) {
	users := &mockUserRepository{
		createFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrLoginAlreadyExists
		},
	}
	svc := newTestAuthService(users)

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "alice", Password: "secret"})

	require.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &mockUserRepository{
		findFn: func(_ context.Context, login string) (models.User, error) {
			assert.Equal(t, "alice", login)
			return models.User{UserID: 10, Login: login, PasswordHash: string(hash)}, nil
		},
	}
	svc := newTestAuthService(users)

	user, err := svc.Login(context.Background(), models.User{Login: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, int64(10), user.UserID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &mockUserRepository{
		findFn: func(_ context.Context, login string) (models.User, error) {
			return models.User{UserID: 10, Login: login, PasswordHash: string(hash)}, nil
		},
	}
	svc := newTestAuthService(users)

	_, err = svc.Login(context.Background(), models.User{Login: "alice", Password: "nope"})

	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	users := &mockUserRepository{
		findFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(users)

	_, err := svc.Login(context.Background(), models.User{Login: "ghost", Password: "secret"})

	require.ErrorIs(t, err, store.ErrNoUserWasFound)
}

// ─────────────────────────────────────────────
// Tokens
// ─────────────────────────────────────────────

func TestAuthService_CreateToken_RoundTrip(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	token, err := svc.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestAuthService_ParseToken_WrongKey(t *testing.T) {
	issuing := newTestAuthService(&mockUserRepository{})
	verifying := NewAuthService(&mockUserRepository{}, config.App{
		TokenSignKey:  "different-key",
		TokenIssuer:   "post-board",
		TokenDuration: time.Hour,
	}, logger.Nop())

	token, err := issuing.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)

	_, err = verifying.ParseToken(context.Background(), token.SignedString)

	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.ParseToken(context.Background(), "not.a.token")

	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
