// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/service"
	"github.com/MKhiriev/go-post-board/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "stub-token"}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	if tokenString == "valid-token" {
		return models.Token{UserID: 7}, nil
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

// mockProfileService implements service.ProfileService.
type mockProfileService struct {
	createFn func(ctx context.Context, profile models.Profile, userID int64) (models.Profile, error)
	getOwnFn func(ctx context.Context, userID int64) (models.Profile, error)
}

func (m *mockProfileService) CreateProfile(ctx context.Context, profile models.Profile, userID int64) (models.Profile, error) {
	return m.createFn(ctx, profile, userID)
}

func (m *mockProfileService) GetOwnProfile(ctx context.Context, userID int64) (models.Profile, error) {
	return m.getOwnFn(ctx, userID)
}

// mockPostService implements service.PostService.
type mockPostService struct {
	listFn          func(ctx context.Context) ([]models.Post, error)
	getFn           func(ctx context.Context, id int64) (models.Post, error)
	createFn        func(ctx context.Context, input models.PostInput, userID int64) (models.Post, error)
	deleteFn        func(ctx context.Context, id, userID int64) error
	likeFn          func(ctx context.Context, id, userID int64) (models.Post, error)
	unlikeFn        func(ctx context.Context, id, userID int64) (models.Post, error)
	addCommentFn    func(ctx context.Context, id int64, input models.PostInput, userID int64) (models.Post, error)
	deleteCommentFn func(ctx context.Context, id int64, commentID string, userID int64) (models.Post, error)
}

func (m *mockPostService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return m.listFn(ctx)
}

func (m *mockPostService) GetPost(ctx context.Context, id int64) (models.Post, error) {
	return m.getFn(ctx, id)
}

func (m *mockPostService) CreatePost(ctx context.Context, input models.PostInput, userID int64) (models.Post, error) {
	return m.createFn(ctx, input, userID)
}

func (m *mockPostService) DeletePost(ctx context.Context, id, userID int64) error {
	return m.deleteFn(ctx, id, userID)
}

func (m *mockPostService) LikePost(ctx context.Context, id, userID int64) (models.Post, error) {
	return m.likeFn(ctx, id, userID)
}

func (m *mockPostService) UnlikePost(ctx context.Context, id, userID int64) (models.Post, error) {
	return m.unlikeFn(ctx, id, userID)
}

func (m *mockPostService) AddComment(ctx context.Context, id int64, input models.PostInput, userID int64) (models.Post, error) {
	return m.addCommentFn(ctx, id, input, userID)
}

func (m *mockPostService) DeleteComment(ctx context.Context, id int64, commentID string, userID int64) (models.Post, error) {
	return m.deleteCommentFn(ctx, id, commentID, userID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestRouter builds the full router around the given service mocks so
// tests go through the real middleware chain.
func newTestRouter(t *testing.T, svcs *service.Services) http.Handler {
	t.Helper()
	if svcs.AuthService == nil {
		svcs.AuthService = &mockAuthService{}
	}
	return NewHandler(svcs, logger.Nop()).Init()
}

// doRequest performs req against the router and returns the recorder.
func doRequest(t *testing.T, router http.Handler, method, target, body string, authed bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer valid-token")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals the recorder body into a map for error-shape checks.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestNewHandler(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())
	require.NotNil(t, h)
	require.NotNil(t, h.Init())
}
