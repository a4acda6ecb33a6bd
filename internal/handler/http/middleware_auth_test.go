// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/service"
	"github.com/MKhiriev/go-post-board/internal/utils"
	"github.com/MKhiriev/go-post-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authProbe wraps the auth middleware around a handler that records the user
// id it finds in the request context.
func authProbe(t *testing.T, auth service.AuthService) (http.Handler, *int64, *bool) {
	t.Helper()

	h := NewHandler(&service.Services{AuthService: auth}, logger.Nop())

	var gotUserID int64
	var reached bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		gotUserID, _ = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	return h.auth(next), &gotUserID, &reached
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("ValidTokenPutsUserIDIntoContext", func(t *testing.T) {
		handler, gotUserID, reached := authProbe(t, &mockAuthService{
			parseTokenFn: func(ctx context.Context, tokenString string) (models.Token, error) {
				assert.Equal(t, "valid-token", tokenString)
				return models.Token{UserID: 7}, nil
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
		req.Header.Set("Authorization", "Bearer valid-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, *reached)
		assert.Equal(t, int64(7), *gotUserID)
	})

	t.Run("MissingHeader", func(t *testing.T) {
		handler, _, reached := authProbe(t, &mockAuthService{})

		req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, *reached)
	})

	t.Run("HeaderWithoutToken", func(t *testing.T) {
		handler, _, reached := authProbe(t, &mockAuthService{})

		req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
		req.Header.Set("Authorization", "Bearer")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, *reached)
	})

	t.Run("ExpiredOrGarbageToken", func(t *testing.T) {
		handler, _, reached := authProbe(t, &mockAuthService{
			parseTokenFn: func(ctx context.Context, tokenString string) (models.Token, error) {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, *reached)
	})
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	t.Run("Bearer", func(t *testing.T) {
		token, err := getTokenFromAuthHeader("Bearer abc.def.ghi")
		require.NoError(t, err)
		assert.Equal(t, "abc.def.ghi", token)
	})

	t.Run("NoScheme", func(t *testing.T) {
		_, err := getTokenFromAuthHeader("abc.def.ghi")
		require.ErrorIs(t, err, ErrInvalidAuthorizationHeader)
	})

	t.Run("EmptyToken", func(t *testing.T) {
		_, err := getTokenFromAuthHeader("Bearer ")
		require.ErrorIs(t, err, ErrEmptyToken)
	})
}
