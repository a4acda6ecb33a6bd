// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-post-board/internal/service"
	"github.com/MKhiriev/go-post-board/internal/store"
	"github.com/MKhiriev/go-post-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProfile(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router := newTestRouter(t, &service.Services{
			ProfileService: &mockProfileService{
				createFn: func(ctx context.Context, profile models.Profile, userID int64) (models.Profile, error) {
					assert.Equal(t, int64(7), userID)
					assert.Equal(t, "alice", profile.Handle)
					profile.ProfileID = 1
					profile.UserID = userID
					return profile, nil
				},
			},
		})

		rec := doRequest(t, router, http.MethodPost, "/api/profile",
			`{"handle":"alice","bio":"hi","avatar":"a.png"}`, true)

		require.Equal(t, http.StatusCreated, rec.Code)

		var got models.Profile
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, int64(7), got.UserID)
		assert.Equal(t, "alice", got.Handle)
	})

	t.Run("AlreadyExists", func(t *testing.T) {
		router := newTestRouter(t, &service.Services{
			ProfileService: &mockProfileService{
				createFn: func(ctx context.Context, profile models.Profile, userID int64) (models.Profile, error) {
					return models.Profile{}, store.ErrProfileAlreadyExists
				},
			},
		})

		rec := doRequest(t, router, http.MethodPost, "/api/profile", `{"handle":"alice"}`, true)

		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, decodeBody(t, rec), "profile_already_exists")
	})

	t.Run("EmptyHandle", func(t *testing.T) {
		router := newTestRouter(t, &service.Services{
			ProfileService: &mockProfileService{
				createFn: func(ctx context.Context, profile models.Profile, userID int64) (models.Profile, error) {
					return models.Profile{}, service.ErrInvalidDataProvided
				},
			},
		})

		rec := doRequest(t, router, http.MethodPost, "/api/profile", `{"handle":""}`, true)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeBody(t, rec), "invalid_data")
	})

	t.Run("NoToken", func(t *testing.T) {
		router := newTestRouter(t, &service.Services{ProfileService: &mockProfileService{}})

		rec := doRequest(t, router, http.MethodPost, "/api/profile", `{"handle":"alice"}`, false)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestGetOwnProfile(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router := newTestRouter(t, &service.Services{
			ProfileService: &mockProfileService{
				getOwnFn: func(ctx context.Context, userID int64) (models.Profile, error) {
					assert.Equal(t, int64(7), userID)
					return models.Profile{ProfileID: 1, UserID: userID, Handle: "alice"}, nil
				},
			},
		})

		rec := doRequest(t, router, http.MethodGet, "/api/profile", "", true)

		require.Equal(t, http.StatusOK, rec.Code)

		var got models.Profile
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "alice", got.Handle)
	})

	t.Run("NotFound", func(t *testing.T) {
		router := newTestRouter(t, &service.Services{
			ProfileService: &mockProfileService{
				getOwnFn: func(ctx context.Context, userID int64) (models.Profile, error) {
					return models.Profile{}, store.ErrProfileNotFound
				},
			},
		})

		rec := doRequest(t, router, http.MethodGet, "/api/profile", "", true)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, decodeBody(t, rec), "profile_not_found")
	})
}
