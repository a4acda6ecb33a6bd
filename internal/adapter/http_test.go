// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-post-board/internal/config"
	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/utils"
	"github.com/MKhiriev/go-post-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, handler http.Handler) ServerAdapter {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return a
}

// issueToken builds a real signed token so the adapter can extract the user id
// from it without knowing the sign key.
func issueToken(t *testing.T, userID int64) string {
	t.Helper()

	token, err := utils.GenerateJWTToken("post-board", userID, time.Hour, "test-sign-key")
	require.NoError(t, err)
	return token.SignedString
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any, status int) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ─────────────────────────────────────────────
// Construction
// ─────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "SchemeKept", in: "http://localhost:8080", want: "http://localhost:8080"},
		{name: "SchemeAdded", in: "localhost:8080", want: "http://localhost:8080"},
		{name: "TrailingSlashTrimmed", in: "http://localhost:8080/", want: "http://localhost:8080"},
		{name: "WhitespaceTrimmed", in: "  localhost:8080  ", want: "http://localhost:8080"},
		{name: "Empty", in: "", wantErr: true},
		{name: "Blank", in: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	require.Error(t, err)
}

// ─────────────────────────────────────────────
// Auth flows
// ─────────────────────────────────────────────

func TestRegister(t *testing.T) {
	t.Run("AdoptsTokenFromHeader", func(t *testing.T) {
		signed := issueToken(t, 7)

		a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/api/auth/register", r.URL.Path)

			var user models.User
			require.NoError(t, json.NewDecoder(r.Body).Decode(&user))
			assert.Equal(t, "alice", user.Login)

			w.Header().Set("Authorization", "Bearer "+signed)
			w.WriteHeader(http.StatusOK)
		}))

		user, err := a.Register(context.Background(), models.User{Login: "alice", Password: "secret", Name: "Alice"})

		require.NoError(t, err)
		assert.Equal(t, int64(7), user.UserID)
		assert.Equal(t, "alice", user.Login)
		assert.Equal(t, signed, a.Token())
	})

	t.Run("Conflict", func(t *testing.T) {
		a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, map[string]string{"login_already_exists": "login already exists"}, http.StatusConflict)
		}))

		_, err := a.Register(context.Background(), models.User{Login: "alice", Password: "secret"})

		require.ErrorIs(t, err, ErrConflict)
		assert.Empty(t, a.Token())
	})

	t.Run("MissingAuthorizationHeader", func(t *testing.T) {
		a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		_, err := a.Register(context.Background(), models.User{Login: "alice", Password: "secret"})
		require.Error(t, err)
	})
}

func TestLogin(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		signed := issueToken(t, 42)

		a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/auth/login", r.URL.Path)
			w.Header().Set("Authorization", "Bearer "+signed)
			w.WriteHeader(http.StatusOK)
		}))

		user, err := a.Login(context.Background(), models.User{Login: "alice", Password: "secret"})

		require.NoError(t, err)
		assert.Equal(t, int64(42), user.UserID)
		assert.Equal(t, signed, a.Token())
	})

	t.Run("WrongCredentials", func(t *testing.T) {
		a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, map[string]string{"invalid_credentials": "invalid login/password"}, http.StatusUnauthorized)
		}))

		_, err := a.Login(context.Background(), models.User{Login: "alice", Password: "wrong"})
		require.ErrorIs(t, err, ErrUnauthorized)
	})
}

// ─────────────────────────────────────────────
// Profile
// ─────────────────────────────────────────────

func TestProfileEndpoints(t *testing.T) {
	t.Run("CreateSendsBearerToken", func(t *testing.T) {
		a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/api/profile", r.URL.Path)
			assert.Equal(t, "Bearer my-token", r.Header.Get("Authorization"))

			var profile models.Profile
			require.NoError(t, json.NewDecoder(r.Body).Decode(&profile))
			profile.UserID = 7
			writeJSON(t, w, profile, http.StatusCreated)
		}))
		a.SetToken("my-token")

		created, err := a.CreateProfile(context.Background(), models.Profile{Handle: "alice"})

		require.NoError(t, err)
		assert.Equal(t, "alice", created.Handle)
		assert.Equal(t, int64(7), created.UserID)
	})

	t.Run("GetOwnNotFound", func(t *testing.T) {
		a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, map[string]string{"profile_not_found": "no profile found for this user"}, http.StatusNotFound)
		}))
		a.SetToken("my-token")

		_, err := a.GetOwnProfile(context.Background())
		require.ErrorIs(t, err, ErrNotFound)
	})
}

// ─────────────────────────────────────────────
// Posts
// ─────────────────────────────────────────────

func TestPostEndpoints(t *testing.T) {
	post := models.Post{ID: 42, UserID: 7, Text: "hello", Name: "alice"}

	t.Run("ListPosts", func(t *testing.T) {
		a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/posts/", r.URL.Path)
			writeJSON(t, w, []models.Post{post}, http.StatusOK)
		}))

		posts, err := a.ListPosts(context.Background())

		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, int64(42), posts[0].ID)
	})

	t.Run("GetPostNotFound", func(t *testing.T) {
		a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, map[string]string{"post_not_found": "no post found with that id"}, http.StatusNotFound)
		}))

		_, err := a.GetPost(context.Background(), 9000)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("CreatePost", func(t *testing.T) {
		a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/api/posts/", r.URL.Path)
			assert.Equal(t, "Bearer my-token", r.Header.Get("Authorization"))
			writeJSON(t, w, post, http.StatusCreated)
		}))
		a.SetToken("my-token")

		created, err := a.CreatePost(context.Background(), models.PostInput{Text: "hello", Name: "alice"})

		require.NoError(t, err)
		assert.Equal(t, int64(42), created.ID)
	})

	t.Run("DeletePost", func(t *testing.T) {
		a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodDelete, r.Method)
			require.Equal(t, "/api/posts/42", r.URL.Path)
			writeJSON(t, w, models.DeleteAck{Success: true}, http.StatusOK)
		}))
		a.SetToken("my-token")

		require.NoError(t, a.DeletePost(context.Background(), 42))
	})

	t.Run("LikeAlreadyLiked", func(t *testing.T) {
		a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/posts/like/42", r.URL.Path)
			writeJSON(t, w, map[string]string{"already_liked": "user already liked this post"}, http.StatusBadRequest)
		}))
		a.SetToken("my-token")

		_, err := a.LikePost(context.Background(), 42)
		require.ErrorIs(t, err, ErrBadRequest)
	})

	t.Run("UnlikeReturnsUpdatedPost", func(t *testing.T) {
		a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/posts/unlike/42", r.URL.Path)
			writeJSON(t, w, post, http.StatusOK)
		}))
		a.SetToken("my-token")

		got, err := a.UnlikePost(context.Background(), 42)

		require.NoError(t, err)
		assert.Equal(t, int64(42), got.ID)
	})

	t.Run("AddComment", func(t *testing.T) {
		a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/posts/comment/42", r.URL.Path)

			var input models.PostInput
			require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
			assert.Equal(t, "nice", input.Text)

			commented := post
			commented.Comments = []models.Comment{{ID: "c-1", Text: "nice"}}
			writeJSON(t, w, commented, http.StatusCreated)
		}))
		a.SetToken("my-token")

		got, err := a.AddComment(context.Background(), 42, models.PostInput{Text: "nice", Name: "alice"})

		require.NoError(t, err)
		require.Len(t, got.Comments, 1)
	})

	t.Run("DeleteCommentEscapesID", func(t *testing.T) {
		a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/api/posts/comment/42/c%2F1", r.URL.EscapedPath())
			writeJSON(t, w, post, http.StatusOK)
		}))
		a.SetToken("my-token")

		_, err := a.DeleteComment(context.Background(), 42, "c/1")
		require.NoError(t, err)
	})
}
