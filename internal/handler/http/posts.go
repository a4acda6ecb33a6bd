package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/store"
	"github.com/MKhiriev/go-post-board/internal/utils"
	"github.com/MKhiriev/go-post-board/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.PostService.ListPosts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	id, ok := postIDFromRequest(w, r)
	if !ok {
		return
	}

	post, err := h.services.PostService.GetPost(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var input models.PostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	post, err := h.services.PostService.CreatePost(r.Context(), input, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusCreated)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id, ok := postIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.PostService.DeletePost(r.Context(), id, userID); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DeleteAck{Success: true}, http.StatusOK)
}

func (h *Handler) likePost(w http.ResponseWriter, r *http.Request) {
	h.mutateLikes(w, r, h.services.PostService.LikePost)
}

func (h *Handler) unlikePost(w http.ResponseWriter, r *http.Request) {
	h.mutateLikes(w, r, h.services.PostService.UnlikePost)
}

// mutateLikes factors the shared shape of like and unlike: resolve the acting
// user, parse the post id, run the mutation, return the resulting post.
func (h *Handler) mutateLikes(w http.ResponseWriter, r *http.Request, mutate func(ctx context.Context, id, userID int64) (models.Post, error)) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id, ok := postIDFromRequest(w, r)
	if !ok {
		return
	}

	post, err := mutate(r.Context(), id, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) addComment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id, ok := postIDFromRequest(w, r)
	if !ok {
		return
	}

	var input models.PostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	post, err := h.services.PostService.AddComment(r.Context(), id, input, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusCreated)
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id, ok := postIDFromRequest(w, r)
	if !ok {
		return
	}

	commentID := chi.URLParam(r, "commentID")

	post, err := h.services.PostService.DeleteComment(r.Context(), id, commentID, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

// postIDFromRequest parses the {id} URL parameter. A malformed id is
// indistinguishable from a missing post to the caller, so it maps to the same
// not-found response. Reports ok=false after writing the error response.
func postIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logger.FromRequest(r).Debug().Str("id", raw).Msg("malformed post id")
		writeError(w, r, store.ErrPostNotFound)
		return 0, false
	}

	return id, true
}
