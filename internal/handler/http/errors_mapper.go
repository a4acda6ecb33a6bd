package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/service"
	"github.com/MKhiriev/go-post-board/internal/store"
	"github.com/MKhiriev/go-post-board/internal/utils"
	"github.com/MKhiriev/go-post-board/internal/validators"
)

// errorShape describes how a well-known error surfaces over HTTP: the status
// code plus the single descriptive key and message of the JSON body.
type errorShape struct {
	status  int
	key     string
	message string
}

var errorShapeMap = map[error]errorShape{
	service.ErrInvalidDataProvided: {http.StatusBadRequest, "invalid_data", "invalid data provided"},
	service.ErrWrongPassword:       {http.StatusUnauthorized, "invalid_credentials", "invalid login/password"},

	service.ErrAlreadyLiked:   {http.StatusBadRequest, "already_liked", "user already liked this post"},
	service.ErrNotLiked:       {http.StatusBadRequest, "not_liked", "user has not yet liked this post"},
	service.ErrNotPostOwner:   {http.StatusUnauthorized, "not_authorized", "user is not authorized to delete this post"},
	service.ErrCommentNotFound: {http.StatusNotFound, "comment_not_found", "comment does not exist"},

	store.ErrPostNotFound:         {http.StatusNotFound, "post_not_found", "no post found with that id"},
	store.ErrProfileNotFound:      {http.StatusNotFound, "profile_not_found", "no profile found for this user"},
	store.ErrNoUserWasFound:       {http.StatusUnauthorized, "invalid_credentials", "invalid login/password"},
	store.ErrLoginAlreadyExists:   {http.StatusConflict, "login_already_exists", "login already exists"},
	store.ErrProfileAlreadyExists: {http.StatusConflict, "profile_already_exists", "profile already exists"},
}

// writeError maps err onto the HTTP response.
//
// Validation failures serialize their field-error map unchanged with 400.
// Well-known sentinels take their shape from [errorShapeMap]. Anything else,
// including every store infrastructure error, is a 500; "not found" is never
// used to mask a failing backend.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	if fieldErrors, ok := validators.AsFieldErrors(err); ok {
		utils.WriteJSON(w, fieldErrors, http.StatusBadRequest)
		return
	}

	for target, shape := range errorShapeMap {
		if errors.Is(err, target) {
			utils.WriteJSON(w, map[string]string{shape.key: shape.message}, shape.status)
			return
		}
	}

	log.Err(err).Msg("unexpected error reached the transport layer")
	utils.WriteJSON(w, map[string]string{"server_error": http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
}
