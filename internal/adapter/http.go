package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-post-board/internal/config"
	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/utils"
	"github.com/MKhiriev/go-post-board/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the user credentials to
// POST /api/auth/register. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns an error if
// the request fails, the server returns a non-2xx status, or the token cannot
// be parsed.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return h.adoptToken(resp, user)
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns an error if
// the request fails, the server returns a non-2xx status, or the token cannot
// be parsed.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return h.adoptToken(resp, user)
}

func (h *httpServerAdapter) adoptToken(resp *resty.Response, user models.User) (models.User, error) {
	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("parse bearer token: %w", err)
	}

	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.User{}, fmt.Errorf("parse user id from token: %w", err)
	}

	h.SetToken(token)
	return models.User{UserID: userID, Login: user.Login, Name: user.Name}, nil
}

// CreateProfile implements [ServerAdapter]. It POSTs the profile to
// POST /api/profile and returns the stored record. Requires a valid bearer
// token.
func (h *httpServerAdapter) CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	var created models.Profile

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(profile).
		SetResult(&created).
		Post("/api/profile")
	if err != nil {
		return models.Profile{}, fmt.Errorf("create profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	return created, nil
}

// GetOwnProfile implements [ServerAdapter]. It GETs GET /api/profile and
// returns the authenticated user's profile. Requires a valid bearer token.
func (h *httpServerAdapter) GetOwnProfile(ctx context.Context) (models.Profile, error) {
	var profile models.Profile

	resp, err := h.authedRequest(ctx).
		SetResult(&profile).
		Get("/api/profile")
	if err != nil {
		return models.Profile{}, fmt.Errorf("get profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	return profile, nil
}

// ListPosts implements [ServerAdapter]. It GETs GET /api/posts/ and decodes
// the feed. No token is required.
func (h *httpServerAdapter) ListPosts(ctx context.Context) ([]models.Post, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/posts/")
	if err != nil {
		return nil, fmt.Errorf("list posts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var posts []models.Post
	if err = json.Unmarshal(resp.Body(), &posts); err != nil {
		return nil, fmt.Errorf("decode posts response: %w", err)
	}

	return posts, nil
}

// GetPost implements [ServerAdapter]. It GETs GET /api/posts/{id} and decodes
// the single post. No token is required.
func (h *httpServerAdapter) GetPost(ctx context.Context, id int64) (models.Post, error) {
	var post models.Post

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&post).
		Get("/api/posts/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.Post{}, fmt.Errorf("get post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

// CreatePost implements [ServerAdapter]. It POSTs the input to
// POST /api/posts/ and returns the stored document. Requires a valid bearer
// token and an existing profile.
func (h *httpServerAdapter) CreatePost(ctx context.Context, input models.PostInput) (models.Post, error) {
	var post models.Post

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		SetResult(&post).
		Post("/api/posts/")
	if err != nil {
		return models.Post{}, fmt.Errorf("create post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

// DeletePost implements [ServerAdapter]. It sends DELETE /api/posts/{id}.
// Requires a valid bearer token; the server enforces post ownership.
func (h *httpServerAdapter) DeletePost(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/posts/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("delete post request: %w", err)
	}

	return mapHTTPError(resp)
}

// LikePost implements [ServerAdapter]. It POSTs to POST /api/posts/like/{id}
// and returns the updated document. Requires a valid bearer token.
func (h *httpServerAdapter) LikePost(ctx context.Context, id int64) (models.Post, error) {
	return h.mutatePost(ctx, "/api/posts/like/"+strconv.FormatInt(id, 10), nil)
}

// UnlikePost implements [ServerAdapter]. It POSTs to
// POST /api/posts/unlike/{id} and returns the updated document. Requires a
// valid bearer token.
func (h *httpServerAdapter) UnlikePost(ctx context.Context, id int64) (models.Post, error) {
	return h.mutatePost(ctx, "/api/posts/unlike/"+strconv.FormatInt(id, 10), nil)
}

// AddComment implements [ServerAdapter]. It POSTs the comment input to
// POST /api/posts/comment/{id} and returns the updated document. Requires a
// valid bearer token and an existing profile.
func (h *httpServerAdapter) AddComment(ctx context.Context, id int64, input models.PostInput) (models.Post, error) {
	return h.mutatePost(ctx, "/api/posts/comment/"+strconv.FormatInt(id, 10), input)
}

// DeleteComment implements [ServerAdapter]. It sends
// DELETE /api/posts/comment/{id}/{commentID} and returns the updated
// document. Requires a valid bearer token.
func (h *httpServerAdapter) DeleteComment(ctx context.Context, id int64, commentID string) (models.Post, error) {
	var post models.Post

	resp, err := h.authedRequest(ctx).
		SetResult(&post).
		Delete("/api/posts/comment/" + strconv.FormatInt(id, 10) + "/" + url.PathEscape(commentID))
	if err != nil {
		return models.Post{}, fmt.Errorf("delete comment request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

func (h *httpServerAdapter) mutatePost(ctx context.Context, path string, body any) (models.Post, error) {
	var post models.Post

	req := h.authedRequest(ctx).SetResult(&post)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Post(path)
	if err != nil {
		return models.Post{}, fmt.Errorf("post mutation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
