package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)

		r.Get("/api/posts/", h.listPosts)
		r.Get("/api/posts/{id}", h.getPost)
	})

	// routes behind the bearer-token middleware
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/profile", h.createProfile)
		r.Get("/api/profile", h.getOwnProfile)

		r.Post("/api/posts/", h.createPost)
		r.Delete("/api/posts/{id}", h.deletePost)
		r.Post("/api/posts/like/{id}", h.likePost)
		r.Post("/api/posts/unlike/{id}", h.unlikePost)
		r.Post("/api/posts/comment/{id}", h.addComment)
		r.Delete("/api/posts/comment/{id}/{commentID}", h.deleteComment)
	})

	return router
}
