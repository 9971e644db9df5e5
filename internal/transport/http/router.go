package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"bloghub/internal/handler"
	"bloghub/internal/httputil"
	authmw "bloghub/internal/transport/http/middleware"
)

// RouterConfig holds the dependencies needed to create routes.
// MediaHandler may be nil when object storage is not configured; the upload
// route is simply not mounted then.
type RouterConfig struct {
	AuthHandler    *handler.AuthHandler
	FeedHandler    *handler.FeedHandler
	PostHandler    *handler.PostHandler
	CommentHandler *handler.CommentHandler
	FollowHandler  *handler.FollowHandler
	GroupHandler   *handler.GroupHandler
	MediaHandler   *handler.MediaHandler
	JWTSecret      string
}

// NewRouter creates and configures a new Chi router with all route groups
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	// Health check endpoint (useful for deployment/monitoring)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, 200, map[string]string{"status": "ok"})
	})

	// Public routes - no authentication required
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.AuthHandler.Register)
		r.Post("/login", cfg.AuthHandler.Login)
		r.Post("/logout", cfg.AuthHandler.Logout)
	})

	// Feeds and read views: anonymous viewers welcome, an attached identity
	// only changes what the followed feed contains.
	r.Group(func(r chi.Router) {
		r.Use(authmw.OptionalAuthMiddleware(cfg.JWTSecret))

		r.Get("/posts", cfg.FeedHandler.Global)
		r.Get("/posts/{id}", cfg.PostHandler.GetByID)
		r.Get("/posts/{id}/comments", cfg.CommentHandler.List)
		r.Get("/feed", cfg.FeedHandler.Followed)
		r.Get("/groups", cfg.GroupHandler.List)
		r.Get("/groups/{slug}", cfg.GroupHandler.GetBySlug)
		r.Get("/groups/{slug}/posts", cfg.FeedHandler.Group)
		r.Get("/users/{username}/posts", cfg.FeedHandler.Author)
	})

	// Protected routes - require authentication
	r.Group(func(r chi.Router) {
		r.Use(authmw.AuthMiddleware(cfg.JWTSecret))

		r.Get("/me", cfg.AuthHandler.Me)

		r.Post("/posts", cfg.PostHandler.Create)
		r.Put("/posts/{id}", cfg.PostHandler.Update)
		r.Post("/posts/{id}/comments", cfg.CommentHandler.Create)

		r.Post("/users/{username}/follow", cfg.FollowHandler.Follow)
		r.Delete("/users/{username}/follow", cfg.FollowHandler.Unfollow)

		r.Post("/groups", cfg.GroupHandler.Create)
		r.Delete("/groups/{slug}", cfg.GroupHandler.Delete)

		if cfg.MediaHandler != nil {
			r.Post("/media/posts", cfg.MediaHandler.UploadPostImage)
		}
	})

	// Fixed error surfaces: unknown routes get the standard 404 envelope,
	// wrong methods a 405. Panics are turned into the 500 envelope upstream
	// by the Recoverer middleware.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteNotFound(w, "Page not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteError(w, http.StatusMethodNotAllowed, httputil.ErrCodeBadRequest, "Method not allowed")
	})

	return r
}
