package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bloghub/internal/httputil"
	"bloghub/internal/model"
	"bloghub/internal/service"
	"bloghub/internal/transport/http/middleware"
)

type FollowHandler struct {
	followService *service.FollowService
}

func NewFollowHandler(followService *service.FollowService) *FollowHandler {
	return &FollowHandler{
		followService: followService,
	}
}

// Follow handles POST /users/{username}/follow
// Idempotent: re-following a followed author (or yourself) succeeds without
// changing anything.
func (h *FollowHandler) Follow(w http.ResponseWriter, r *http.Request) {
	followerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	username := chi.URLParam(r, "username")

	if err := h.followService.Follow(r.Context(), followerID, username); err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			httputil.WriteNotFound(w, "User not found")
			return
		}
		log.Printf("[ERROR] Follow handler: %v", err)
		httputil.WriteInternalError(w, "Failed to follow user")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Following " + username,
	})
}

// Unfollow handles DELETE /users/{username}/follow
// Idempotent: unfollowing an author you do not follow succeeds.
func (h *FollowHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	followerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	username := chi.URLParam(r, "username")

	if err := h.followService.Unfollow(r.Context(), followerID, username); err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			httputil.WriteNotFound(w, "User not found")
			return
		}
		log.Printf("[ERROR] Unfollow handler: %v", err)
		httputil.WriteInternalError(w, "Failed to unfollow user")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Not following " + username,
	})
}
