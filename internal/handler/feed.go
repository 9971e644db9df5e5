package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"bloghub/internal/httputil"
	"bloghub/internal/model"
	"bloghub/internal/service"
	"bloghub/internal/transport/http/middleware"
)

type FeedHandler struct {
	feedService *service.FeedService
}

func NewFeedHandler(feedService *service.FeedService) *FeedHandler {
	return &FeedHandler{
		feedService: feedService,
	}
}

// Global handles GET /posts
// Returns page k of all posts, newest first.
//
// Query params:
//   - page: optional 1-indexed page number (default 1; out-of-range values
//     are clamped to the last valid page)
func (h *FeedHandler) Global(w http.ResponseWriter, r *http.Request) {
	page, ok := parsePage(w, r)
	if !ok {
		return
	}

	feed, err := h.feedService.Global(r.Context(), page)
	if err != nil {
		log.Printf("[ERROR] Global feed handler: err=%v", err)
		httputil.WriteInternalError(w, "Failed to get feed")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, feed)
}

// Group handles GET /groups/{slug}/posts
func (h *FeedHandler) Group(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	page, ok := parsePage(w, r)
	if !ok {
		return
	}

	feed, err := h.feedService.Group(r.Context(), slug, page)
	if err != nil {
		if errors.Is(err, model.ErrGroupNotFound) {
			httputil.WriteNotFound(w, "Group not found")
			return
		}
		log.Printf("[ERROR] Group feed handler: slug=%s err=%v", slug, err)
		httputil.WriteInternalError(w, "Failed to get feed")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, feed)
}

// Author handles GET /users/{username}/posts
func (h *FeedHandler) Author(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	page, ok := parsePage(w, r)
	if !ok {
		return
	}

	feed, err := h.feedService.Author(r.Context(), username, page)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			httputil.WriteNotFound(w, "User not found")
			return
		}
		log.Printf("[ERROR] Author feed handler: username=%s err=%v", username, err)
		httputil.WriteInternalError(w, "Failed to get feed")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, feed)
}

// Followed handles GET /feed
// Returns posts from the viewer's followed authors. Anonymous viewers get an
// empty page rather than an error.
func (h *FeedHandler) Followed(w http.ResponseWriter, r *http.Request) {
	var viewerID *int64
	if id, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		viewerID = &id
	}

	page, ok := parsePage(w, r)
	if !ok {
		return
	}

	feed, err := h.feedService.Followed(r.Context(), viewerID, page)
	if err != nil {
		log.Printf("[ERROR] Followed feed handler: err=%v", err)
		httputil.WriteInternalError(w, "Failed to get feed")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, feed)
}

// parsePage reads the optional ?page= query parameter. Returns ok=false after
// writing a 400 when the value is not a number; range errors never occur
// because out-of-range pages are clamped downstream.
func parsePage(w http.ResponseWriter, r *http.Request) (int, bool) {
	page := 1
	if p := r.URL.Query().Get("page"); p != "" {
		parsed, err := strconv.Atoi(p)
		if err != nil {
			httputil.WriteBadRequest(w, "Invalid page parameter")
			return 0, false
		}
		page = parsed
	}
	return page, true
}
