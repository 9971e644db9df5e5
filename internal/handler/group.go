package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bloghub/internal/httputil"
	"bloghub/internal/model"
	"bloghub/internal/service"
	"bloghub/internal/transport/http/middleware"
)

type GroupHandler struct {
	groupService *service.GroupService
}

func NewGroupHandler(groupService *service.GroupService) *GroupHandler {
	return &GroupHandler{
		groupService: groupService,
	}
}

// Create handles POST /groups
func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserIDFromContext(r.Context()); !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	var req model.CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	group, err := h.groupService.Create(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrGroupTitleInvalid):
			httputil.WriteValidationError(w, "title", "Group title is required (max 200 characters)")
		case errors.Is(err, model.ErrGroupSlugInvalid):
			httputil.WriteValidationError(w, "slug", "Slug must be lowercase letters, digits and hyphens (max 50 characters)")
		case errors.Is(err, model.ErrGroupSlugExists):
			httputil.WriteConflict(w, "A group with this slug already exists")
		default:
			log.Printf("[ERROR] Create group handler: %v", err)
			httputil.WriteInternalError(w, "Failed to create group")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, group)
}

// List handles GET /groups
func (h *GroupHandler) List(w http.ResponseWriter, r *http.Request) {
	groups, err := h.groupService.List(r.Context())
	if err != nil {
		log.Printf("[ERROR] List groups handler: %v", err)
		httputil.WriteInternalError(w, "Failed to list groups")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{"groups": groups})
}

// GetBySlug handles GET /groups/{slug}
func (h *GroupHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	group, err := h.groupService.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, model.ErrGroupNotFound) {
			httputil.WriteNotFound(w, "Group not found")
			return
		}
		log.Printf("[ERROR] Get group handler: slug=%s err=%v", slug, err)
		httputil.WriteInternalError(w, "Failed to get group")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, group)
}

// Delete handles DELETE /groups/{slug}
// The group's posts are detached and survive without a group.
func (h *GroupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserIDFromContext(r.Context()); !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	slug := chi.URLParam(r, "slug")

	if err := h.groupService.Delete(r.Context(), slug); err != nil {
		if errors.Is(err, model.ErrGroupNotFound) {
			httputil.WriteNotFound(w, "Group not found")
			return
		}
		log.Printf("[ERROR] Delete group handler: slug=%s err=%v", slug, err)
		httputil.WriteInternalError(w, "Failed to delete group")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Group deleted, posts kept without a group",
	})
}
