package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"bloghub/internal/httputil"
	"bloghub/internal/model"
	"bloghub/internal/service"
	"bloghub/internal/transport/http/middleware"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// Create handles POST /posts/{id}/comments
// Creates a comment on a post for the authenticated user. Text failing the
// denylist check comes back as a validation message on the text field, never
// a hard failure.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	postID, ok := parsePostID(w, r)
	if !ok {
		return
	}

	var req model.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	comment, err := h.commentService.Create(r.Context(), postID, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrPostNotFound):
			httputil.WriteNotFound(w, "Post not found")
		case errors.Is(err, model.ErrCommentTextRequired):
			httputil.WriteValidationError(w, "text", "Comment text is required")
		case errors.Is(err, model.ErrBannedContent):
			httputil.WriteValidationError(w, "text", "Comment contains a banned phrase")
		default:
			log.Printf("[ERROR] Create comment handler: user=%d post=%d err=%v", userID, postID, err)
			httputil.WriteInternalError(w, "Failed to create comment")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, comment)
}

// List handles GET /posts/{id}/comments
// Returns one page of a post's comments, newest first.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	postID, ok := parsePostID(w, r)
	if !ok {
		return
	}

	page, ok := parsePage(w, r)
	if !ok {
		return
	}

	comments, err := h.commentService.ListByPost(r.Context(), postID, page)
	if err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			httputil.WriteNotFound(w, "Post not found")
			return
		}
		log.Printf("[ERROR] List comments handler: post=%d err=%v", postID, err)
		httputil.WriteInternalError(w, "Failed to get comments")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, comments)
}
