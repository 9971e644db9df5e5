package model

import (
	"errors"
	"time"
)

// Comment represents a comment on a post. Created immutably: no edit or
// delete flow exists for comments.
type Comment struct {
	ID        int64        `db:"id" json:"id"`
	PostID    int64        `db:"post_id" json:"post_id"`
	UserID    int64        `db:"user_id" json:"-"`
	Text      string       `db:"text" json:"text"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`
	Author    *UserSummary `json:"author,omitempty"` // Joined field
}

// CreateCommentRequest is the request body for creating a comment.
type CreateCommentRequest struct {
	Text string `json:"text"`
}

// CommentPage is one page of a post's comments, newest first.
type CommentPage struct {
	Comments   []Comment `json:"comments"`
	Page       int       `json:"page"`
	TotalPages int       `json:"total_pages"`
	TotalCount int       `json:"total_count"`
}

// Comment errors
var (
	ErrCommentTextRequired = errors.New("comment text is required")
	ErrBannedContent       = errors.New("comment contains a banned phrase")
)
