package model

import (
	"errors"
	"time"
)

// Post represents a published blog entry.
// CreatedAt is set exactly once at insert time and never updated; the owning
// author may later change the text, the group assignment and the image, but
// the post keeps its place in every feed.
type Post struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	GroupID   *int64    `db:"group_id" json:"group_id,omitempty"`
	Text      string    `db:"text" json:"text"`
	ImageURL  *string   `db:"image_url" json:"image_url,omitempty"`
	ImageKey  *string   `db:"image_key" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`

	// Joined fields (not in posts table)
	Author *UserSummary  `json:"author,omitempty"`
	Group  *GroupSummary `json:"group,omitempty"`
}

// FeedPage is one page of a feed: the posts plus the pagination metadata
// every feed response carries.
type FeedPage struct {
	Posts      []Post `json:"posts"`
	Page       int    `json:"page"`
	TotalPages int    `json:"total_pages"`
	TotalCount int    `json:"total_count"`
}

// PostView is a single post with its first page of comments.
type PostView struct {
	Post     Post        `json:"post"`
	Comments CommentPage `json:"comments"`
}

// CreatePostRequest is the request body for creating a post.
// ImageURL/ImageKey reference an object previously uploaded via the media endpoint.
type CreatePostRequest struct {
	Text     string  `json:"text"`
	GroupID  *int64  `json:"group_id,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`
	ImageKey *string `json:"image_key,omitempty"`
}

// UpdatePostRequest is the request body for editing a post. Same shape as create.
type UpdatePostRequest struct {
	Text     string  `json:"text"`
	GroupID  *int64  `json:"group_id,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`
	ImageKey *string `json:"image_key,omitempty"`
}

// Post errors
var (
	ErrPostNotFound     = errors.New("post not found")
	ErrNotPostOwner     = errors.New("not the owner of this post")
	ErrPostTextRequired = errors.New("post text is required")
)
