package model

import (
	"errors"
	"time"
)

// Group is a named collection posts can be published into.
// The slug is the group's stable URL identity and never changes once created.
type Group struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Slug        string    `db:"slug" json:"slug"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// GroupSummary is the lightweight group representation embedded in posts.
type GroupSummary struct {
	ID    int64  `db:"id" json:"id"`
	Title string `db:"title" json:"title"`
	Slug  string `db:"slug" json:"slug"`
}

// CreateGroupRequest is the request body for creating a group.
type CreateGroupRequest struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// Group constraints
const (
	MaxGroupTitleLength = 200
	MaxGroupSlugLength  = 50
)

// Group errors
var (
	ErrGroupNotFound     = errors.New("group not found")
	ErrGroupSlugExists   = errors.New("group slug already exists")
	ErrGroupTitleInvalid = errors.New("group title is required")
	ErrGroupSlugInvalid  = errors.New("group slug is invalid")
)
