package repository

import (
	"context"

	"bloghub/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	// GetSummaries batch-loads author summaries for feed hydration
	GetSummaries(ctx context.Context, ids []int64) (map[int64]model.UserSummary, error)
}

type GroupRepository interface {
	Create(ctx context.Context, group *model.Group) error
	GetBySlug(ctx context.Context, slug string) (*model.Group, error)
	List(ctx context.Context) ([]model.Group, error)
	// Delete detaches the group's posts (posts survive with a null group) and
	// removes the group, in a single transaction.
	Delete(ctx context.Context, groupID int64) error
	// GetSummaries batch-loads group summaries for feed hydration
	GetSummaries(ctx context.Context, ids []int64) (map[int64]model.GroupSummary, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, postID int64) (*model.Post, error)
	// Update overwrites the mutable fields (text, group, image). CreatedAt and
	// the author never change.
	Update(ctx context.Context, post *model.Post) error

	// Count/List pairs per feed scope. Lists are newest first with ties broken
	// by id, offset/limit applied by the caller after page clamping.
	CountAll(ctx context.Context) (int, error)
	ListAll(ctx context.Context, offset, limit int) ([]model.Post, error)
	CountByGroup(ctx context.Context, groupID int64) (int, error)
	ListByGroup(ctx context.Context, groupID int64, offset, limit int) ([]model.Post, error)
	CountByAuthor(ctx context.Context, userID int64) (int, error)
	ListByAuthor(ctx context.Context, userID int64, offset, limit int) ([]model.Post, error)
	CountByAuthors(ctx context.Context, userIDs []int64) (int, error)
	ListByAuthors(ctx context.Context, userIDs []int64, offset, limit int) ([]model.Post, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	CountByPost(ctx context.Context, postID int64) (int, error)
	ListByPost(ctx context.Context, postID int64, offset, limit int) ([]model.Comment, error)
}

type FollowRepository interface {
	// Create inserts the follow pair, reporting whether a row was actually
	// inserted (false when the pair already exists).
	Create(ctx context.Context, followerID, followeeID int64) (bool, error)
	// Delete removes the follow pair, reporting whether a row existed.
	Delete(ctx context.Context, followerID, followeeID int64) (bool, error)
	Exists(ctx context.Context, followerID, followeeID int64) (bool, error)
	GetFolloweeIDs(ctx context.Context, userID int64) ([]int64, error)
}
