package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"bloghub/internal/model"
)

const postColumns = `id, user_id, group_id, text, image_url, image_key, created_at`

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	query := `
		INSERT INTO posts (user_id, group_id, text, image_url, image_key)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		post.UserID, post.GroupID, post.Text, post.ImageURL, post.ImageKey).
		Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, postID int64) (*model.Post, error) {
	var post model.Post
	err := r.db.GetContext(ctx, &post,
		`SELECT `+postColumns+` FROM posts WHERE id = $1`, postID)
	if err == sql.ErrNoRows {
		return nil, model.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	return &post, nil
}

// Update overwrites the post's mutable fields. The created timestamp and the
// author column are deliberately absent from the SET list.
func (r *postRepository) Update(ctx context.Context, post *model.Post) error {
	query := `
		UPDATE posts
		SET text = $1, group_id = $2, image_url = $3, image_key = $4
		WHERE id = $5
	`
	result, err := r.db.ExecContext(ctx, query,
		post.Text, post.GroupID, post.ImageURL, post.ImageKey, post.ID)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrPostNotFound
	}
	return nil
}

func (r *postRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM posts`)
	if err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return count, nil
}

func (r *postRepository) ListAll(ctx context.Context, offset, limit int) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.SelectContext(ctx, &posts,
		`SELECT `+postColumns+` FROM posts
		 ORDER BY created_at DESC, id DESC
		 LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (r *postRepository) CountByGroup(ctx context.Context, groupID int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM posts WHERE group_id = $1`, groupID)
	if err != nil {
		return 0, fmt.Errorf("count group posts: %w", err)
	}
	return count, nil
}

func (r *postRepository) ListByGroup(ctx context.Context, groupID int64, offset, limit int) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.SelectContext(ctx, &posts,
		`SELECT `+postColumns+` FROM posts
		 WHERE group_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2 OFFSET $3`, groupID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list group posts: %w", err)
	}
	return posts, nil
}

func (r *postRepository) CountByAuthor(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM posts WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("count author posts: %w", err)
	}
	return count, nil
}

func (r *postRepository) ListByAuthor(ctx context.Context, userID int64, offset, limit int) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.SelectContext(ctx, &posts,
		`SELECT `+postColumns+` FROM posts
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list author posts: %w", err)
	}
	return posts, nil
}

func (r *postRepository) CountByAuthors(ctx context.Context, userIDs []int64) (int, error) {
	if len(userIDs) == 0 {
		return 0, nil
	}
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM posts WHERE user_id = ANY($1)`, pq.Array(userIDs))
	if err != nil {
		return 0, fmt.Errorf("count followed posts: %w", err)
	}
	return count, nil
}

func (r *postRepository) ListByAuthors(ctx context.Context, userIDs []int64, offset, limit int) ([]model.Post, error) {
	if len(userIDs) == 0 {
		return []model.Post{}, nil
	}
	var posts []model.Post
	err := r.db.SelectContext(ctx, &posts,
		`SELECT `+postColumns+` FROM posts
		 WHERE user_id = ANY($1)
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2 OFFSET $3`, pq.Array(userIDs), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list followed posts: %w", err)
	}
	return posts, nil
}
