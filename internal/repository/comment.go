package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"bloghub/internal/model"
)

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	query := `
		INSERT INTO comments (post_id, user_id, text)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRowxContext(ctx, query, comment.PostID, comment.UserID, comment.Text).
		Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

func (r *commentRepository) CountByPost(ctx context.Context, postID int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM comments WHERE post_id = $1`, postID)
	if err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}
	return count, nil
}

func (r *commentRepository) ListByPost(ctx context.Context, postID int64, offset, limit int) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.SelectContext(ctx, &comments,
		`SELECT id, post_id, user_id, text, created_at FROM comments
		 WHERE post_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2 OFFSET $3`, postID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}
