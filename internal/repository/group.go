package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"bloghub/internal/model"
)

type groupRepository struct {
	db *sqlx.DB
}

func NewGroupRepository(db *sqlx.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) Create(ctx context.Context, group *model.Group) error {
	query := `
		INSERT INTO groups (title, slug, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRowxContext(ctx, query, group.Title, group.Slug, group.Description).
		Scan(&group.ID, &group.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return model.ErrGroupSlugExists
		}
		return fmt.Errorf("insert group: %w", err)
	}
	return nil
}

func (r *groupRepository) GetBySlug(ctx context.Context, slug string) (*model.Group, error) {
	var group model.Group
	err := r.db.GetContext(ctx, &group,
		`SELECT id, title, slug, description, created_at FROM groups WHERE slug = $1`, slug)
	if err == sql.ErrNoRows {
		return nil, model.ErrGroupNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get group by slug: %w", err)
	}
	return &group, nil
}

func (r *groupRepository) List(ctx context.Context) ([]model.Group, error) {
	var groups []model.Group
	err := r.db.SelectContext(ctx, &groups,
		`SELECT id, title, slug, description, created_at FROM groups ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return groups, nil
}

// Delete detaches the group's posts before removing the group itself so the
// posts survive with a null group. The schema's ON DELETE SET NULL would do
// the same, but the cleanup is spelled out here so it does not hinge on one
// foreign-key clause.
func (r *groupRepository) Delete(ctx context.Context, groupID int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`UPDATE posts SET group_id = NULL WHERE group_id = $1`, groupID); err != nil {
		return fmt.Errorf("detach posts: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM groups WHERE id = $1`, groupID)
	if err != nil {
		return fmt.Errorf("delete group: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrGroupNotFound
	}

	return tx.Commit()
}

// GetSummaries loads group summaries for a set of group IDs in one query.
func (r *groupRepository) GetSummaries(ctx context.Context, ids []int64) (map[int64]model.GroupSummary, error) {
	if len(ids) == 0 {
		return map[int64]model.GroupSummary{}, nil
	}

	var summaries []model.GroupSummary
	err := r.db.SelectContext(ctx, &summaries,
		`SELECT id, title, slug FROM groups WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("get group summaries: %w", err)
	}

	result := make(map[int64]model.GroupSummary, len(summaries))
	for _, s := range summaries {
		result[s.ID] = s
	}
	return result, nil
}
