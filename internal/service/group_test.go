package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"bloghub/internal/model"
)

func TestGroupCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a group with a valid slug", func(t *testing.T) {
		svc := NewGroupService(&mockGroupRepo{})

		group, err := svc.Create(ctx, model.CreateGroupRequest{
			Title:       "  Go Programming  ",
			Slug:        "go-programming",
			Description: "All things Go",
		})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if group.Title != "Go Programming" {
			t.Errorf("Title = %q, want trimmed %q", group.Title, "Go Programming")
		}
	})

	t.Run("invalid slugs are rejected", func(t *testing.T) {
		svc := NewGroupService(&mockGroupRepo{})

		for _, slug := range []string{
			"",
			"Has-Capitals",
			"trailing-",
			"-leading",
			"double--hyphen",
			"spaces here",
			"unicode-ж",
			strings.Repeat("a", model.MaxGroupSlugLength+1),
		} {
			_, err := svc.Create(ctx, model.CreateGroupRequest{Title: "Title", Slug: slug})
			if !errors.Is(err, model.ErrGroupSlugInvalid) {
				t.Errorf("Create(slug=%q) error = %v, want ErrGroupSlugInvalid", slug, err)
			}
		}
	})

	t.Run("invalid titles are rejected", func(t *testing.T) {
		svc := NewGroupService(&mockGroupRepo{})

		for _, title := range []string{"", "   ", strings.Repeat("a", model.MaxGroupTitleLength+1)} {
			_, err := svc.Create(ctx, model.CreateGroupRequest{Title: title, Slug: "valid-slug"})
			if !errors.Is(err, model.ErrGroupTitleInvalid) {
				t.Errorf("Create(title=%q) error = %v, want ErrGroupTitleInvalid", title, err)
			}
		}
	})

	t.Run("taken slug surfaces the conflict", func(t *testing.T) {
		groupRepo := &mockGroupRepo{
			createFn: func(ctx context.Context, group *model.Group) error {
				return model.ErrGroupSlugExists
			},
		}
		svc := NewGroupService(groupRepo)

		_, err := svc.Create(ctx, model.CreateGroupRequest{Title: "Title", Slug: "taken"})
		if !errors.Is(err, model.ErrGroupSlugExists) {
			t.Errorf("Create() error = %v, want ErrGroupSlugExists", err)
		}
	})
}

func TestGroupDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves the slug and deletes", func(t *testing.T) {
		groupRepo := &mockGroupRepo{
			getBySlugFn: func(ctx context.Context, slug string) (*model.Group, error) {
				return &model.Group{ID: 7, Title: "Tech", Slug: slug}, nil
			},
		}
		svc := NewGroupService(groupRepo)

		if err := svc.Delete(ctx, "tech"); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if len(groupRepo.deleteCalls) != 1 || groupRepo.deleteCalls[0] != 7 {
			t.Errorf("Delete calls = %v, want [7]", groupRepo.deleteCalls)
		}
	})

	t.Run("unknown slug is not found", func(t *testing.T) {
		groupRepo := &mockGroupRepo{}
		svc := NewGroupService(groupRepo)

		err := svc.Delete(ctx, "no-such-group")
		if !errors.Is(err, model.ErrGroupNotFound) {
			t.Errorf("Delete() error = %v, want ErrGroupNotFound", err)
		}
		if len(groupRepo.deleteCalls) != 0 {
			t.Error("nothing should be deleted for an unknown slug")
		}
	})
}
