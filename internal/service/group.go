package service

import (
	"context"
	"log"
	"regexp"
	"strings"

	"bloghub/internal/model"
	"bloghub/internal/repository"
)

// slugPattern matches URL-safe group slugs: lowercase letters, digits and
// hyphens. Slugs are immutable once a group exists, so they are validated
// strictly at creation.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type GroupService struct {
	groupRepo repository.GroupRepository
}

func NewGroupService(groupRepo repository.GroupRepository) *GroupService {
	return &GroupService{groupRepo: groupRepo}
}

func (s *GroupService) Create(ctx context.Context, req model.CreateGroupRequest) (*model.Group, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" || len(title) > model.MaxGroupTitleLength {
		return nil, model.ErrGroupTitleInvalid
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" || len(slug) > model.MaxGroupSlugLength || !slugPattern.MatchString(slug) {
		return nil, model.ErrGroupSlugInvalid
	}

	group := &model.Group{
		Title:       title,
		Slug:        slug,
		Description: req.Description,
	}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, err // ErrGroupSlugExists or wrapped error
	}

	log.Printf("[GroupService] Created group %q (%s)", group.Title, group.Slug)
	return group, nil
}

func (s *GroupService) GetBySlug(ctx context.Context, slug string) (*model.Group, error) {
	return s.groupRepo.GetBySlug(ctx, slug)
}

func (s *GroupService) List(ctx context.Context) ([]model.Group, error) {
	return s.groupRepo.List(ctx)
}

// Delete removes a group. Its posts are detached, not deleted: they survive
// with no group assignment.
func (s *GroupService) Delete(ctx context.Context, slug string) error {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}

	if err := s.groupRepo.Delete(ctx, group.ID); err != nil {
		return err
	}

	log.Printf("[GroupService] Deleted group %q (%s), posts detached", group.Title, group.Slug)
	return nil
}
