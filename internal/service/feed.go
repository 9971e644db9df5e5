package service

import (
	"context"
	"fmt"
	"log"

	"bloghub/internal/model"
	"bloghub/internal/repository"
)

// FeedService composes paginated post feeds. A feed is a pure function of
// (scope, viewer, page) over the store: no per-viewer state is kept between
// requests.
type FeedService struct {
	postRepo   repository.PostRepository
	userRepo   repository.UserRepository
	groupRepo  repository.GroupRepository
	followRepo repository.FollowRepository
}

func NewFeedService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	groupRepo repository.GroupRepository,
	followRepo repository.FollowRepository,
) *FeedService {
	return &FeedService{
		postRepo:   postRepo,
		userRepo:   userRepo,
		groupRepo:  groupRepo,
		followRepo: followRepo,
	}
}

// Global returns page k of all posts, newest first.
func (s *FeedService) Global(ctx context.Context, requestedPage int) (*model.FeedPage, error) {
	count, err := s.postRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}

	page, totalPages, offset := model.Paginate(count, requestedPage, model.FeedPageSize)

	posts, err := s.postRepo.ListAll(ctx, offset, model.FeedPageSize)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	return s.buildPage(ctx, posts, page, totalPages, count)
}

// Group returns page k of the posts published into the group with the given
// slug. An unknown slug is a not-found condition, not an empty feed.
func (s *FeedService) Group(ctx context.Context, slug string, requestedPage int) (*model.FeedPage, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err // ErrGroupNotFound or wrapped error
	}

	count, err := s.postRepo.CountByGroup(ctx, group.ID)
	if err != nil {
		return nil, fmt.Errorf("count group posts: %w", err)
	}

	page, totalPages, offset := model.Paginate(count, requestedPage, model.FeedPageSize)

	posts, err := s.postRepo.ListByGroup(ctx, group.ID, offset, model.FeedPageSize)
	if err != nil {
		return nil, fmt.Errorf("list group posts: %w", err)
	}

	return s.buildPage(ctx, posts, page, totalPages, count)
}

// Author returns page k of the posts written by the given username. An
// unknown username is a not-found condition.
func (s *FeedService) Author(ctx context.Context, username string, requestedPage int) (*model.FeedPage, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err // ErrUserNotFound or wrapped error
	}

	count, err := s.postRepo.CountByAuthor(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("count author posts: %w", err)
	}

	page, totalPages, offset := model.Paginate(count, requestedPage, model.FeedPageSize)

	posts, err := s.postRepo.ListByAuthor(ctx, user.ID, offset, model.FeedPageSize)
	if err != nil {
		return nil, fmt.Errorf("list author posts: %w", err)
	}

	return s.buildPage(ctx, posts, page, totalPages, count)
}

// Followed returns page k of the posts whose author is in the viewer's
// followee set. An anonymous viewer or a viewer who follows no one gets an
// empty page, never an error.
func (s *FeedService) Followed(ctx context.Context, viewerID *int64, requestedPage int) (*model.FeedPage, error) {
	if viewerID == nil {
		return emptyFeedPage(), nil
	}

	followeeIDs, err := s.followRepo.GetFolloweeIDs(ctx, *viewerID)
	if err != nil {
		return nil, fmt.Errorf("get followee ids: %w", err)
	}
	if len(followeeIDs) == 0 {
		return emptyFeedPage(), nil
	}

	count, err := s.postRepo.CountByAuthors(ctx, followeeIDs)
	if err != nil {
		return nil, fmt.Errorf("count followed posts: %w", err)
	}

	page, totalPages, offset := model.Paginate(count, requestedPage, model.FeedPageSize)

	posts, err := s.postRepo.ListByAuthors(ctx, followeeIDs, offset, model.FeedPageSize)
	if err != nil {
		return nil, fmt.Errorf("list followed posts: %w", err)
	}

	return s.buildPage(ctx, posts, page, totalPages, count)
}

// buildPage hydrates authors and groups onto the posts and assembles the page.
func (s *FeedService) buildPage(ctx context.Context, posts []model.Post, page, totalPages, count int) (*model.FeedPage, error) {
	hydrated, err := hydratePosts(ctx, s.userRepo, s.groupRepo, posts)
	if err != nil {
		return nil, err
	}
	return &model.FeedPage{
		Posts:      hydrated,
		Page:       page,
		TotalPages: totalPages,
		TotalCount: count,
	}, nil
}

func emptyFeedPage() *model.FeedPage {
	return &model.FeedPage{
		Posts:      []model.Post{},
		Page:       1,
		TotalPages: 1,
		TotalCount: 0,
	}
}

// hydratePosts attaches author and group summaries with one batch query each.
// Hydration is best-effort for the group side: a post whose group vanished
// mid-request simply renders without one.
func hydratePosts(ctx context.Context, userRepo repository.UserRepository, groupRepo repository.GroupRepository, posts []model.Post) ([]model.Post, error) {
	if len(posts) == 0 {
		return []model.Post{}, nil
	}

	authorIDSet := make(map[int64]struct{})
	groupIDSet := make(map[int64]struct{})
	for _, p := range posts {
		authorIDSet[p.UserID] = struct{}{}
		if p.GroupID != nil {
			groupIDSet[*p.GroupID] = struct{}{}
		}
	}

	authorIDs := make([]int64, 0, len(authorIDSet))
	for id := range authorIDSet {
		authorIDs = append(authorIDs, id)
	}
	groupIDs := make([]int64, 0, len(groupIDSet))
	for id := range groupIDSet {
		groupIDs = append(groupIDs, id)
	}

	authors, err := userRepo.GetSummaries(ctx, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("hydrate authors: %w", err)
	}

	groups, err := groupRepo.GetSummaries(ctx, groupIDs)
	if err != nil {
		log.Printf("[FeedService] Failed to hydrate groups: %v", err)
		groups = map[int64]model.GroupSummary{}
	}

	for i := range posts {
		if a, ok := authors[posts[i].UserID]; ok {
			author := a
			posts[i].Author = &author
		}
		if posts[i].GroupID != nil {
			if g, ok := groups[*posts[i].GroupID]; ok {
				group := g
				posts[i].Group = &group
			}
		}
	}

	return posts, nil
}
