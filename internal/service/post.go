package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"bloghub/internal/model"
	"bloghub/internal/repository"
)

type PostService struct {
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
	groupRepo   repository.GroupRepository
	commentRepo repository.CommentRepository
}

func NewPostService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	groupRepo repository.GroupRepository,
	commentRepo repository.CommentRepository,
) *PostService {
	return &PostService{
		postRepo:    postRepo,
		userRepo:    userRepo,
		groupRepo:   groupRepo,
		commentRepo: commentRepo,
	}
}

// Create publishes a new post for the authenticated author. Text is required;
// group and image are optional. The created timestamp is set by the store and
// never touched again.
func (s *PostService) Create(ctx context.Context, userID int64, req model.CreatePostRequest) (*model.Post, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, model.ErrPostTextRequired
	}

	if req.GroupID != nil {
		if err := s.checkGroupExists(ctx, *req.GroupID); err != nil {
			return nil, err
		}
	}

	post := &model.Post{
		UserID:   userID,
		GroupID:  req.GroupID,
		Text:     text,
		ImageURL: req.ImageURL,
		ImageKey: req.ImageKey,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	log.Printf("[PostService] User %d created post %d", userID, post.ID)

	s.attachAuthorAndGroup(ctx, post)
	return post, nil
}

// Update edits an existing post. Only the owning author may mutate it: any
// other viewer gets the tagged ErrNotPostOwner with the post left untouched,
// and the presentation layer turns that into a redirect to the read view
// rather than an error.
func (s *PostService) Update(ctx context.Context, postID, userID int64, req model.UpdatePostRequest) (*model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err // ErrPostNotFound or wrapped error
	}

	if post.UserID != userID {
		return nil, model.ErrNotPostOwner
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, model.ErrPostTextRequired
	}

	if req.GroupID != nil {
		if err := s.checkGroupExists(ctx, *req.GroupID); err != nil {
			return nil, err
		}
	}

	post.Text = text
	post.GroupID = req.GroupID
	post.ImageURL = req.ImageURL
	post.ImageKey = req.ImageKey

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	log.Printf("[PostService] User %d edited post %d", userID, postID)

	s.attachAuthorAndGroup(ctx, post)
	return post, nil
}

// GetView returns a single post with the first page of its comments.
func (s *PostService) GetView(ctx context.Context, postID int64) (*model.PostView, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	s.attachAuthorAndGroup(ctx, post)

	count, err := s.commentRepo.CountByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("count comments: %w", err)
	}
	page, totalPages, offset := model.Paginate(count, 1, model.FeedPageSize)

	comments, err := s.commentRepo.ListByPost(ctx, postID, offset, model.FeedPageSize)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	comments = hydrateComments(ctx, s.userRepo, comments)

	return &model.PostView{
		Post: *post,
		Comments: model.CommentPage{
			Comments:   comments,
			Page:       page,
			TotalPages: totalPages,
			TotalCount: count,
		},
	}, nil
}

func (s *PostService) checkGroupExists(ctx context.Context, groupID int64) error {
	groups, err := s.groupRepo.GetSummaries(ctx, []int64{groupID})
	if err != nil {
		return fmt.Errorf("check group exists: %w", err)
	}
	if _, ok := groups[groupID]; !ok {
		return model.ErrGroupNotFound
	}
	return nil
}

// attachAuthorAndGroup is best-effort hydration for single-post responses.
func (s *PostService) attachAuthorAndGroup(ctx context.Context, post *model.Post) {
	hydrated, err := hydratePosts(ctx, s.userRepo, s.groupRepo, []model.Post{*post})
	if err != nil {
		log.Printf("[PostService] Failed to hydrate post %d: %v", post.ID, err)
		return
	}
	*post = hydrated[0]
}
