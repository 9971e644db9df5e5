package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"bloghub/internal/model"
	"bloghub/internal/repository"
)

// bannedPhrases is the comment denylist. Matching is case-insensitive and
// substring-based; a hit rejects the comment before anything is persisted.
var bannedPhrases = []string{
	"плохой коммент",
	"bad comment",
}

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// Create adds a comment to a post. The denylist check runs before the post
// lookup and the insert so a banned comment causes no store access at all.
func (s *CommentService) Create(ctx context.Context, postID, userID int64, req model.CreateCommentRequest) (*model.Comment, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, model.ErrCommentTextRequired
	}
	if containsBannedPhrase(text) {
		return nil, model.ErrBannedContent
	}

	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err // ErrPostNotFound or wrapped error
	}

	comment := &model.Comment{
		PostID: postID,
		UserID: userID,
		Text:   text,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	log.Printf("[CommentService] User %d commented on post %d", userID, postID)

	// Fetch author info
	authors, err := s.userRepo.GetSummaries(ctx, []int64{userID})
	if err == nil {
		if a, ok := authors[userID]; ok {
			author := a
			comment.Author = &author
		}
	}

	return comment, nil
}

// ListByPost returns one page of a post's comments, newest first.
func (s *CommentService) ListByPost(ctx context.Context, postID int64, requestedPage int) (*model.CommentPage, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	count, err := s.commentRepo.CountByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("count comments: %w", err)
	}
	page, totalPages, offset := model.Paginate(count, requestedPage, model.FeedPageSize)

	comments, err := s.commentRepo.ListByPost(ctx, postID, offset, model.FeedPageSize)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	comments = hydrateComments(ctx, s.userRepo, comments)

	return &model.CommentPage{
		Comments:   comments,
		Page:       page,
		TotalPages: totalPages,
		TotalCount: count,
	}, nil
}

func containsBannedPhrase(text string) bool {
	lowered := strings.ToLower(text)
	for _, phrase := range bannedPhrases {
		if strings.Contains(lowered, phrase) {
			return true
		}
	}
	return false
}

// hydrateComments attaches author summaries with one batch query.
func hydrateComments(ctx context.Context, userRepo repository.UserRepository, comments []model.Comment) []model.Comment {
	if len(comments) == 0 {
		return []model.Comment{}
	}

	idSet := make(map[int64]struct{})
	for _, c := range comments {
		idSet[c.UserID] = struct{}{}
	}
	ids := make([]int64, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	authors, err := userRepo.GetSummaries(ctx, ids)
	if err != nil {
		log.Printf("[CommentService] Failed to hydrate comment authors: %v", err)
		return comments
	}

	for i := range comments {
		if a, ok := authors[comments[i].UserID]; ok {
			author := a
			comments[i].Author = &author
		}
	}
	return comments
}
