package service

import (
	"context"
	"log"

	"bloghub/internal/repository"
)

type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow makes the viewer follow the author with the given username.
// Idempotent: following yourself or an already-followed author is a no-op,
// not an error. Only an unknown username fails.
func (s *FollowService) Follow(ctx context.Context, followerID int64, followeeUsername string) error {
	followee, err := s.userRepo.GetByUsername(ctx, followeeUsername)
	if err != nil {
		return err // ErrUserNotFound or wrapped error
	}

	if followerID == followee.ID {
		return nil
	}

	inserted, err := s.followRepo.Create(ctx, followerID, followee.ID)
	if err != nil {
		return err
	}
	if inserted {
		log.Printf("[FollowService] User %d followed user %d", followerID, followee.ID)
	}
	return nil
}

// Unfollow removes the follow relationship. Idempotent: unfollowing an author
// the viewer does not follow is a no-op.
func (s *FollowService) Unfollow(ctx context.Context, followerID int64, followeeUsername string) error {
	followee, err := s.userRepo.GetByUsername(ctx, followeeUsername)
	if err != nil {
		return err
	}

	deleted, err := s.followRepo.Delete(ctx, followerID, followee.ID)
	if err != nil {
		return err
	}
	if deleted {
		log.Printf("[FollowService] User %d unfollowed user %d", followerID, followee.ID)
	}
	return nil
}

// IsFollowing reports whether the viewer follows the given author.
func (s *FollowService) IsFollowing(ctx context.Context, followerID int64, followeeUsername string) (bool, error) {
	followee, err := s.userRepo.GetByUsername(ctx, followeeUsername)
	if err != nil {
		return false, err
	}
	return s.followRepo.Exists(ctx, followerID, followee.ID)
}
