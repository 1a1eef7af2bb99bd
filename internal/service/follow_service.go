package service

import (
	"context"

	"warbler/internal/models"
	"warbler/internal/repository"
)

// FollowService provides the directed follow relation between users.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
	// allowSelfFollow mirrors the ALLOW_SELF_FOLLOW config knob. The
	// storage layer itself never rejects a self-edge.
	allowSelfFollow bool
}

// NewFollowService returns a new FollowService.
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository, allowSelfFollow bool) *FollowService {
	return &FollowService{
		followRepo:      followRepo,
		userRepo:        userRepo,
		allowSelfFollow: allowSelfFollow,
	}
}

// Follow creates the follower -> followee edge. Calling it again for the same
// pair leaves exactly one edge.
func (s *FollowService) Follow(ctx context.Context, followerID, followeeID uint) error {
	if !s.allowSelfFollow && followerID == followeeID {
		return models.NewValidationError("Cannot follow yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, followeeID); err != nil {
		return err
	}
	return s.followRepo.Create(ctx, followerID, followeeID)
}

// Unfollow removes the edge; absent edges are a no-op.
func (s *FollowService) Unfollow(ctx context.Context, followerID, followeeID uint) error {
	return s.followRepo.Delete(ctx, followerID, followeeID)
}

// FollowersOf returns the users following the given user.
func (s *FollowService) FollowersOf(ctx context.Context, userID uint) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.FollowersOf(ctx, userID)
}

// FollowingOf returns the users the given user follows.
func (s *FollowService) FollowingOf(ctx context.Context, userID uint) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.FollowingOf(ctx, userID)
}

// IsFollowing reports whether a follows b.
func (s *FollowService) IsFollowing(ctx context.Context, a, b uint) (bool, error) {
	return s.followRepo.Exists(ctx, a, b)
}

// IsFollowedBy reports whether a is followed by b.
func (s *FollowService) IsFollowedBy(ctx context.Context, a, b uint) (bool, error) {
	return s.followRepo.Exists(ctx, b, a)
}
