package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warbler/internal/models"
)

func TestFollow(t *testing.T) {
	ctx := context.Background()

	existingUsers := func() *stubUserRepo {
		return &stubUserRepo{
			getByID: func(_ context.Context, id uint) (*models.User, error) {
				if id > 100 {
					return nil, models.NewNotFoundError("User", id)
				}
				return &models.User{ID: id}, nil
			},
		}
	}

	t.Run("creates the edge", func(t *testing.T) {
		var gotFollower, gotFollowee uint
		follows := &stubFollowRepo{
			create: func(_ context.Context, followerID, followeeID uint) error {
				gotFollower, gotFollowee = followerID, followeeID
				return nil
			},
		}
		svc := NewFollowService(follows, existingUsers(), false)

		require.NoError(t, svc.Follow(ctx, 1, 2))
		assert.Equal(t, uint(1), gotFollower)
		assert.Equal(t, uint(2), gotFollowee)
	})

	t.Run("unknown followee is not found", func(t *testing.T) {
		svc := NewFollowService(&stubFollowRepo{}, existingUsers(), false)

		err := svc.Follow(ctx, 1, 999)
		require.Error(t, err)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})

	t.Run("self-follow rejected when disallowed", func(t *testing.T) {
		svc := NewFollowService(&stubFollowRepo{}, existingUsers(), false)

		err := svc.Follow(ctx, 1, 1)
		require.Error(t, err)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})

	t.Run("self-follow allowed when configured", func(t *testing.T) {
		created := false
		follows := &stubFollowRepo{
			create: func(_ context.Context, followerID, followeeID uint) error {
				created = true
				return nil
			},
		}
		svc := NewFollowService(follows, existingUsers(), true)

		require.NoError(t, svc.Follow(ctx, 1, 1))
		assert.True(t, created)
	})
}

func TestIsFollowingDirections(t *testing.T) {
	ctx := context.Background()

	// Only the 1 -> 2 edge exists.
	follows := &stubFollowRepo{
		exists: func(_ context.Context, followerID, followeeID uint) (bool, error) {
			return followerID == 1 && followeeID == 2, nil
		},
	}
	svc := NewFollowService(follows, &stubUserRepo{}, false)

	following, err := svc.IsFollowing(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, following)

	following, err = svc.IsFollowing(ctx, 2, 1)
	require.NoError(t, err)
	assert.False(t, following)

	followedBy, err := svc.IsFollowedBy(ctx, 2, 1)
	require.NoError(t, err)
	assert.True(t, followedBy)

	followedBy, err = svc.IsFollowedBy(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, followedBy)
}

func TestFollowersListingRequiresUser(t *testing.T) {
	ctx := context.Background()

	users := &stubUserRepo{
		getByID: func(_ context.Context, id uint) (*models.User, error) {
			return nil, models.NewNotFoundError("User", id)
		},
	}
	svc := NewFollowService(&stubFollowRepo{}, users, false)

	_, err := svc.FollowersOf(ctx, 999)
	require.Error(t, err)

	_, err = svc.FollowingOf(ctx, 999)
	require.Error(t, err)
}
