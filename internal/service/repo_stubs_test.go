package service

import (
	"context"

	"warbler/internal/models"
)

// Function-field stubs so each test overrides only the calls it cares about.
// Unset fields return zero values.

type stubUserRepo struct {
	getByID             func(ctx context.Context, id uint) (*models.User, error)
	getByIDWithMessages func(ctx context.Context, id uint, limit int) (*models.User, error)
	getByEmail          func(ctx context.Context, email string) (*models.User, error)
	getByUsername       func(ctx context.Context, username string) (*models.User, error)
	create              func(ctx context.Context, user *models.User) error
	update              func(ctx context.Context, user *models.User) error
	delete              func(ctx context.Context, id uint) error
	list                func(ctx context.Context, limit, offset int) ([]models.User, error)
}

func (s *stubUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	if s.getByID != nil {
		return s.getByID(ctx, id)
	}
	return nil, nil
}

func (s *stubUserRepo) GetByIDWithMessages(ctx context.Context, id uint, limit int) (*models.User, error) {
	if s.getByIDWithMessages != nil {
		return s.getByIDWithMessages(ctx, id, limit)
	}
	return nil, nil
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.getByEmail != nil {
		return s.getByEmail(ctx, email)
	}
	return nil, nil
}

func (s *stubUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if s.getByUsername != nil {
		return s.getByUsername(ctx, username)
	}
	return nil, nil
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	if s.create != nil {
		return s.create(ctx, user)
	}
	return nil
}

func (s *stubUserRepo) Update(ctx context.Context, user *models.User) error {
	if s.update != nil {
		return s.update(ctx, user)
	}
	return nil
}

func (s *stubUserRepo) Delete(ctx context.Context, id uint) error {
	if s.delete != nil {
		return s.delete(ctx, id)
	}
	return nil
}

func (s *stubUserRepo) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	if s.list != nil {
		return s.list(ctx, limit, offset)
	}
	return nil, nil
}

type stubFollowRepo struct {
	create         func(ctx context.Context, followerID, followeeID uint) error
	delete         func(ctx context.Context, followerID, followeeID uint) error
	exists         func(ctx context.Context, followerID, followeeID uint) (bool, error)
	followersOf    func(ctx context.Context, userID uint) ([]models.User, error)
	followingOf    func(ctx context.Context, userID uint) ([]models.User, error)
	countFollowers func(ctx context.Context, userID uint) (int64, error)
	countFollowing func(ctx context.Context, userID uint) (int64, error)
}

func (s *stubFollowRepo) Create(ctx context.Context, followerID, followeeID uint) error {
	if s.create != nil {
		return s.create(ctx, followerID, followeeID)
	}
	return nil
}

func (s *stubFollowRepo) Delete(ctx context.Context, followerID, followeeID uint) error {
	if s.delete != nil {
		return s.delete(ctx, followerID, followeeID)
	}
	return nil
}

func (s *stubFollowRepo) Exists(ctx context.Context, followerID, followeeID uint) (bool, error) {
	if s.exists != nil {
		return s.exists(ctx, followerID, followeeID)
	}
	return false, nil
}

func (s *stubFollowRepo) FollowersOf(ctx context.Context, userID uint) ([]models.User, error) {
	if s.followersOf != nil {
		return s.followersOf(ctx, userID)
	}
	return nil, nil
}

func (s *stubFollowRepo) FollowingOf(ctx context.Context, userID uint) ([]models.User, error) {
	if s.followingOf != nil {
		return s.followingOf(ctx, userID)
	}
	return nil, nil
}

func (s *stubFollowRepo) CountFollowers(ctx context.Context, userID uint) (int64, error) {
	if s.countFollowers != nil {
		return s.countFollowers(ctx, userID)
	}
	return 0, nil
}

func (s *stubFollowRepo) CountFollowing(ctx context.Context, userID uint) (int64, error) {
	if s.countFollowing != nil {
		return s.countFollowing(ctx, userID)
	}
	return 0, nil
}

type stubMessageRepo struct {
	create          func(ctx context.Context, message *models.Message) error
	getByID         func(ctx context.Context, id uint) (*models.Message, error)
	getByUserID     func(ctx context.Context, userID uint, limit, offset int) ([]models.Message, error)
	delete          func(ctx context.Context, id uint) error
	like            func(ctx context.Context, userID, messageID uint) error
	unlike          func(ctx context.Context, userID, messageID uint) error
	isLiked         func(ctx context.Context, userID, messageID uint) (bool, error)
	likesOf         func(ctx context.Context, messageID uint) ([]models.User, error)
	likedMessagesOf func(ctx context.Context, userID uint) ([]models.Message, error)
	countLikes      func(ctx context.Context, messageID uint) (int64, error)
}

func (s *stubMessageRepo) Create(ctx context.Context, message *models.Message) error {
	if s.create != nil {
		return s.create(ctx, message)
	}
	return nil
}

func (s *stubMessageRepo) GetByID(ctx context.Context, id uint) (*models.Message, error) {
	if s.getByID != nil {
		return s.getByID(ctx, id)
	}
	return nil, nil
}

func (s *stubMessageRepo) GetByUserID(ctx context.Context, userID uint, limit, offset int) ([]models.Message, error) {
	if s.getByUserID != nil {
		return s.getByUserID(ctx, userID, limit, offset)
	}
	return nil, nil
}

func (s *stubMessageRepo) Delete(ctx context.Context, id uint) error {
	if s.delete != nil {
		return s.delete(ctx, id)
	}
	return nil
}

func (s *stubMessageRepo) Like(ctx context.Context, userID, messageID uint) error {
	if s.like != nil {
		return s.like(ctx, userID, messageID)
	}
	return nil
}

func (s *stubMessageRepo) Unlike(ctx context.Context, userID, messageID uint) error {
	if s.unlike != nil {
		return s.unlike(ctx, userID, messageID)
	}
	return nil
}

func (s *stubMessageRepo) IsLiked(ctx context.Context, userID, messageID uint) (bool, error) {
	if s.isLiked != nil {
		return s.isLiked(ctx, userID, messageID)
	}
	return false, nil
}

func (s *stubMessageRepo) LikesOf(ctx context.Context, messageID uint) ([]models.User, error) {
	if s.likesOf != nil {
		return s.likesOf(ctx, messageID)
	}
	return nil, nil
}

func (s *stubMessageRepo) LikedMessagesOf(ctx context.Context, userID uint) ([]models.Message, error) {
	if s.likedMessagesOf != nil {
		return s.likedMessagesOf(ctx, userID)
	}
	return nil, nil
}

func (s *stubMessageRepo) CountLikes(ctx context.Context, messageID uint) (int64, error) {
	if s.countLikes != nil {
		return s.countLikes(ctx, messageID)
	}
	return 0, nil
}
