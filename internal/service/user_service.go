package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"warbler/internal/models"
	"warbler/internal/password"
	"warbler/internal/repository"
	"warbler/internal/validation"
)

// UserService provides user identity lifecycle and lookup.
type UserService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

// SignupInput is the payload for registering a new user.
type SignupInput struct {
	Username string
	Email    string
	Password string
	ImageURL string
}

// UpdateProfileInput carries the editable profile fields.
type UpdateProfileInput struct {
	UserID         uint
	Bio            string
	Location       string
	ImageURL       string
	HeaderImageURL string
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, followRepo repository.FollowRepository) *UserService {
	return &UserService{userRepo: userRepo, followRepo: followRepo}
}

// Signup hashes the password, applies image defaults, and persists the new
// user. Username and email uniqueness is enforced by the storage layer, not
// pre-checked here; a violation surfaces as a DUPLICATE_IDENTITY error.
func (s *UserService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)

	if username == "" || email == "" || in.Password == "" {
		return nil, models.NewValidationError("Username, email, and password are required")
	}
	if err := validation.ValidateUsername(username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	credential, err := password.Hash(in.Password)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	imageURL := in.ImageURL
	if imageURL == "" {
		imageURL = models.DefaultImageURL
	}

	user := &models.User{
		Username:       username,
		Email:          email,
		Password:       credential,
		ImageURL:       imageURL,
		HeaderImageURL: models.DefaultHeaderImageURL,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate looks up the user by exact username and verifies the password.
// Unknown username and wrong password both yield (nil, nil): login failure is
// an expected outcome, not an error. A dummy hash comparison runs on unknown
// usernames so timing does not reveal account existence.
func (s *UserService) Authenticate(ctx context.Context, username, plaintext string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		password.VerifyDummy(plaintext)
		return nil, nil
	}
	if !password.Verify(plaintext, user.Password) {
		return nil, nil
	}
	return user, nil
}

// GetUser returns the user by id.
func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetUserWithMessages returns the user with their most recent messages preloaded.
func (s *UserService) GetUserWithMessages(ctx context.Context, id uint, limit int) (*models.User, error) {
	return s.userRepo.GetByIDWithMessages(ctx, id, limit)
}

// ListUsers returns a page of users.
func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}

// UpdateProfile applies the provided non-empty profile fields.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	const maxBioLen = 500
	const maxLocationLen = 100

	if in.Bio != "" {
		if utf8.RuneCountInString(in.Bio) > maxBioLen {
			return nil, models.NewValidationError("Bio too long (max 500 characters)")
		}
		user.Bio = in.Bio
	}
	if in.Location != "" {
		if utf8.RuneCountInString(in.Location) > maxLocationLen {
			return nil, models.NewValidationError("Location too long (max 100 characters)")
		}
		user.Location = in.Location
	}
	if in.ImageURL != "" {
		user.ImageURL = in.ImageURL
	}
	if in.HeaderImageURL != "" {
		user.HeaderImageURL = in.HeaderImageURL
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the account and cascades to authored messages, follow
// edges in both directions, and like edges.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}

// IsFollowing reports whether user a follows user b.
func (s *UserService) IsFollowing(ctx context.Context, a, b uint) (bool, error) {
	return s.followRepo.Exists(ctx, a, b)
}

// IsFollowedBy reports whether user a is followed by user b.
func (s *UserService) IsFollowedBy(ctx context.Context, a, b uint) (bool, error) {
	return s.followRepo.Exists(ctx, b, a)
}
