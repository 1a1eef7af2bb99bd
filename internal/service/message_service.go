package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"warbler/internal/models"
	"warbler/internal/repository"
)

// MessageService provides authored messages and their like edges.
type MessageService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
}

// CreateMessageInput is the payload for posting a message. Timestamp is
// optional and defaults to the time of creation.
type CreateMessageInput struct {
	UserID    uint
	Text      string
	Timestamp time.Time
}

// NewMessageService returns a new MessageService.
func NewMessageService(messageRepo repository.MessageRepository, userRepo repository.UserRepository) *MessageService {
	return &MessageService{messageRepo: messageRepo, userRepo: userRepo}
}

// Create validates and persists a new message for the given author.
func (s *MessageService) Create(ctx context.Context, in CreateMessageInput) (*models.Message, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, models.NewValidationError("Message text is required")
	}
	// Count runes, not bytes, so multibyte text gets the full 140 characters.
	if utf8.RuneCountInString(text) > models.MaxMessageLength {
		return nil, models.NewValidationError("Message too long (max 140 characters)")
	}

	if _, err := s.userRepo.GetByID(ctx, in.UserID); err != nil {
		return nil, err
	}

	message := &models.Message{
		Text:      text,
		UserID:    in.UserID,
		Timestamp: in.Timestamp,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// Get returns the message with its author and like count.
func (s *MessageService) Get(ctx context.Context, id uint) (*models.Message, error) {
	return s.messageRepo.GetByID(ctx, id)
}

// MessagesOf returns a page of the user's messages, newest first.
func (s *MessageService) MessagesOf(ctx context.Context, userID uint, limit, offset int) ([]models.Message, error) {
	return s.messageRepo.GetByUserID(ctx, userID, limit, offset)
}

// Delete removes a message. Only the author may delete; anyone else gets an
// authorization failure.
func (s *MessageService) Delete(ctx context.Context, messageID, requesterID uint) error {
	message, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return err
	}
	if message.UserID != requesterID {
		return models.NewUnauthorizedError("You can only delete your own messages")
	}
	return s.messageRepo.Delete(ctx, messageID)
}

// Like records that the user likes the message. Liking twice leaves exactly
// one edge. Whether a user may like their own message is the request layer's
// rule, not enforced here.
func (s *MessageService) Like(ctx context.Context, userID, messageID uint) error {
	if _, err := s.messageRepo.GetByID(ctx, messageID); err != nil {
		return err
	}
	return s.messageRepo.Like(ctx, userID, messageID)
}

// Unlike removes the like edge; absent edges are a no-op.
func (s *MessageService) Unlike(ctx context.Context, userID, messageID uint) error {
	return s.messageRepo.Unlike(ctx, userID, messageID)
}

// LikesOf returns the users who like the message.
func (s *MessageService) LikesOf(ctx context.Context, messageID uint) ([]models.User, error) {
	if _, err := s.messageRepo.GetByID(ctx, messageID); err != nil {
		return nil, err
	}
	return s.messageRepo.LikesOf(ctx, messageID)
}

// LikedMessagesOf returns the messages the user has liked.
func (s *MessageService) LikedMessagesOf(ctx context.Context, userID uint) ([]models.Message, error) {
	return s.messageRepo.LikedMessagesOf(ctx, userID)
}

// IsLiked reports whether the user has liked the message.
func (s *MessageService) IsLiked(ctx context.Context, userID, messageID uint) (bool, error) {
	return s.messageRepo.IsLiked(ctx, userID, messageID)
}
