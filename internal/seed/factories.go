// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"warbler/internal/models"
	"warbler/internal/password"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	seed := time.Now().UnixNano()
	gofakeit.Seed(seed)
	return &Factory{db: db, r: rand.New(rand.NewSource(seed))}
}

// BuildUser constructs an unsaved user with fake but plausible profile data.
// All seeded users share the password "password" for easy local login.
func (f *Factory) BuildUser() (*models.User, error) {
	credential, err := password.Hash("password")
	if err != nil {
		return nil, err
	}

	username := strings.ToLower(gofakeit.Username())
	if len(username) < 3 {
		username = username + fmt.Sprintf("%03d", f.r.Intn(1000))
	}
	if len(username) > 30 {
		username = username[:30]
	}

	return &models.User{
		Username:       username,
		Email:          gofakeit.Email(),
		Password:       credential,
		ImageURL:       fmt.Sprintf("https://picsum.photos/seed/%s/200/200", gofakeit.UUID()),
		HeaderImageURL: fmt.Sprintf("https://picsum.photos/seed/%s/1200/400", gofakeit.UUID()),
		Bio:            gofakeit.Sentence(8),
		Location:       gofakeit.City(),
	}, nil
}

// CreateUsers persists n fake users, skipping the occasional random
// username/email collision.
func (f *Factory) CreateUsers(n int) ([]models.User, error) {
	users := make([]models.User, 0, n)
	for len(users) < n {
		user, err := f.BuildUser()
		if err != nil {
			return nil, err
		}
		if err := f.db.Create(user).Error; err != nil {
			if strings.Contains(strings.ToLower(err.Error()), "unique") {
				continue
			}
			return nil, err
		}
		users = append(users, *user)
	}
	return users, nil
}

// BuildMessage constructs an unsaved message for the given author with a
// timestamp spread over the past 90 days.
func (f *Factory) BuildMessage(author *models.User) *models.Message {
	text := gofakeit.Sentence(5 + f.r.Intn(15))
	if len(text) > models.MaxMessageLength {
		text = text[:models.MaxMessageLength]
	}

	age := time.Duration(f.r.Intn(90*24)) * time.Hour
	return &models.Message{
		Text:      text,
		UserID:    author.ID,
		Timestamp: time.Now().UTC().Add(-age),
	}
}

// CreateMessages persists n messages spread across the given users.
func (f *Factory) CreateMessages(users []models.User, n int) ([]models.Message, error) {
	if len(users) == 0 {
		return nil, nil
	}
	messages := make([]models.Message, 0, n)
	for i := 0; i < n; i++ {
		author := pick(f.r, users)
		message := f.BuildMessage(&author)
		if err := f.db.Create(message).Error; err != nil {
			return nil, err
		}
		messages = append(messages, *message)
	}
	return messages, nil
}

// CreateFollowGraph wires each user to follow a handful of random others.
func (f *Factory) CreateFollowGraph(users []models.User) (int, error) {
	created := 0
	for _, follower := range users {
		wanted := f.r.Intn(len(users))
		for i := 0; i < wanted; i++ {
			followee := pick(f.r, users)
			if followee.ID == follower.ID {
				continue
			}
			follow := &models.Follow{
				FollowerID: follower.ID,
				FolloweeID: followee.ID,
			}
			if err := f.db.Create(follow).Error; err != nil {
				if strings.Contains(strings.ToLower(err.Error()), "unique") ||
					strings.Contains(strings.ToLower(err.Error()), "duplicate") {
					continue
				}
				return created, err
			}
			created++
		}
	}
	return created, nil
}

// CreateLikes sprinkles likes across the given messages, never from the
// message's own author.
func (f *Factory) CreateLikes(users []models.User, messages []models.Message) (int, error) {
	created := 0
	for _, message := range messages {
		wanted := f.r.Intn(4)
		for i := 0; i < wanted; i++ {
			fan := pick(f.r, users)
			if fan.ID == message.UserID {
				continue
			}
			like := &models.Like{UserID: fan.ID, MessageID: message.ID}
			if err := f.db.Create(like).Error; err != nil {
				if strings.Contains(strings.ToLower(err.Error()), "unique") ||
					strings.Contains(strings.ToLower(err.Error()), "duplicate") {
					continue
				}
				return created, err
			}
			created++
		}
	}
	return created, nil
}
